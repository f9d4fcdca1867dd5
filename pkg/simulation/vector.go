// Package simulation 实现标枪的瞄准/发射/飞行状态机
//
// 该包不依赖任何渲染或输入框架：外部运行时每帧提供时间步长和输入快照，
// 渲染层只读取投射物的位置和朝向。
package simulation

import "math"

// Vec2 二维向量（屏幕坐标系，Y 轴向下）
type Vec2 struct {
	X, Y float64
}

// NewVec2 创建向量
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add 返回 v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 返回 v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 返回 v * f
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Angle 返回 atan2(Y, X)
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Length 向量长度
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero 是否为零向量
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// FromAngle 由角度和长度构造向量
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}
