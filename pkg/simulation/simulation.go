package simulation

import (
	"log"
	"math"
)

// spriteOffset 贴图默认朝上，渲染时需要额外旋转 90°
const spriteOffset = math.Pi / 2

// FrameInput 单帧输入快照，由外部运行时采样
type FrameInput struct {
	// Pointer 指针在窗口坐标系中的位置
	Pointer Vec2
	// PointerDown 主按键（鼠标左键/触摸）当前是否按下
	PointerDown bool
	// PauseDown 暂停键当前是否按下
	PauseDown bool
}

// Projectile 投射物状态
type Projectile struct {
	Position Vec2
	Velocity Vec2
	// Angle 弧度；瞄准阶段为瞄准方向，飞行阶段为贴图朝向（已含 90° 偏移）
	Angle float64
}

// Simulation 标枪模拟
//
// 每帧由运行时调用一次 Update，随后渲染层只读访问状态。
// 非并发安全，整个状态归当前帧独占。
type Simulation struct {
	params     Params
	projectile Projectile
	phase      Phase
	paused     bool
	ended      bool

	// 上一帧主按键状态，用于检测释放边沿
	wasPointerDown bool

	// 飞行时间（秒），暂停时不累计
	elapsed float64
}

// New 创建新的模拟会话
//
// 投射物位于发射点，角度为 0，处于瞄准阶段。
func New(params Params) *Simulation {
	if params.AimRule == nil {
		params.AimRule = LeftOfLaunch
	}
	return &Simulation{
		params: params,
		projectile: Projectile{
			Position: params.LaunchPoint,
		},
		phase: PhaseAiming,
	}
}

// Update 推进一帧
//
// 返回 true 表示本帧首次检测到投射物落到地面线以下，会话应当结束。
// 之后的调用不再改变状态并始终返回 false。
func (s *Simulation) Update(dt float64, in FrameInput) bool {
	if s.ended {
		return false
	}

	s.paused = in.PauseDown

	switch s.phase {
	case PhaseAiming:
		if !s.paused {
			s.aim(in)
		}
	case PhaseInFlight:
		if !s.paused {
			s.integrate(dt)
		}
	}
	s.wasPointerDown = in.PointerDown

	// 地面判定不受暂停影响
	if s.projectile.Position.Y > s.params.LaunchPoint.Y {
		s.ended = true
		log.Printf("[Simulation] Landed at (%.2f, %.2f) after %.2fs",
			s.projectile.Position.X, s.projectile.Position.Y, s.elapsed)
		return true
	}
	return false
}

// aim 瞄准阶段的单帧处理
func (s *Simulation) aim(in FrameInput) {
	if in.PointerDown {
		if s.AimValid(in.Pointer) {
			s.projectile.Angle = s.params.LaunchPoint.Sub(in.Pointer).Angle()
		}
		return
	}

	// 释放边沿：使用上一帧留下的角度发射
	if s.wasPointerDown {
		s.launch()
	}
}

// launch 提交发射，阶段单向切换到飞行
func (s *Simulation) launch() {
	s.projectile.Velocity = FromAngle(s.projectile.Angle, s.params.LaunchSpeed)
	s.phase = PhaseInFlight
	log.Printf("[Simulation] Launched: angle=%.3f rad, velocity=(%.2f, %.2f)",
		s.projectile.Angle, s.projectile.Velocity.X, s.projectile.Velocity.Y)
}

// integrate 飞行阶段的半隐式积分
func (s *Simulation) integrate(dt float64) {
	g := s.params.Gravity
	p := &s.projectile

	p.Position.X += p.Velocity.X * dt
	p.Position.Y += p.Velocity.Y*dt - g*dt*dt/2
	p.Velocity.Y += g * dt
	p.Angle = p.Velocity.Angle() + spriteOffset

	s.elapsed += dt
}

// AimValid 指针是否处于有效瞄准区域
func (s *Simulation) AimValid(pointer Vec2) bool {
	return s.params.AimRule(s.params.LaunchPoint.Sub(pointer))
}

// Phase 当前阶段
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Released 是否已发射
func (s *Simulation) Released() bool {
	return s.phase.Released()
}

// Paused 本帧是否处于暂停
func (s *Simulation) Paused() bool {
	return s.paused
}

// Ended 是否已触发落地
func (s *Simulation) Ended() bool {
	return s.ended
}

// Projectile 返回投射物状态的副本
func (s *Simulation) Projectile() Projectile {
	return s.projectile
}

// LaunchPoint 发射点
func (s *Simulation) LaunchPoint() Vec2 {
	return s.params.LaunchPoint
}

// Params 构造时传入的参数
func (s *Simulation) Params() Params {
	return s.params
}

// Elapsed 飞行时间（秒）
func (s *Simulation) Elapsed() float64 {
	return s.elapsed
}

// Distance 距发射点的水平距离
func (s *Simulation) Distance() float64 {
	return s.projectile.Position.X - s.params.LaunchPoint.X
}

// RenderRotation 渲染用的旋转角
//
// 飞行阶段的 Angle 已含贴图偏移；瞄准预览时补上同样的偏移，
// 使标枪尖端指向发射方向。
func (s *Simulation) RenderRotation() float64 {
	if s.phase == PhaseAiming {
		return s.projectile.Angle + spriteOffset
	}
	return s.projectile.Angle
}
