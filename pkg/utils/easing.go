package utils

import "math"

// 缓动函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 参考：https://easings.net/

// EaseOutCubic 三次方缓出：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把进度限制在 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
