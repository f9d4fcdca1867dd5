package simulation

// Phase 投射物状态机的阶段
//
// 只允许 PhaseAiming -> PhaseInFlight 的单向转换。
type Phase uint8

const (
	// PhaseAiming 瞄准阶段：速度恒为零，角度跟随指针
	PhaseAiming Phase = iota
	// PhaseInFlight 飞行阶段：受重力积分
	PhaseInFlight
)

// String 返回阶段名称（用于 HUD 和日志）
func (p Phase) String() string {
	switch p {
	case PhaseAiming:
		return "Aiming"
	case PhaseInFlight:
		return "InFlight"
	default:
		return "Unknown"
	}
}

// Released 投射物是否已经发射
func (p Phase) Released() bool {
	return p == PhaseInFlight
}
