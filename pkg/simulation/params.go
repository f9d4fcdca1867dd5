package simulation

// 默认物理参数
const (
	// DefaultGravity 重力加速度（单位/秒²，方向向下）
	DefaultGravity = 9.8
	// DefaultLaunchSpeed 发射速度大小（单位/秒）
	DefaultLaunchSpeed = 50.0
	// DefaultTickRate 帧率（Hz）
	DefaultTickRate = 60
)

// AimRule 判断指针是否处于有效瞄准区域
//
// delta = launch - pointer
type AimRule func(delta Vec2) bool

// LeftOfLaunch 指针位于发射点左侧即为有效（向后拉动瞄准）
func LeftOfLaunch(delta Vec2) bool {
	return delta.X > 0
}

// Params 模拟的不可变配置，在构造时传入
type Params struct {
	// Gravity 重力加速度
	Gravity float64
	// LaunchSpeed 发射瞬间的速度大小
	LaunchSpeed float64
	// LaunchPoint 发射点，同时也是地面判定线
	LaunchPoint Vec2
	// AimRule 瞄准区域规则，nil 时使用 LeftOfLaunch
	AimRule AimRule
}

// DefaultParams 返回给定发射点的默认参数
func DefaultParams(launch Vec2) Params {
	return Params{
		Gravity:     DefaultGravity,
		LaunchSpeed: DefaultLaunchSpeed,
		LaunchPoint: launch,
		AimRule:     LeftOfLaunch,
	}
}
