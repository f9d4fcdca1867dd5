package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/decker502/javelin/pkg/config"
	"github.com/decker502/javelin/pkg/game"
	"github.com/decker502/javelin/pkg/simulation"
	"github.com/decker502/javelin/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 落地后到重新开始之间的停留时间（秒），仅在不退出时使用
const landedBannerDuration = 1.5

// 瞄准辅助线长度（像素）
const aimGuideLength = 60.0

var (
	groundColor   = color.RGBA{R: 40, G: 120, B: 50, A: 255}
	launchColor   = color.RGBA{R: 250, G: 220, B: 80, A: 255}
	aimGuideColor = color.RGBA{R: 255, G: 255, B: 255, A: 160}
)

// JavelinScene 标枪投掷场景
//
// 每帧采样输入并推进模拟，随后按模拟状态绘制地面、发射点、瞄准线和标枪。
type JavelinScene struct {
	cfg             *config.SimulationConfig
	sim             *simulation.Simulation
	input           InputSource
	sprite          *ebiten.Image
	audioManager    *game.AudioManager
	settingsManager *game.SettingsManager

	// lastInput 上一帧输入，用于绘制瞄准线
	lastInput simulation.FrameInput

	// landedTime 落地后经过的时间
	landedTime float64
}

// NewJavelinScene 创建新一轮投掷
//
// 参数：
//   - cfg: 已验证的模拟配置
//   - rm: 资源管理器（用于加载标枪贴图）
//   - am: 音频管理器，可为 nil
//   - sm: 设置管理器，可为 nil
//   - input: 输入源
func NewJavelinScene(
	cfg *config.SimulationConfig,
	rm *game.ResourceManager,
	am *game.AudioManager,
	sm *game.SettingsManager,
	input InputSource,
) *JavelinScene {
	scene := &JavelinScene{
		cfg:             cfg,
		sim:             simulation.New(cfg.Params()),
		input:           input,
		audioManager:    am,
		settingsManager: sm,
	}
	if rm != nil {
		scene.sprite = rm.LoadSprite(cfg.Sprite)
	}

	log.Printf("[JavelinScene] New session: launch=(%.1f, %.1f) speed=%.1f gravity=%.2f",
		cfg.LaunchPoint.X, cfg.LaunchPoint.Y, cfg.Physics.LaunchSpeed, cfg.Physics.Gravity)
	return scene
}

// Update 推进一帧
func (s *JavelinScene) Update(deltaTime float64) {
	if s.sim.Ended() {
		s.landedTime += deltaTime
		return
	}

	in := s.input.Sample()
	s.lastInput = in

	wasReleased := s.sim.Released()
	landed := s.sim.Update(deltaTime, in)

	if !wasReleased && s.sim.Released() {
		s.playCue(game.CueLaunch)
	}
	if landed {
		s.playCue(game.CueLanding)
		log.Printf("[JavelinScene] Distance: %.1f, flight time: %.2fs", s.sim.Distance(), s.sim.Elapsed())
	}
}

func (s *JavelinScene) playCue(cue game.Cue) {
	if s.audioManager != nil {
		s.audioManager.PlayCue(cue)
	}
}

// Finished 会话是否结束
//
// 落地即结束；需要重新开始时先停留一段时间展示结果。
func (s *JavelinScene) Finished() bool {
	if !s.sim.Ended() {
		return false
	}
	if s.exitsOnLanding() {
		return true
	}
	return s.landedTime >= landedBannerDuration
}

// exitsOnLanding 移动端无法退出进程，总是重新开始
func (s *JavelinScene) exitsOnLanding() bool {
	return s.cfg.ExitOnLanding && !utils.IsMobile()
}

// SaveOnExit 保存偏好设置
func (s *JavelinScene) SaveOnExit() bool {
	if s.settingsManager == nil {
		return true
	}
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[JavelinScene] Warning: failed to save settings: %v", err)
		return false
	}
	return true
}

// Simulation 当前模拟（只读使用）
func (s *JavelinScene) Simulation() *simulation.Simulation {
	return s.sim
}

// Draw 绘制场景
func (s *JavelinScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.cfg.BackgroundColor())

	launch := s.sim.LaunchPoint()
	lx, ly := float32(launch.X), float32(launch.Y)

	// 地面线与发射点
	vector.StrokeLine(screen, 0, ly, float32(s.cfg.Window.Width), ly, 2, groundColor, false)
	vector.DrawFilledCircle(screen, lx, ly, 3, launchColor, true)

	if s.showAimGuide() {
		s.drawAimGuide(screen)
	}
	s.drawProjectile(screen)
	s.drawHUD(screen)

	if s.sim.Ended() && !s.exitsOnLanding() {
		s.drawLandedBanner(screen)
	}
}

func (s *JavelinScene) showAimGuide() bool {
	if s.sim.Released() || !s.lastInput.PointerDown {
		return false
	}
	if s.settingsManager != nil && !s.settingsManager.GetSettings().ShowAimGuide {
		return false
	}
	return true
}

// drawAimGuide 从发射点沿当前瞄准方向画一条线
func (s *JavelinScene) drawAimGuide(screen *ebiten.Image) {
	launch := s.sim.LaunchPoint()
	tip := launch.Add(simulation.FromAngle(s.sim.Projectile().Angle, aimGuideLength))

	vector.StrokeLine(screen,
		float32(launch.X), float32(launch.Y), float32(tip.X), float32(tip.Y),
		1, aimGuideColor, true)
}

// drawProjectile 绕贴图中心旋转后平移到投射物位置
func (s *JavelinScene) drawProjectile(screen *ebiten.Image) {
	if s.sprite == nil {
		return
	}

	bounds := s.sprite.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	pos := s.sim.Projectile().Position

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(s.sim.RenderRotation())
	op.GeoM.Translate(pos.X, pos.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.sprite, op)
}

func (s *JavelinScene) drawHUD(screen *ebiten.Image) {
	p := s.sim.Projectile()

	line := fmt.Sprintf("%s  angle: %.1f°  speed: %.1f  distance: %.1f",
		s.sim.Phase(), p.Angle*180/math.Pi, p.Velocity.Length(), s.sim.Distance())
	if s.sim.Paused() {
		line += "  [PAUSED]"
	}
	ebitenutil.DebugPrintAt(screen, line, 8, 8)

	if !s.sim.Released() && !utils.IsMobile() {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("drag left of the marker and release to throw, hold %s to pause", s.cfg.PauseKey),
			8, 24)
	}
}

// drawLandedBanner 落地结果横幅，淡入显示
func (s *JavelinScene) drawLandedBanner(screen *ebiten.Image) {
	progress := utils.Clamp01(s.landedTime / landedBannerDuration)
	alpha := uint8(utils.Lerp(0, 180, utils.EaseOutCubic(progress)))

	w := float32(s.cfg.Window.Width)
	h := float32(s.cfg.Window.Height)
	vector.DrawFilledRect(screen, 0, h/2-24, w, 48, color.RGBA{A: alpha}, false)

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Landed! distance %.1f in %.2fs", s.sim.Distance(), s.sim.Elapsed()),
		int(w/2)-100, int(h/2)-8)
}
