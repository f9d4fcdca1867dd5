// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	synth "github.com/decker502/javelin/internal/audio"
	"github.com/decker502/javelin/pkg/config"
	"github.com/decker502/javelin/pkg/game"
	"github.com/decker502/javelin/pkg/scenes"
	"github.com/decker502/javelin/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// storageAppName gdata 存储目录名
const storageAppName = "javelin"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 模拟配置文件路径，为空时使用 data/javelin.yaml
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg             *config.SimulationConfig
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(appCfg Config) (*App, error) {
	// 配置日志输出
	if !appCfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := appCfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}
	cfg, err := config.LoadSimulationConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("模拟配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载模拟配置: %s", configPath)

	pauseKey, err := cfg.PauseEbitenKey()
	if err != nil {
		return nil, fmt.Errorf("暂停键配置无效: %w", err)
	}

	// 设置持久化失败时降级为仅内存设置
	storage, err := game.OpenStorage(storageAppName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not be persisted)", err)
	}
	settingsManager, err := game.NewSettingsManager(storage)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}

	audioContext := audio.NewContext(synth.DefaultSampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	audioManager.Preload()
	log.Printf("[App] AudioManager initialized")

	resourceManager := game.NewResourceManager()
	input := utils.NewInputSampler(pauseKey)

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		return scenes.NewJavelinScene(cfg, resourceManager, audioManager, settingsManager, input)
	})
	if !sceneManager.Restart() {
		return nil, fmt.Errorf("无法创建投掷场景")
	}

	return &App{
		cfg:             cfg,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         appCfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[App] Escape pressed, quitting")
		return ebiten.Termination
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// R 重新开始一轮
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.sceneManager.Restart()
	}

	a.sceneManager.Update(a.cfg.DeltaTime())

	if a.sceneManager.Finished() {
		if a.cfg.ExitOnLanding && !utils.IsMobile() {
			log.Printf("[App] Session ended")
			return ebiten.Termination
		}
		a.sceneManager.Restart()
	}
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := a.settingsManager.ToggleFullscreen()
	ebiten.SetFullscreen(fullscreen)

	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// SimulationConfig 返回已加载的配置（用于设置窗口）
func (a *App) SimulationConfig() *config.SimulationConfig {
	return a.cfg
}

// Fullscreen 返回持久化的全屏偏好
func (a *App) Fullscreen() bool {
	return a.settingsManager.GetSettings().Fullscreen
}

// Shutdown 在游戏循环结束后保存状态（窗口关闭、Esc、落地退出）
func (a *App) Shutdown() {
	a.sceneManager.SaveOnExit()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
