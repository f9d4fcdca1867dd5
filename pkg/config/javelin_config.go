package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/decker502/javelin/pkg/embedded"
	"github.com/decker502/javelin/pkg/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 默认配置文件路径
const DefaultConfigPath = "data/javelin.yaml"

// ErrUnknownKey 暂停键名称无法识别
var ErrUnknownKey = errors.New("unknown key name")

// SimulationConfig 标枪模拟配置
//
// 配置文件位置: data/javelin.yaml
type SimulationConfig struct {
	Window      WindowConfig  `yaml:"window"`
	Physics     PhysicsConfig `yaml:"physics"`
	LaunchPoint PointConfig   `yaml:"launchPoint"`

	// Sprite 标枪贴图路径（必须以 assets/ 开头）
	Sprite string `yaml:"sprite"`

	// PauseKey 暂停键名称（ebiten 键名，如 "Space"、"P"）
	PauseKey string `yaml:"pauseKey"`

	Background RGBConfig `yaml:"background"`

	// ExitOnLanding 落地后是否结束进程；false 时重新开始一轮
	ExitOnLanding bool `yaml:"exitOnLanding"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PhysicsConfig 物理参数
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	LaunchSpeed float64 `yaml:"launchSpeed"`
	TickRate    int     `yaml:"tickRate"`
}

// PointConfig 二维坐标
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RGBConfig 颜色
type RGBConfig struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// DefaultSimulationConfig 返回默认配置
func DefaultSimulationConfig() *SimulationConfig {
	return &SimulationConfig{
		Window: WindowConfig{
			Width:  640,
			Height: 480,
			Title:  "Javelin",
		},
		Physics: PhysicsConfig{
			Gravity:     simulation.DefaultGravity,
			LaunchSpeed: simulation.DefaultLaunchSpeed,
			TickRate:    simulation.DefaultTickRate,
		},
		LaunchPoint:   PointConfig{X: 120, Y: 380},
		Sprite:        "assets/images/arrow.png",
		PauseKey:      "Space",
		Background:    RGBConfig{R: 51, G: 77, B: 230},
		ExitOnLanding: true,
	}
}

// LoadSimulationConfig 加载标枪模拟配置
//
// 优先从嵌入资源读取，嵌入资源不可用或不存在该文件时回退到文件系统。
// 文件中未出现的字段保留默认值。
func LoadSimulationConfig(path string) (*SimulationConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	cfg := DefaultSimulationConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	return cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// Validate 验证配置有效性
func (c *SimulationConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Physics.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive: %d", c.Physics.TickRate)
	}
	if c.Physics.Gravity < 0 {
		return fmt.Errorf("gravity must not be negative: %.2f", c.Physics.Gravity)
	}
	if c.Physics.LaunchSpeed <= 0 {
		return fmt.Errorf("launchSpeed must be positive: %.2f", c.Physics.LaunchSpeed)
	}

	lp := c.LaunchPoint
	if lp.X < 0 || lp.Y < 0 || lp.X > float64(c.Window.Width) || lp.Y > float64(c.Window.Height) {
		return fmt.Errorf("launchPoint (%.1f, %.1f) outside window %dx%d",
			lp.X, lp.Y, c.Window.Width, c.Window.Height)
	}

	if _, err := c.PauseEbitenKey(); err != nil {
		return err
	}
	return nil
}

// PauseEbitenKey 解析暂停键
func (c *SimulationConfig) PauseEbitenKey() (ebiten.Key, error) {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(c.PauseKey)); err != nil {
		return 0, fmt.Errorf("pauseKey %q: %w", c.PauseKey, ErrUnknownKey)
	}
	return key, nil
}

// Params 转换为模拟参数
func (c *SimulationConfig) Params() simulation.Params {
	params := simulation.DefaultParams(simulation.NewVec2(c.LaunchPoint.X, c.LaunchPoint.Y))
	params.Gravity = c.Physics.Gravity
	params.LaunchSpeed = c.Physics.LaunchSpeed
	return params
}

// DeltaTime 固定时间步长（秒）
func (c *SimulationConfig) DeltaTime() float64 {
	return 1.0 / float64(c.Physics.TickRate)
}

// BackgroundColor 背景色
func (c *SimulationConfig) BackgroundColor() color.RGBA {
	return color.RGBA{R: c.Background.R, G: c.Background.G, B: c.Background.B, A: 255}
}
