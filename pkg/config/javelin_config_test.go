package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "javelin.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}
	return path
}

// TestDefaultSimulationConfig 测试默认配置有效
func TestDefaultSimulationConfig(t *testing.T) {
	cfg := DefaultSimulationConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("Window: got %dx%d, want 640x480", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Physics.Gravity != 9.8 {
		t.Errorf("Gravity: got %v, want 9.8", cfg.Physics.Gravity)
	}
	if got := cfg.DeltaTime(); got != 1.0/60.0 {
		t.Errorf("DeltaTime: got %v, want 1/60", got)
	}
}

// TestLoadSimulationConfig 测试从文件加载，缺省字段保留默认值
func TestLoadSimulationConfig(t *testing.T) {
	path := writeTempConfig(t, `
physics:
  launchSpeed: 80
launchPoint:
  x: 200
  y: 300
pauseKey: P
exitOnLanding: false
`)

	cfg, err := LoadSimulationConfig(path)
	if err != nil {
		t.Fatalf("LoadSimulationConfig() error: %v", err)
	}

	if cfg.Physics.LaunchSpeed != 80 {
		t.Errorf("LaunchSpeed: got %v, want 80", cfg.Physics.LaunchSpeed)
	}
	if cfg.Physics.Gravity != 9.8 {
		t.Errorf("Gravity should keep default, got %v", cfg.Physics.Gravity)
	}
	if cfg.ExitOnLanding {
		t.Error("ExitOnLanding: got true, want false")
	}

	params := cfg.Params()
	if params.LaunchPoint.X != 200 || params.LaunchPoint.Y != 300 {
		t.Errorf("Params.LaunchPoint: got %v", params.LaunchPoint)
	}
	if params.LaunchSpeed != 80 {
		t.Errorf("Params.LaunchSpeed: got %v, want 80", params.LaunchSpeed)
	}
	if params.AimRule == nil {
		t.Error("Params.AimRule is nil")
	}
}

// TestLoadSimulationConfigMissingFile 测试文件不存在
func TestLoadSimulationConfigMissingFile(t *testing.T) {
	_, err := LoadSimulationConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
}

// TestLoadSimulationConfigBadYAML 测试 YAML 解析失败
func TestLoadSimulationConfigBadYAML(t *testing.T) {
	path := writeTempConfig(t, "window: [unclosed")
	if _, err := LoadSimulationConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

// TestSimulationConfigValidate 测试各类无效配置
func TestSimulationConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *SimulationConfig)
	}{
		{"zero width", func(c *SimulationConfig) { c.Window.Width = 0 }},
		{"negative height", func(c *SimulationConfig) { c.Window.Height = -1 }},
		{"zero tick rate", func(c *SimulationConfig) { c.Physics.TickRate = 0 }},
		{"negative gravity", func(c *SimulationConfig) { c.Physics.Gravity = -9.8 }},
		{"zero speed", func(c *SimulationConfig) { c.Physics.LaunchSpeed = 0 }},
		{"launch outside window", func(c *SimulationConfig) { c.LaunchPoint.X = 1000 }},
		{"unknown pause key", func(c *SimulationConfig) { c.PauseKey = "NotAKey" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSimulationConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() should fail for %s", tt.name)
			}
		})
	}
}

// TestPauseEbitenKey 测试暂停键解析
func TestPauseEbitenKey(t *testing.T) {
	cfg := DefaultSimulationConfig()
	cfg.PauseKey = "bogus"

	_, err := cfg.PauseEbitenKey()
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey, got %v", err)
	}

	cfg.PauseKey = "P"
	if _, err := cfg.PauseEbitenKey(); err != nil {
		t.Errorf("PauseEbitenKey(P) error: %v", err)
	}
}
