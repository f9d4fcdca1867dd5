package main

import (
	"errors"
	"flag"
	"log"

	"github.com/decker502/javelin/pkg/app"
	"github.com/decker502/javelin/pkg/config"
	"github.com/decker502/javelin/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag  = flag.String("config", config.DefaultConfigPath, "Simulation config file (embedded or on disk)")
)

func main() {
	flag.Parse()

	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	cfg := gameApp.SimulationConfig()
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Physics.TickRate)
	ebiten.SetFullscreen(gameApp.Fullscreen())

	// 落地或按 Esc 时 Update 返回 ebiten.Termination
	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	gameApp.Shutdown()
}
