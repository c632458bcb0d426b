// Command factorytutor runs the interactive factory tutorial.
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose             Enable verbose logging
//	--config <path>       Load stage thresholds from an external YAML file
//	--reset               Clear the "played tutorial" flag before starting
//	--metrics-addr <addr> Serve Prometheus metrics on addr (e.g. ":2112")
//	--quit-on-finish      Exit once the launch is confirmed
//
// Each flag defaults to its FACTORYTUTOR_* environment variable
// (FACTORYTUTOR_VERBOSE, FACTORYTUTOR_CONFIG, FACTORYTUTOR_RESET,
// FACTORYTUTOR_METRICS_ADDR, FACTORYTUTOR_QUIT_ON_FINISH).
//
// Controls:
//
//	Left/Right  - Previous/next sentence
//	Space       - Pause
//	F11         - Toggle fullscreen
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/factorytutor/pkg/app"
	"github.com/decker502/factorytutor/pkg/config"
	"github.com/decker502/factorytutor/pkg/embedded"
)

func main() {
	// 环境变量提供默认值，命令行参数覆盖
	cfg, err := app.ConfigFromEnv()
	if err != nil {
		log.Fatalf("环境变量解析失败: %v", err)
	}
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Enable verbose logging")
	flag.StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Path to an external tutorial config (default: embedded data/tutorial.yaml)")
	flag.BoolVar(&cfg.ResetProgress, "reset", cfg.ResetProgress, "Clear tutorial completion before starting")
	flag.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Serve Prometheus /metrics on this address")
	flag.BoolVar(&cfg.QuitOnFinish, "quit-on-finish", cfg.QuitOnFinish, "Exit after the launch is confirmed")
	flag.Parse()

	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("教学初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Factory Tutorial")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.Settings().GetSettings().Fullscreen)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
