// Package app 提供教学应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"net/http"

	"github.com/caarlos0/env/v11"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/factorytutor/pkg/config"
	"github.com/decker502/factorytutor/pkg/game"
	"github.com/decker502/factorytutor/pkg/scenes"
	"github.com/decker502/factorytutor/pkg/tutorial"
	"github.com/decker502/factorytutor/pkg/ui"
	"github.com/decker502/factorytutor/pkg/utils"
)

// AppName gdata 存储使用的应用名
const AppName = "factorytutor"

// SceneTutorial 教学场景在场景管理器中的名称
const SceneTutorial = "tutorial"

// Config 定义应用启动配置
// 字段可由环境变量提供默认值，命令行参数再覆盖
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool `env:"FACTORYTUTOR_VERBOSE"`
	// ConfigPath 外部教学配置文件路径，为空时使用内嵌的 data/tutorial.yaml
	ConfigPath string `env:"FACTORYTUTOR_CONFIG"`
	// ResetProgress 启动前清除已完成教学的标记
	ResetProgress bool `env:"FACTORYTUTOR_RESET"`
	// MetricsAddr 非空时在该地址提供 Prometheus /metrics 端点（如 ":2112"）
	MetricsAddr string `env:"FACTORYTUTOR_METRICS_ADDR"`
	// QuitOnFinish 教学结束后退出游戏循环
	QuitOnFinish bool `env:"FACTORYTUTOR_QUIT_ON_FINISH"`
}

// ConfigFromEnv 从环境变量读取启动配置
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// App 是教学应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	verbose                  bool
	quitOnFinish             bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化教学应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	mobile := utils.IsMobile()
	res, err := LoadResources(cfg.ConfigPath, mobile)
	if err != nil {
		return nil, err
	}

	settings := OpenSettings()
	if cfg.ResetProgress {
		settings.Put(tutorial.PlayedTutorialKey, false)
		log.Printf("[App] Tutorial progress reset")
	} else if settings.GetBool(tutorial.PlayedTutorialKey, false) {
		log.Printf("[App] Tutorial already completed, replaying")
	}

	registry := prometheus.NewRegistry()
	metrics, err := tutorial.NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("指标注册失败: %w", err)
	}
	if cfg.MetricsAddr != "" {
		StartMetricsHTTP(cfg.MetricsAddr, registry)
	}

	face := ui.DefaultFace()

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) (game.Scene, error) {
		if name != SceneTutorial {
			return nil, fmt.Errorf("unknown scene %q", name)
		}
		return scenes.NewTutorialScene(scenes.TutorialSceneConfig{
			Stages:   res.Stages,
			Tutorial: res.Config,
			Settings: settings,
			Metrics:  metrics,
			Mobile:   mobile,
			Face:     face,
		})
	})
	if err := sceneManager.Load(SceneTutorial); err != nil {
		return nil, fmt.Errorf("教学场景创建失败: %w", err)
	}
	log.Printf("[App] Tutorial started with %d stages (mobile=%v)", len(res.Stages), mobile)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		verbose:      cfg.Verbose,
		quitOnFinish: cfg.QuitOnFinish,
	}, nil
}

// Resources 教学运行所需的静态资源
type Resources struct {
	Config *config.TutorialConfig
	Bundle *game.Bundle
	Stages []*tutorial.Stage
}

// LoadResources 加载教学配置与文本包并构建阶段列表
//
// 参数：
//   - configPath: 外部配置文件路径，为空时读取内嵌配置
//   - mobile: 是否优先使用移动端文本
//
// 返回：
//   - *Resources: 已校验的配置与阶段
//   - error: 配置、文本包或阶段构建失败
func LoadResources(configPath string, mobile bool) (*Resources, error) {
	var (
		cfg *config.TutorialConfig
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadTutorialConfig(configPath)
	} else {
		cfg, err = config.LoadEmbeddedTutorialConfig("data/tutorial.yaml")
	}
	if err != nil {
		return nil, fmt.Errorf("教学配置加载失败: %w", err)
	}
	log.Printf("[Config] Tutorial config loaded: %+v", cfg.Stages)

	bundle, err := game.NewBundle("assets/bundles/bundle.properties")
	if err != nil {
		return nil, fmt.Errorf("文本包加载失败: %w", err)
	}
	log.Printf("[Config] Bundle loaded with %d entries", bundle.Len())

	stages, err := tutorial.BuildStages(tutorial.DefaultStages(cfg.Stages), bundle, mobile)
	if err != nil {
		return nil, fmt.Errorf("教学阶段构建失败: %w", err)
	}

	return &Resources{Config: cfg, Bundle: bundle, Stages: stages}, nil
}

// OpenSettings 打开持久化设置
// gdata 不可用时退化为仅内存设置，教学照常运行
func OpenSettings() *game.SettingsManager {
	if err := utils.EnsureStorageDir(AppName); err != nil {
		log.Printf("[App] Warning: storage directory unavailable: %v", err)
	} else if path := utils.GetStoragePath(AppName); path != "" {
		log.Printf("[App] Storage path: %s", path)
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}

	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		// NewSettingsManager 目前只在致命错误时失败，此处退回内存设置
		log.Printf("[App] Warning: settings manager failed: %v", err)
		settings, _ = game.NewSettingsManager(nil)
	}
	return settings
}

// StartMetricsHTTP 在后台提供 /metrics 端点
// 非阻塞：HTTP 服务器在独立的 goroutine 中运行，随进程退出
func StartMetricsHTTP(addr string, gatherer prometheus.Gatherer) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	go func() {
		log.Printf("[Metrics] Serving /metrics on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("[Metrics] HTTP server stopped: %v", err)
		}
	}()
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
			a.settings.SetFullscreen(false)
		} else {
			ebiten.SetFullscreen(true)
			a.settings.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)

	if a.quitOnFinish && a.Finished() {
		log.Printf("[App] Tutorial finished, quitting")
		a.Close()
		return ebiten.Termination
	}
	return nil
}

// Finished 当前教学场景是否已经完成
func (a *App) Finished() bool {
	f, ok := a.sceneManager.GetCurrentScene().(interface{ Finished() bool })
	return ok && f.Finished()
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
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 关闭当前场景并保存设置
func (a *App) Close() {
	if c, ok := a.sceneManager.GetCurrentScene().(game.Closer); ok {
		c.Close()
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Settings 返回设置管理器
// 用于在启动时恢复全屏状态
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
