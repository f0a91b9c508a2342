// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 Run()，移动端通过 mobile/mobile.go 调用 NewApp()。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/Drodd/2dBakery/pkg/config"
	"github.com/Drodd/2dBakery/pkg/embedded"
	"github.com/Drodd/2dBakery/pkg/game"
	"github.com/Drodd/2dBakery/pkg/logging"
	"github.com/Drodd/2dBakery/pkg/scenes"
)

// 默认路径与窗口参数
const (
	DefaultConfigPath  = "data/game.yaml"
	ResourceConfigPath = "assets/config/resources.yaml"
	SettingsAppName    = "2dbakery"
	WindowTitle        = "2D Bakery"
	audioSampleRate    = 48000
	windowResetDelay   = 3
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件，为空时使用嵌入的 data/game.yaml
	ConfigPath string
	// Fullscreen 以全屏启动（也会读取已保存的偏好）
	Fullscreen bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	clock           *game.Clock

	// 逻辑屏幕尺寸，与配置的世界尺寸一致
	screenWidth, screenHeight int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数

	logger *log.Logger
}

// LoadConfig 加载游戏配置
//
// 参数：
//   - path: 配置文件路径，为空时读取嵌入的 data/game.yaml（不存在时使用默认值）
//
// 返回：
//   - *config.GameConfig: 已合并默认值并通过验证的配置
//   - error: 文件无法读取、解析或验证失败
func LoadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}
	data, err := embedded.ReadFileWithFallback(DefaultConfigPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config.DefaultGameConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", DefaultConfigPath, err)
	}
	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", DefaultConfigPath, err)
	}
	return cfg, nil
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 只有配置错误会导致失败；资源清单、设置存储缺失都会降级运行。
func NewApp(cfg Config) (*App, error) {
	logging.Setup(os.Stderr, cfg.Verbose)
	logger := logging.For("App")

	gameCfg, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("game config: %w", err)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(audioSampleRate)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(ResourceConfigPath); err != nil {
		logger.Warn("resource config unavailable, drawing fallbacks", "err", err)
	}

	// 设置存储不可用时只保留内存设置
	store, err := game.OpenSettingsStore(SettingsAppName)
	if err != nil {
		logger.Warn("settings will not be saved", "err", err)
	}
	settingsManager := game.NewSettingsManager(store)
	audioManager := game.NewAudioManager(settingsManager, gameCfg.Audio.BGMVolume)

	a := &App{
		settingsManager: settingsManager,
		clock:           game.NewClock(nil),
		logger:          logger,
	}
	a.screenWidth, a.screenHeight = gameCfg.ScreenSize()

	// 加载场景把结果写入 assets，游戏场景从中读取
	assets := &scenes.Assets{}
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		switch name {
		case game.SceneLoading:
			return scenes.NewLoadingScene(resourceManager, sceneManager, gameCfg, assets)
		case game.SceneGame:
			return scenes.NewGameScene(gameCfg, assets, audioManager, settingsManager, a)
		}
		return nil
	})
	if !sceneManager.Load(game.SceneLoading) {
		return nil, errors.New("failed to create loading scene")
	}
	a.sceneManager = sceneManager

	if cfg.Fullscreen || settingsManager.GetSettings().Fullscreen {
		a.SetFullscreen(true)
	}
	ebiten.SetWindowClosingHandled(true)

	logger.Debug("app initialized",
		"world", fmt.Sprintf("%vx%v", gameCfg.World.Width, gameCfg.World.Height),
		"timer", gameCfg.Timer.Seconds,
		"persistentSettings", settingsManager.IsPersistent())
	return a, nil
}

// Run 创建窗口并运行游戏循环，直到窗口关闭
func Run(cfg Config) error {
	a, err := NewApp(cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(a.Layout(0, 0))
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if !a.sceneManager.SaveOnExit() {
			a.logger.Warn("settings were not saved")
		}
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.Layout(0, 0)
			ebiten.SetWindowSize(w, h)
			a.logger.Debug("delayed SetWindowSize", "w", w, "h", h)
			a.pendingWindowSizeReset = false
		}
	}

	a.sceneManager.Update(a.clock.Tick())
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制缩放时的 letterbox 颜色与滤波
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（宽高比不一致时两侧为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 与配置的世界尺寸一致，独立于实际窗口大小，Ebitengine 会保持宽高比缩放；
// 未初始化时使用默认逻辑分辨率
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.screenWidth <= 0 || a.screenHeight <= 0 {
		return config.GameWindowWidth, config.GameWindowHeight
	}
	return a.screenWidth, a.screenHeight
}

// IsFullscreen 实现 scenes.Window
func (a *App) IsFullscreen() bool {
	return ebiten.IsFullscreen()
}

// SetFullscreen 实现 scenes.Window
// 退出全屏后延迟几帧再恢复窗口大小，让窗口管理器有时间处理
func (a *App) SetFullscreen(enabled bool) {
	if !enabled && ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = windowResetDelay
		a.logger.Debug("exit fullscreen, will reset window size", "frames", windowResetDelay)
		return
	}
	ebiten.SetFullscreen(enabled)
}
