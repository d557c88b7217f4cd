// Package app 提供画布应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/splitcanvas/pkg/config"
	"github.com/decker502/splitcanvas/pkg/game"
	"github.com/decker502/splitcanvas/pkg/scenes"
	"github.com/decker502/splitcanvas/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "splitcanvas"

// maxFrameDelta 单帧最大时间步长（秒）
// 窗口拖动或断点暂停后不会一次性跳完整段动画
const maxFrameDelta = 0.1

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Variant 指定控制器变体，为空则使用上次保存的或配置文件默认值
	Variant string
}

// App 是画布应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	verbose      bool

	lastTick time.Time

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化画布应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	settings, err := game.NewSettingsManager(openStorage())
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}

	configs, err := config.NewCanvasConfigManager(config.CanvasConfigPath)
	if err != nil {
		return nil, fmt.Errorf("画布配置加载失败: %w", err)
	}
	log.Printf("[Config] 可用变体: %v", configs.ListVariants())

	scene, err := scenes.NewCanvasScene(configs, settings, cfg.Variant)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	if settings.GetSettings().Fullscreen && !utils.IsMobile() {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		verbose:      cfg.Verbose,
	}, nil
}

// openStorage 打开 gdata 存储
// 失败时返回 nil，设置管理器进入降级模式
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return manager
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.CanvasWindowWidth, config.CanvasWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.CanvasWindowWidth, config.CanvasWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) || inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(a.frameDelta(time.Now()))
	return nil
}

// frameDelta 返回距上一 tick 的秒数
// 首帧使用名义 tick 间隔，之后限制在 (0, maxFrameDelta]
func (a *App) frameDelta(now time.Time) float64 {
	nominal := 1.0 / float64(ebiten.TPS())
	if a.lastTick.IsZero() {
		a.lastTick = now
		return nominal
	}
	dt := now.Sub(a.lastTick).Seconds()
	a.lastTick = now
	if dt <= 0 {
		return nominal
	}
	return min(dt, maxFrameDelta)
}

func (a *App) toggleFullscreen() {
	if utils.IsMobile() {
		return
	}
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settings.SetFullscreen(ebiten.IsFullscreen())
}

// Draw 绘制画面
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

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.CanvasWindowWidth, config.CanvasWindowHeight
}

// Shutdown 拆除当前场景（控制器被拆除、设置被保存）
// 在 ebiten.RunGame 返回后调用
func (a *App) Shutdown() {
	a.sceneManager.Shutdown()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
