// Package app 提供演示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/bubblerow/pkg/config"
	"github.com/decker502/bubblerow/pkg/game"
	"github.com/decker502/bubblerow/pkg/scenes"
	"github.com/decker502/bubblerow/pkg/utils"
)

const (
	// DefaultWidth 桌面端默认逻辑屏幕宽度
	DefaultWidth = 480
	// MobileWidth 移动端默认逻辑屏幕宽度，窄屏上气泡更大
	MobileWidth = 360

	// ticksPerSecond 每秒更新次数
	ticksPerSecond = 60

	suggestSceneName = "suggest"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部配置文件路径，为空则使用内置配置
	ConfigPath string
	// Width 逻辑屏幕宽度
	Width int
	// Initial 首批建议直接以完整尺寸显示
	Initial bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	verbose      bool
	width        int
	height       int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.Width <= 0 {
		cfg.Width = defaultWidth()
	}

	suggestConfig, err := config.ResolveSuggestConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.Register(suggestSceneName, func() (game.Scene, error) {
		return scenes.NewSuggestScene(scenes.SuggestSceneConfig{
			Width:   cfg.Width,
			Suggest: suggestConfig,
			Initial: cfg.Initial,
		})
	})

	if err := sceneManager.Switch(suggestSceneName); err != nil {
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}

	a := &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
		width:        cfg.Width,
		height:       cfg.Width / 2,
	}
	if sized, ok := sceneManager.GetCurrentScene().(game.Sized); ok {
		a.width, a.height = sized.Width(), sized.Height()
	}

	log.Printf("[App] 初始化完成: 逻辑尺寸 %dx%d", a.width, a.height)
	return a, nil
}

func defaultWidth() int {
	if utils.IsMobile() {
		return MobileWidth
	}
	return DefaultWidth
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（仅桌面端）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / ticksPerSecond)
	return nil
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
	return a.width, a.height
}

// Size 逻辑屏幕尺寸，用于设置初始窗口大小
func (a *App) Size() (int, int) {
	return a.width, a.height
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
