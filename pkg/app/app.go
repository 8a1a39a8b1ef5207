// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载菜单配置、创建场景管理器，
// 并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/spinmenu/pkg/config"
	"github.com/decker502/spinmenu/pkg/embedded"
	"github.com/decker502/spinmenu/pkg/game"
	"github.com/decker502/spinmenu/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultConfigPath 内置菜单配置的路径
const DefaultConfigPath = "data/spin_menu.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 菜单配置文件路径，为空时使用内置配置
	ConfigPath string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	menuConfig               *config.MenuConfig
	configPath               string
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 使用内置配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	menuConfig, err := LoadMenuConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[App] Loaded menu config: %d pages, %dx%d",
		len(menuConfig.Pages), menuConfig.Window.Width, menuConfig.Window.Height)

	a := &App{
		sceneManager: game.NewSceneManager(),
		menuConfig:   menuConfig,
		configPath:   cfg.ConfigPath,
	}

	// F5 重新加载配置文件时使用
	a.sceneManager.SetSceneFactory(func() (game.Scene, error) {
		reloaded, err := LoadMenuConfig(a.configPath)
		if err != nil {
			return nil, err
		}
		if reloaded.Window != a.menuConfig.Window {
			return nil, fmt.Errorf("window size cannot change on reload")
		}
		a.menuConfig = reloaded
		return scenes.NewSpinMenuScene(reloaded)
	})

	scene, err := scenes.NewSpinMenuScene(menuConfig)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}
	a.sceneManager.SwitchTo(scene)

	return a, nil
}

// LoadMenuConfig 加载菜单配置
// path 为空时读取内置配置，否则从文件系统读取
func LoadMenuConfig(path string) (*config.MenuConfig, error) {
	if path != "" {
		cfg, err := config.LoadMenuConfig(path)
		if err != nil {
			return nil, fmt.Errorf("菜单配置加载失败: %w", err)
		}
		return cfg, nil
	}

	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("内置菜单配置读取失败: %w", err)
	}
	cfg, err := config.ParseMenuConfig(data)
	if err != nil {
		return nil, fmt.Errorf("内置菜单配置无效: %w", err)
	}
	return cfg, nil
}

// WindowSize 返回配置的窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.menuConfig.Window.Width, a.menuConfig.Window.Height
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	width, height := a.WindowSize()

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(width, height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", width, height)
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
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// F5 重新加载菜单配置
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := a.sceneManager.Reload(); err != nil {
			log.Printf("[App] Reload failed: %v", err)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
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

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.WindowSize()
}
