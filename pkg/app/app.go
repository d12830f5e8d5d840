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

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/fishtank/pkg/config"
	"github.com/gonewx/fishtank/pkg/embedded"
	"github.com/gonewx/fishtank/pkg/game"
	"github.com/gonewx/fishtank/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Debug 显示调试信息（运行时可用 F3 切换）
	Debug bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	tankScene    *scenes.TankScene
	tankConfig   *config.TankConfig
	verbose      bool
	debug        bool
}

// NewApp 创建并初始化游戏应用
//
// embedded 包已初始化时从嵌入的 data/tank.yaml 读取水槽配置，
// 否则使用 config.DefaultTankConfig()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tankConfig, err := loadTankConfig()
	if err != nil {
		return nil, err
	}

	// 创建资源管理器并生成全部图像
	resourceManager := game.NewResourceManager(tankConfig)
	if err := resourceManager.LoadAll(); err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}

	tankScene, err := scenes.NewTankScene(tankConfig, resourceManager, scenes.TankSceneOptions{
		Debug: cfg.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(tankScene)

	log.Printf("[App] Fish tank started (%dx%d)", tankConfig.Scene.Width, tankConfig.Scene.Height)

	return &App{
		sceneManager: sceneManager,
		tankScene:    tankScene,
		tankConfig:   tankConfig,
		verbose:      cfg.Verbose,
		debug:        cfg.Debug,
	}, nil
}

// loadTankConfig 读取嵌入的水槽配置
func loadTankConfig() (*config.TankConfig, error) {
	if !embedded.IsInitialized() {
		log.Printf("[Config] Embedded data not initialized, using default tank config")
		return config.DefaultTankConfig(), nil
	}

	data, err := embedded.ReadFile(config.TankConfigPath)
	if err != nil {
		return nil, fmt.Errorf("水槽配置读取失败: %w", err)
	}
	tankConfig, err := config.ParseTankConfig(data)
	if err != nil {
		return nil, fmt.Errorf("水槽配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载水槽配置: %s", config.TankConfigPath)
	return tankConfig, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F3 切换调试信息
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.debug = !a.debug
		a.tankScene.SetDebug(a.debug)
		log.Printf("[App] Debug overlay: %v", a.debug)
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（场景尺寸）
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.tankConfig.Scene.Width, a.tankConfig.Scene.Height
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// TankScene 返回鱼缸场景
func (a *App) TankScene() *scenes.TankScene {
	return a.tankScene
}

// TankConfig 返回生效的水槽配置
func (a *App) TankConfig() *config.TankConfig {
	return a.tankConfig
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
