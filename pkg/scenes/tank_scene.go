package scenes

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/fishtank/pkg/config"
	"github.com/gonewx/fishtank/pkg/ecs"
	"github.com/gonewx/fishtank/pkg/entities"
	"github.com/gonewx/fishtank/pkg/systems"
	"github.com/gonewx/fishtank/pkg/utils"
)

// TankScene 鱼缸场景
//
// 场景包含背景、一条随机游动的鱼，以及触摸投放的饵料。
// 饵料碰到鱼时鱼被移除，原位置左侧出现淡出的爱心。
//
// 每帧更新顺序：
//  1. 输入（投食）
//  2. 动作（游动、下落、淡出）
//  3. 物理步进与接触响应
//  4. 清理已标记删除的实体
type TankScene struct {
	cfg           *config.TankConfig
	entityManager *ecs.EntityManager

	actionSystem  *systems.ActionSystem
	physicsSystem *systems.PhysicsSystem
	contactSystem *systems.ContactSystem
	wanderSystem  *systems.WanderSystem
	inputSystem   *systems.InputSystem
	renderSystem  *systems.RenderSystem

	fish         *systems.FishSlot
	backgroundID ecs.EntityID

	debug bool
}

// TankSceneOptions 场景的可替换依赖
type TankSceneOptions struct {
	// Pointer 指针事件来源；nil 时使用 ebiten 鼠标/触摸
	Pointer utils.PointerSource
	// RandSource 游动随机数来源；nil 时使用随机种子
	RandSource rand.Source
	// Debug 显示调试信息
	Debug bool
}

// NewTankScene 创建鱼缸场景
//
// 参数:
//   - cfg: 水槽配置
//   - loader: 图像加载器（通常是 game.ResourceManager）
//   - opts: 可替换依赖
//
// 返回:
//   - *TankScene: 已放入背景和鱼、游动已开始的场景
//   - error: 实体创建失败时返回错误
func NewTankScene(cfg *config.TankConfig, loader entities.ImageLoader, opts TankSceneOptions) (*TankScene, error) {
	if cfg == nil {
		return nil, fmt.Errorf("tank config cannot be nil")
	}
	background, err := cfg.Scene.Background()
	if err != nil {
		return nil, err
	}

	pointer := opts.Pointer
	if pointer == nil {
		pointer = utils.NewEbitenPointer()
	}

	width := float64(cfg.Scene.Width)
	height := float64(cfg.Scene.Height)

	em := ecs.NewEntityManager()
	s := &TankScene{
		cfg:           cfg,
		entityManager: em,
		fish:          systems.NewFishSlot(em),
		debug:         opts.Debug,
	}

	s.actionSystem = systems.NewActionSystem(em)
	s.physicsSystem = systems.NewPhysicsSystem(em, cfg.Physics.MaxSubsteps)
	s.contactSystem = systems.NewContactSystem(em, s.actionSystem, loader, s.fish, cfg.Marker.FadeDuration)
	s.physicsSystem.SetContactListener(s.contactSystem)
	s.wanderSystem = systems.NewWanderSystem(em, s.actionSystem, s.fish, cfg.Wander, opts.RandSource)
	s.inputSystem = systems.NewInputSystem(em, s.actionSystem, loader, pointer,
		height, cfg.TouchThreshold(), cfg.Food.FallSpeed)
	s.renderSystem = systems.NewRenderSystem(em, height, background)

	s.backgroundID, err = entities.NewBackground(em, loader,
		width*0.5, height*cfg.Scene.TankCenterRatio,
		width, height*cfg.Scene.TankHeightRatio)
	if err != nil {
		return nil, fmt.Errorf("failed to create background: %w", err)
	}

	fishX, fishY := cfg.TankCenter()
	fishID, err := entities.NewFish(em, loader, fishX, fishY)
	if err != nil {
		return nil, err
	}
	s.fish.Set(fishID)

	s.wanderSystem.Start()

	log.Printf("[TankScene] Initialized %dx%d tank, fish %d at (%.1f, %.1f)",
		cfg.Scene.Width, cfg.Scene.Height, fishID, fishX, fishY)
	return s, nil
}

// Update 推进一帧
func (s *TankScene) Update(deltaTime float64) {
	s.inputSystem.Update()
	s.actionSystem.Update(deltaTime)
	s.physicsSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *TankScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	if s.debug {
		s.drawDebug(screen)
	}
}

// HandleTouch 在世界坐标 (x, y) 处理一次触摸，返回生成的饵料
func (s *TankScene) HandleTouch(x, y float64) ecs.EntityID {
	return s.inputSystem.HandleTouch(x, y)
}

// EntityManager 返回场景的实体管理器
func (s *TankScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Fish 返回当前的鱼；鱼已被移除时返回 false
func (s *TankScene) Fish() (ecs.EntityID, bool) {
	return s.fish.Get()
}

// Background 返回背景实体
func (s *TankScene) Background() ecs.EntityID {
	return s.backgroundID
}

// HitCount 返回鱼吃到饵料的次数
func (s *TankScene) HitCount() int {
	return s.contactSystem.HitCount()
}

// SetDebug 开启或关闭调试信息
func (s *TankScene) SetDebug(enabled bool) {
	s.debug = enabled
}
