package systems

import (
	"log"

	"github.com/gonewx/fishtank/pkg/components"
	"github.com/gonewx/fishtank/pkg/ecs"
	"github.com/gonewx/fishtank/pkg/entities"
	"github.com/gonewx/fishtank/pkg/utils"
)

// InputSystem 触摸投食
//
// 指针释放时把屏幕坐标转换为世界坐标：
//   - Y 低于阈值：忽略
//   - 否则在触摸点生成饵料，以 FallSpeed 的速度竖直下落到 Y = -半高，然后移除
type InputSystem struct {
	entityManager *ecs.EntityManager
	actionSystem  *ActionSystem
	loader        entities.ImageLoader
	pointer       utils.PointerSource

	sceneHeight float64
	threshold   float64
	fallSpeed   float64

	spawned int
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - em: 实体管理器
//   - as: 动作系统（饵料下落）
//   - loader: 饵料图像加载器
//   - pointer: 指针事件来源；nil 时只能通过 HandleTouch 投食
//   - sceneHeight: 场景高度（屏幕到世界坐标的翻转）
//   - threshold: 投食的最小Y坐标（世界坐标）
//   - fallSpeed: 下落速度（像素/秒）
func NewInputSystem(em *ecs.EntityManager, as *ActionSystem, loader entities.ImageLoader, pointer utils.PointerSource,
	sceneHeight, threshold, fallSpeed float64) *InputSystem {
	return &InputSystem{
		entityManager: em,
		actionSystem:  as,
		loader:        loader,
		pointer:       pointer,
		sceneHeight:   sceneHeight,
		threshold:     threshold,
		fallSpeed:     fallSpeed,
	}
}

// Update 处理本帧的指针释放
func (s *InputSystem) Update() {
	if s.pointer == nil {
		return
	}
	s.pointer.Update()

	released, screenX, screenY := s.pointer.JustReleased()
	if !released {
		return
	}
	worldX, worldY := utils.ScreenToWorld(float64(screenX), float64(screenY), s.sceneHeight)
	s.HandleTouch(worldX, worldY)
}

// HandleTouch 处理一次触摸（世界坐标）
//
// 返回:
//   - ecs.EntityID: 生成的饵料实体；未生成时为 InvalidEntity
func (s *InputSystem) HandleTouch(x, y float64) ecs.EntityID {
	if y < s.threshold {
		return ecs.InvalidEntity
	}

	foodID, err := entities.NewFood(s.entityManager, s.loader, x, y)
	if err != nil {
		log.Printf("[InputSystem] Warning: failed to spawn food: %v", err)
		return ecs.InvalidEntity
	}

	halfHeight := 0.0
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, foodID); ok {
		halfHeight = sprite.HalfHeight()
	}

	targetY := -halfHeight
	duration := (y - targetY) / s.fallSpeed
	s.actionSystem.RunAction(foodID, components.Sequence(
		components.MoveTo(x, targetY, duration),
		components.RemoveFromParent(),
	))
	s.spawned++

	log.Printf("[InputSystem] Food %d dropped at (%.1f, %.1f), falls %.2fs", foodID, x, y, duration)
	return foodID
}

// SpawnedCount 返回已投放的饵料数量
func (s *InputSystem) SpawnedCount() int {
	return s.spawned
}
