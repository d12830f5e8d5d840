package systems

import (
	"log"

	"github.com/gonewx/fishtank/pkg/components"
	"github.com/gonewx/fishtank/pkg/ecs"
	"github.com/gonewx/fishtank/pkg/entities"
	"github.com/gonewx/fishtank/pkg/types"
)

// ContactSystem 接触分类与响应
//
// 只响应鱼与饵料的接触（参与者顺序任意）：
//  1. 记录鱼的位置，把鱼从场景移除
//  2. 在鱼的左侧生成爱心标记：标记右边缘与鱼左边缘对齐，Y 与鱼相同
//  3. 标记淡出后移除
//
// 饵料不受影响，继续下落。
type ContactSystem struct {
	entityManager *ecs.EntityManager
	actionSystem  *ActionSystem
	loader        entities.ImageLoader
	fish          *FishSlot
	fadeDuration  float64

	hits int
}

// NewContactSystem 创建接触响应系统
//
// 参数:
//   - em: 实体管理器
//   - as: 动作系统（用于标记淡出）
//   - loader: 标记图像加载器
//   - fish: 鱼槽位，鱼被移除后清空
//   - fadeDuration: 标记淡出耗时（秒）
func NewContactSystem(em *ecs.EntityManager, as *ActionSystem, loader entities.ImageLoader, fish *FishSlot, fadeDuration float64) *ContactSystem {
	return &ContactSystem{
		entityManager: em,
		actionSystem:  as,
		loader:        loader,
		fish:          fish,
		fadeDuration:  fadeDuration,
	}
}

// HitCount 返回已响应的鱼-饵料接触次数
func (s *ContactSystem) HitCount() int {
	return s.hits
}

// HandleContact 实现 ContactListener
func (s *ContactSystem) HandleContact(contact Contact) {
	fishIsA, ok := types.MatchFishFood(contact.CategoryA, contact.CategoryB)
	if !ok {
		return
	}

	fishID, foodID := contact.A, contact.B
	if !fishIsA {
		fishID, foodID = contact.B, contact.A
	}

	// 同一帧内的多次接触只响应第一次
	if !s.entityManager.Exists(fishID) || !s.entityManager.Exists(foodID) {
		return
	}

	fishPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, fishID)
	if !ok {
		return
	}
	fishSprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, fishID)
	if !ok {
		return
	}
	fishX, fishY := fishPos.X, fishPos.Y
	fishHalfWidth := fishSprite.HalfWidth()

	s.entityManager.DestroyEntity(fishID)
	s.fish.Release(fishID)
	s.hits++

	markerID, err := entities.NewMarker(s.entityManager, s.loader, fishX, fishY)
	if err != nil {
		log.Printf("[ContactSystem] Warning: failed to spawn marker: %v", err)
		return
	}
	if markerSprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, markerID); ok {
		if markerPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, markerID); ok {
			markerPos.X = fishX - fishHalfWidth - markerSprite.HalfWidth()
		}
	}

	s.actionSystem.RunAction(markerID, components.Sequence(
		components.FadeOut(s.fadeDuration),
		components.RemoveFromParent(),
	))

	log.Printf("[ContactSystem] Hit: fish %d ate food %d at (%.1f, %.1f), marker %d", fishID, foodID, fishX, fishY, markerID)
}
