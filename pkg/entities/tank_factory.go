package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/fishtank/pkg/components"
	"github.com/gonewx/fishtank/pkg/ecs"
	"github.com/gonewx/fishtank/pkg/game"
	"github.com/gonewx/fishtank/pkg/types"
)

// NewBackground 创建水槽背景实体
// 背景只用于显示，没有物理刚体
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源加载器
//   - x, y: 背景中心（世界坐标）
//   - width, height: 绘制尺寸
func NewBackground(em *ecs.EntityManager, rm ImageLoader, x, y, width, height float64) (ecs.EntityID, error) {
	id, sprite, err := newSpriteEntity(em, rm, game.ImageBackground, "background", x, y, ZBackground)
	if err != nil {
		return 0, err
	}
	sprite.Width = width
	sprite.Height = height
	return id, nil
}

// NewFish 创建鱼实体
//
// 刚体配置：
//   - 与图像同尺寸的矩形
//   - 分类 Fish，只与 Food 产生接触通知
//   - 不与任何分类阻挡碰撞（传感器）
//   - 启用精确检测
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源加载器
//   - x, y: 出生位置（世界坐标）
//
// 返回:
//   - ecs.EntityID: 鱼实体ID
//   - error: 图像加载失败时返回错误
func NewFish(em *ecs.EntityManager, rm ImageLoader, x, y float64) (ecs.EntityID, error) {
	id, sprite, err := newSpriteEntity(em, rm, game.ImageFish, "fish", x, y, ZFish)
	if err != nil {
		return 0, fmt.Errorf("failed to create fish: %w", err)
	}

	ecs.AddComponent(em, id, &components.CategoryComponent{Category: types.CategoryFish})
	ecs.AddComponent(em, id, &components.PhysicsBodyComponent{
		Shape:         components.ShapeBox,
		Width:         sprite.Width,
		Height:        sprite.Height,
		Category:      types.CategoryFish,
		ContactMask:   types.CategoryFood,
		CollisionMask: types.CategoryNone,
		Precise:       true,
	})

	log.Printf("[TankFactory] Created fish %d at (%.1f, %.1f), size %.0fx%.0f", id, x, y, sprite.Width, sprite.Height)
	return id, nil
}
