package entities

import (
	"fmt"

	"github.com/gonewx/fishtank/pkg/components"
	"github.com/gonewx/fishtank/pkg/ecs"
	"github.com/gonewx/fishtank/pkg/game"
	"github.com/gonewx/fishtank/pkg/types"
)

// NewFood 创建饵料实体
//
// 刚体为半径 = 图像宽度/2 的圆，分类 Food，只与 Fish 产生接触通知，
// 不阻挡碰撞，启用精确检测（下落速度随投放高度变化）。
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源加载器
//   - x, y: 投放位置（世界坐标，即触摸点）
func NewFood(em *ecs.EntityManager, rm ImageLoader, x, y float64) (ecs.EntityID, error) {
	id, sprite, err := newSpriteEntity(em, rm, game.ImageFood, "food", x, y, ZDefault)
	if err != nil {
		return 0, fmt.Errorf("failed to create food: %w", err)
	}

	ecs.AddComponent(em, id, &components.CategoryComponent{Category: types.CategoryFood})
	ecs.AddComponent(em, id, &components.PhysicsBodyComponent{
		Shape:         components.ShapeCircle,
		Radius:        sprite.Width / 2,
		Category:      types.CategoryFood,
		ContactMask:   types.CategoryFish,
		CollisionMask: types.CategoryNone,
		Precise:       true,
	})
	return id, nil
}
