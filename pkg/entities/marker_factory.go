package entities

import (
	"fmt"

	"github.com/gonewx/fishtank/pkg/ecs"
	"github.com/gonewx/fishtank/pkg/game"
)

// NewMarker 创建爱心标记实体
// 纯装饰：没有物理刚体，不参与接触
func NewMarker(em *ecs.EntityManager, rm ImageLoader, x, y float64) (ecs.EntityID, error) {
	id, _, err := newSpriteEntity(em, rm, game.ImageHeart, "heart", x, y, ZDefault)
	if err != nil {
		return 0, fmt.Errorf("failed to create marker: %w", err)
	}
	return id, nil
}
