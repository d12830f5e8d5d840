package entities

import (
	"fmt"

	"github.com/gonewx/fishtank/pkg/components"
	"github.com/gonewx/fishtank/pkg/ecs"
)

// newSpriteEntity 创建带位置、精灵和节点名称的实体
// 精灵尺寸取自图像尺寸
func newSpriteEntity(em *ecs.EntityManager, rm ImageLoader, imageName, nodeName string, x, y float64, z int) (ecs.EntityID, *components.SpriteComponent, error) {
	if em == nil {
		return 0, nil, fmt.Errorf("entity manager cannot be nil")
	}
	if rm == nil {
		return 0, nil, fmt.Errorf("resource manager cannot be nil")
	}

	img, err := rm.LoadImage(imageName)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to load %s image: %w", nodeName, err)
	}

	bounds := img.Bounds()
	sprite := &components.SpriteComponent{
		Image:  img,
		Width:  float64(bounds.Dx()),
		Height: float64(bounds.Dy()),
		Alpha:  1.0,
		ZIndex: z,
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, sprite)
	ecs.AddComponent(em, id, &components.SceneNodeComponent{Name: nodeName})
	return id, sprite, nil
}
