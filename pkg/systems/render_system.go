package systems

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/fishtank/pkg/components"
	"github.com/gonewx/fishtank/pkg/ecs"
	"github.com/gonewx/fishtank/pkg/utils"
)

// RenderSystem 绘制所有带位置和精灵的实体
//
// 渲染顺序：ZIndex 从小到大，相同层级按实体ID（创建顺序）。
// 位置是精灵中心的世界坐标，绘制时翻转为屏幕坐标。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	sceneHeight   float64
	background    color.Color

	// 复用的排序缓冲，避免每帧分配
	drawList []drawItem
}

type drawItem struct {
	id     ecs.EntityID
	pos    *components.PositionComponent
	sprite *components.SpriteComponent
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - em: 实体管理器
//   - sceneHeight: 场景高度
//   - background: 场景背景色
func NewRenderSystem(em *ecs.EntityManager, sceneHeight float64, background color.Color) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		sceneHeight:   sceneHeight,
		background:    background,
	}
}

// Draw 填充背景色并绘制全部精灵
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	if s.background != nil {
		screen.Fill(s.background)
	}
	for _, item := range s.sortedItems() {
		s.drawSprite(screen, item.pos, item.sprite)
	}
}

// DrawOrder 返回本帧的渲染顺序（实体ID）
func (s *RenderSystem) DrawOrder() []ecs.EntityID {
	items := s.sortedItems()
	ids := make([]ecs.EntityID, len(items))
	for i, item := range items {
		ids[i] = item.id
	}
	return ids
}

func (s *RenderSystem) sortedItems() []drawItem {
	s.drawList = s.drawList[:0]
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if sprite.Image == nil || sprite.Alpha <= 0 {
			continue
		}
		s.drawList = append(s.drawList, drawItem{id: id, pos: pos, sprite: sprite})
	}

	sort.SliceStable(s.drawList, func(i, j int) bool {
		if s.drawList[i].sprite.ZIndex != s.drawList[j].sprite.ZIndex {
			return s.drawList[i].sprite.ZIndex < s.drawList[j].sprite.ZIndex
		}
		return s.drawList[i].id < s.drawList[j].id
	})
	return s.drawList
}

// drawSprite 以位置为中心绘制精灵，按绘制尺寸缩放
func (s *RenderSystem) drawSprite(screen *ebiten.Image, pos *components.PositionComponent, sprite *components.SpriteComponent) {
	bounds := sprite.Image.Bounds()
	imageWidth, imageHeight := float64(bounds.Dx()), float64(bounds.Dy())
	if imageWidth == 0 || imageHeight == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	// 以图像中心为锚点
	op.GeoM.Translate(-imageWidth/2, -imageHeight/2)
	if sprite.Width > 0 && sprite.Height > 0 {
		op.GeoM.Scale(sprite.Width/imageWidth, sprite.Height/imageHeight)
	}

	screenX, screenY := utils.WorldToScreen(pos.X, pos.Y, s.sceneHeight)
	op.GeoM.Translate(screenX, screenY)

	if sprite.Alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(sprite.Alpha))
	}
	screen.DrawImage(sprite.Image, op)
}
