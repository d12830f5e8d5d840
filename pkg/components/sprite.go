package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
type SpriteComponent struct {
	Image *ebiten.Image
	// Width/Height 绘制尺寸（像素）；与图像尺寸不同时按比例缩放
	Width  float64
	Height float64
	// Alpha 不透明度 0.0 ~ 1.0，由淡出动作修改
	Alpha float64
	// ZIndex 绘制层级，数值小的先绘制
	ZIndex int
}

// HalfWidth 返回绘制宽度的一半
func (s *SpriteComponent) HalfWidth() float64 {
	return s.Width / 2
}

// HalfHeight 返回绘制高度的一半
func (s *SpriteComponent) HalfHeight() float64 {
	return s.Height / 2
}
