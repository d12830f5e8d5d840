package entities

import "github.com/hajimehoshi/ebiten/v2"

// ImageLoader 实体工厂加载精灵图像所需的资源接口
// game.ResourceManager 实现此接口；测试中可用 mock 替代
type ImageLoader interface {
	LoadImage(name string) (*ebiten.Image, error)
}

// Z 轴层级
const (
	ZBackground = -100
	ZDefault    = 0
	ZFish       = 100
)
