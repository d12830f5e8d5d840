package entities

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/fishtank/pkg/game"
)

// mockLoader 实现 ImageLoader，按名称返回固定尺寸的空白图像
type mockLoader struct {
	sizes map[string][2]int
}

func newMockLoader() *mockLoader {
	return &mockLoader{sizes: map[string][2]int{
		game.ImageBackground: {400, 800},
		game.ImageFish:       {60, 36},
		game.ImageFood:       {16, 16},
		game.ImageHeart:      {28, 26},
	}}
}

func (m *mockLoader) LoadImage(name string) (*ebiten.Image, error) {
	size, ok := m.sizes[name]
	if !ok {
		return nil, fmt.Errorf("unknown image %q", name)
	}
	return ebiten.NewImage(size[0], size[1]), nil
}
