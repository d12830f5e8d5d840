package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/fishtank/pkg/components"
	"github.com/gonewx/fishtank/pkg/ecs"
	"github.com/gonewx/fishtank/pkg/game"
)

// mockLoader 按名称返回固定尺寸的空白图像
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

// fakePointer 可编程的指针来源
type fakePointer struct {
	releases [][2]int
	updates  int
}

func (p *fakePointer) Update() {
	p.updates++
}

func (p *fakePointer) JustReleased() (bool, int, int) {
	if len(p.releases) == 0 {
		return false, 0, 0
	}
	next := p.releases[0]
	p.releases = p.releases[1:]
	return true, next[0], next[1]
}

// recordingListener 记录收到的接触
type recordingListener struct {
	contacts []Contact
}

func (l *recordingListener) HandleContact(contact Contact) {
	l.contacts = append(l.contacts, contact)
}

// position 读取实体位置，实体没有位置时 panic
func position(em *ecs.EntityManager, id ecs.EntityID) (float64, float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		panic(fmt.Sprintf("entity %d has no position", id))
	}
	return pos.X, pos.Y
}

// stepActions 以固定步长推进动作系统并清理已标记删除的实体
func stepActions(em *ecs.EntityManager, as *ActionSystem, dt float64, frames int) {
	for i := 0; i < frames; i++ {
		as.Update(dt)
		em.RemoveMarkedEntities()
	}
}
