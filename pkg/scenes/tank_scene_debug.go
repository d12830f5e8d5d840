package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gonewx/fishtank/pkg/components"
	"github.com/gonewx/fishtank/pkg/ecs"
)

// drawDebug 在左上角显示实体数量、鱼的状态和物理子步数（调试用）
func (s *TankScene) drawDebug(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, s.debugText(), 4, 4)
}

func (s *TankScene) debugText() string {
	fishState := "gone"
	if id, ok := s.fish.Get(); ok {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
			fishState = fmt.Sprintf("(%.0f, %.0f)", pos.X, pos.Y)
		}
	}

	return fmt.Sprintf("TPS: %.0f\nEntities: %d\nBodies: %d\nSubsteps: %d\nFish: %s\nHits: %d",
		ebiten.ActualTPS(),
		s.entityManager.EntityCount(),
		s.physicsSystem.BodyCount(),
		s.physicsSystem.LastSubsteps(),
		fishState,
		s.contactSystem.HitCount(),
	)
}
