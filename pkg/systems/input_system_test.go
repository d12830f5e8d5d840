package systems

import (
	"math"
	"testing"

	"github.com/gonewx/fishtank/pkg/components"
	"github.com/gonewx/fishtank/pkg/ecs"
	"github.com/gonewx/fishtank/pkg/utils"
)

func newTestInputSystem(pointer *fakePointer) (*ecs.EntityManager, *ActionSystem, *InputSystem) {
	em := ecs.NewEntityManager()
	as := NewActionSystem(em)
	var source utils.PointerSource
	if pointer != nil {
		source = pointer
	}
	is := NewInputSystem(em, as, newMockLoader(), source, 1000, 800, 100)
	return em, as, is
}

func TestInputSystemTouchThreshold(t *testing.T) {
	tests := []struct {
		name      string
		y         float64
		wantSpawn bool
	}{
		{"below threshold", 799.9, false},
		{"at threshold", 800, true},
		{"top of scene", 1000, true},
		{"bottom of scene", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, _, is := newTestInputSystem(nil)

			id := is.HandleTouch(120, tt.y)
			if got := id != ecs.InvalidEntity; got != tt.wantSpawn {
				t.Fatalf("spawned = %v, want %v", got, tt.wantSpawn)
			}
			if !tt.wantSpawn {
				if em.EntityCount() != 0 {
					t.Errorf("ignored touch must not create entities, got %d", em.EntityCount())
				}
				return
			}

			x, y := position(em, id)
			if x != 120 || y != tt.y {
				t.Errorf("food should appear at the touch point, got (%.1f, %.1f)", x, y)
			}
		})
	}
}

func TestInputSystemFoodFallsStraightDown(t *testing.T) {
	em, as, is := newTestInputSystem(nil)

	// 从 900 落到 -8，共 908 像素，100 像素/秒
	id := is.HandleTouch(150, 900)
	action, _ := ecs.GetComponent[*components.ActionComponent](em, id)
	move := action.State.Action.Children[0]
	if move.Kind != components.ActionMoveTo || move.X != 150 || move.Y != -8 {
		t.Fatalf("unexpected fall target %+v", move)
	}
	if math.Abs(move.Duration-9.08) > epsilon {
		t.Errorf("expected 9.08s fall, got %.4f", move.Duration)
	}

	stepActions(em, as, 0.5, 10)
	x, y := position(em, id)
	if x != 150 {
		t.Errorf("food must fall vertically, x=%.2f", x)
	}
	if math.Abs(y-400) > 1e-6 {
		t.Errorf("expected y=400 after 5s, got %.4f", y)
	}

	stepActions(em, as, 0.5, 8)
	if !em.Exists(id) {
		t.Fatal("food should still exist before reaching the bottom")
	}

	stepActions(em, as, 0.5, 1)
	if em.Exists(id) {
		t.Error("food should be removed after it leaves the scene")
	}
}

func TestInputSystemUsesPointerRelease(t *testing.T) {
	pointer := &fakePointer{releases: [][2]int{
		{100, 100}, // 世界 Y = 900，投食
		{100, 500}, // 世界 Y = 500，忽略
	}}
	em, _, is := newTestInputSystem(pointer)

	is.Update()
	is.Update()
	is.Update()

	if pointer.updates != 3 {
		t.Errorf("pointer should be polled every frame, got %d", pointer.updates)
	}
	if is.SpawnedCount() != 1 {
		t.Fatalf("expected one food, got %d", is.SpawnedCount())
	}

	foods := ecs.GetEntitiesWith1[*components.PhysicsBodyComponent](em)
	if len(foods) != 1 {
		t.Fatalf("expected one food entity, got %d", len(foods))
	}
	x, y := position(em, foods[0])
	if x != 100 || y != 900 {
		t.Errorf("expected food at (100, 900), got (%.1f, %.1f)", x, y)
	}
}
