package systems

import (
	"testing"

	"github.com/gonewx/fishtank/pkg/components"
	"github.com/gonewx/fishtank/pkg/ecs"
	"github.com/gonewx/fishtank/pkg/entities"
	"github.com/gonewx/fishtank/pkg/types"
)

type contactFixture struct {
	em     *ecs.EntityManager
	as     *ActionSystem
	slot   *FishSlot
	cs     *ContactSystem
	fishID ecs.EntityID
	foodID ecs.EntityID
}

func newContactFixture(t *testing.T) *contactFixture {
	t.Helper()
	em := ecs.NewEntityManager()
	as := NewActionSystem(em)
	slot := NewFishSlot(em)
	loader := newMockLoader()

	fishID, err := entities.NewFish(em, loader, 200, 500)
	if err != nil {
		t.Fatalf("NewFish failed: %v", err)
	}
	foodID, err := entities.NewFood(em, loader, 200, 510)
	if err != nil {
		t.Fatalf("NewFood failed: %v", err)
	}
	slot.Set(fishID)

	return &contactFixture{
		em:     em,
		as:     as,
		slot:   slot,
		cs:     NewContactSystem(em, as, loader, slot, 0.5),
		fishID: fishID,
		foodID: foodID,
	}
}

// markers 返回场景中所有爱心标记
func (f *contactFixture) markers() []ecs.EntityID {
	var result []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith1[*components.SceneNodeComponent](f.em) {
		node, _ := ecs.GetComponent[*components.SceneNodeComponent](f.em, id)
		if node.Name == "heart" && f.em.Exists(id) {
			result = append(result, id)
		}
	}
	return result
}

func TestContactSystemFishFoodHit(t *testing.T) {
	tests := []struct {
		name    string
		swapped bool
	}{
		{"fish first", false},
		{"food first", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newContactFixture(t)

			contact := Contact{A: f.fishID, B: f.foodID, CategoryA: types.CategoryFish, CategoryB: types.CategoryFood}
			if tt.swapped {
				contact = Contact{A: f.foodID, B: f.fishID, CategoryA: types.CategoryFood, CategoryB: types.CategoryFish}
			}
			f.cs.HandleContact(contact)

			if f.em.Exists(f.fishID) {
				t.Error("the fish should be removed")
			}
			if _, ok := f.slot.Get(); ok {
				t.Error("fish slot should be empty after the hit")
			}
			if !f.em.Exists(f.foodID) {
				t.Error("the food should keep falling")
			}

			markers := f.markers()
			if len(markers) != 1 {
				t.Fatalf("expected one marker, got %d", len(markers))
			}
			// 标记右边缘贴着鱼的左边缘：200 - 30 - 14
			x, y := position(f.em, markers[0])
			if x != 156 || y != 500 {
				t.Errorf("expected marker at (156, 500), got (%.1f, %.1f)", x, y)
			}
			if !f.as.HasAction(markers[0]) {
				t.Error("marker should be fading out")
			}
			if f.cs.HitCount() != 1 {
				t.Errorf("expected one hit, got %d", f.cs.HitCount())
			}
		})
	}
}

func TestContactSystemMarkerFadesAndDisappears(t *testing.T) {
	f := newContactFixture(t)
	f.cs.HandleContact(Contact{A: f.fishID, B: f.foodID, CategoryA: types.CategoryFish, CategoryB: types.CategoryFood})
	markerID := f.markers()[0]

	stepActions(f.em, f.as, 0.25, 1)
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](f.em, markerID)
	if !ok {
		t.Fatal("marker should still exist halfway through the fade")
	}
	if sprite.Alpha <= 0 || sprite.Alpha >= 1 {
		t.Errorf("marker should be partly faded, alpha %.2f", sprite.Alpha)
	}

	stepActions(f.em, f.as, 0.25, 1)
	if f.em.Exists(markerID) {
		t.Error("marker should be removed once the fade completes")
	}
}

func TestContactSystemIgnoresOtherPairs(t *testing.T) {
	tests := []struct {
		name string
		a, b types.PhysicsCategory
	}{
		{"fish and fish", types.CategoryFish, types.CategoryFish},
		{"food and food", types.CategoryFood, types.CategoryFood},
		{"none and food", types.CategoryNone, types.CategoryFood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newContactFixture(t)
			f.cs.HandleContact(Contact{A: f.fishID, B: f.foodID, CategoryA: tt.a, CategoryB: tt.b})

			if !f.em.Exists(f.fishID) || !f.em.Exists(f.foodID) {
				t.Error("no entity should be removed")
			}
			if len(f.markers()) != 0 {
				t.Error("no marker should be spawned")
			}
		})
	}
}

func TestContactSystemRespondsOncePerFish(t *testing.T) {
	f := newContactFixture(t)
	secondFood, _ := entities.NewFood(f.em, newMockLoader(), 190, 505)

	f.cs.HandleContact(Contact{A: f.fishID, B: f.foodID, CategoryA: types.CategoryFish, CategoryB: types.CategoryFood})
	f.cs.HandleContact(Contact{A: secondFood, B: f.fishID, CategoryA: types.CategoryFood, CategoryB: types.CategoryFish})

	if len(f.markers()) != 1 {
		t.Errorf("a removed fish must not spawn another marker, got %d", len(f.markers()))
	}
	if f.cs.HitCount() != 1 {
		t.Errorf("expected one hit, got %d", f.cs.HitCount())
	}
}

func TestContactSystemThroughPhysics(t *testing.T) {
	f := newContactFixture(t)
	ps := NewPhysicsSystem(f.em, 16)
	ps.SetContactListener(f.cs)

	ps.Update(frameDt)
	f.em.RemoveMarkedEntities()

	if f.em.Exists(f.fishID) {
		t.Error("overlapping food should remove the fish")
	}
	if ps.BodyCount() != 1 {
		t.Errorf("only the food body should remain, got %d", ps.BodyCount())
	}
	if len(f.markers()) != 1 {
		t.Errorf("expected one marker, got %d", len(f.markers()))
	}
}
