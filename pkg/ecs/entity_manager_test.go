package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testTagComponent struct {
	Name string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id1 == InvalidEntity || id2 == InvalidEntity {
		t.Error("Created entity must not be InvalidEntity")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestGenericComponentAccess(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 1, Y: 2})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("generic GetComponent should find the component")
	}
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("expected (1, 2), got (%f, %f)", pos.X, pos.Y)
	}

	if _, ok := GetComponent[*testTagComponent](em, id); ok {
		t.Error("missing component should not be found")
	}
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("HasComponent should report the component")
	}

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("component should be gone after RemoveComponent")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在，但已不可用
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should still exist before cleanup")
	}
	if !em.IsPendingDestroy(id) {
		t.Error("Entity should be pending destroy")
	}
	if em.Exists(id) {
		t.Error("Exists should be false for an entity pending destroy")
	}

	em.RemoveMarkedEntities()
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.IsPendingDestroy(id) {
		t.Error("pending flag should be cleared after cleanup")
	}
}

func TestDestroyEntityTwiceRunsHookOnce(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	calls := 0
	em.OnDestroy(func(destroyed EntityID) {
		if destroyed == id {
			calls++
		}
	})

	em.DestroyEntity(id)
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()

	if calls != 1 {
		t.Errorf("expected destroy hook to run once, got %d", calls)
	}
}

func TestDestroyUnknownEntityIsIgnored(t *testing.T) {
	em := NewEntityManager()
	em.DestroyEntity(42)
	if em.IsPendingDestroy(42) {
		t.Error("unknown entity must not be marked")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testTagComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testTagComponent{})

	entities := GetEntitiesWith2[*testPositionComponent, *testTagComponent](em)
	if len(entities) != 1 || entities[0] != id1 {
		t.Errorf("expected only id1, got %v", entities)
	}

	posEntities := GetEntitiesWith1[*testPositionComponent](em)
	if len(posEntities) != 2 {
		t.Fatalf("Expected 2 entities with Position component, got %d", len(posEntities))
	}
	// 结果按ID升序
	if posEntities[0] != id1 || posEntities[1] != id2 {
		t.Errorf("expected sorted [%d %d], got %v", id1, id2, posEntities)
	}
}

func TestEntityCount(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	id := em.CreateEntity()
	if em.EntityCount() != 2 {
		t.Errorf("expected 2 entities, got %d", em.EntityCount())
	}
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()
	if em.EntityCount() != 1 {
		t.Errorf("expected 1 entity after cleanup, got %d", em.EntityCount())
	}
}
