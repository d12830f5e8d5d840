package ecs

import "testing"

type benchmarkPosition struct {
	X, Y float64
}

type benchmarkSprite struct {
	Alpha float64
}

// setupBenchmarkEntities 创建 count 个实体，每隔一个实体附带 sprite 组件
func setupBenchmarkEntities(count int) *EntityManager {
	em := NewEntityManager()
	for i := 0; i < count; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &benchmarkPosition{X: float64(i), Y: float64(i)})
		if i%2 == 0 {
			em.AddComponent(id, &benchmarkSprite{Alpha: 1})
		}
	}
	return em
}

func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := setupBenchmarkEntities(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*benchmarkPosition, *benchmarkSprite](em)
	}
}

func BenchmarkGetComponent(b *testing.B) {
	em := setupBenchmarkEntities(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = GetComponent[*benchmarkPosition](em, EntityID(i%200+1))
	}
}

func BenchmarkCreateDestroy(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < b.N; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &benchmarkPosition{})
		em.DestroyEntity(id)
		em.RemoveMarkedEntities()
	}
}
