package systems

import "github.com/gonewx/fishtank/pkg/ecs"

// FishSlot 场景中唯一一条鱼的可空引用
//
// 鱼被移除后槽位清空，游动节拍和接触响应据此跳过对鱼的操作。
type FishSlot struct {
	entityManager *ecs.EntityManager
	id            ecs.EntityID
}

// NewFishSlot 创建空的鱼槽位
func NewFishSlot(em *ecs.EntityManager) *FishSlot {
	return &FishSlot{entityManager: em}
}

// Set 记录当前的鱼
func (s *FishSlot) Set(id ecs.EntityID) {
	s.id = id
}

// Get 返回当前的鱼；鱼不存在或已标记删除时返回 false
func (s *FishSlot) Get() (ecs.EntityID, bool) {
	if s.id == ecs.InvalidEntity {
		return ecs.InvalidEntity, false
	}
	if !s.entityManager.Exists(s.id) {
		return ecs.InvalidEntity, false
	}
	return s.id, true
}

// Clear 清空槽位
func (s *FishSlot) Clear() {
	s.id = ecs.InvalidEntity
}

// Release 槽位中是指定的鱼时清空槽位
func (s *FishSlot) Release(id ecs.EntityID) {
	if s.id == id {
		s.id = ecs.InvalidEntity
	}
}
