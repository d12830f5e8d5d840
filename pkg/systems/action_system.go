package systems

import (
	"log"

	"github.com/gonewx/fishtank/pkg/components"
	"github.com/gonewx/fishtank/pkg/ecs"
	"github.com/gonewx/fishtank/pkg/utils"
)

// ActionSystem 执行实体和场景上的声明式动作
//
// 职责范围：
//   - 实体动作：MoveTo 修改 PositionComponent，FadeOut 修改 SpriteComponent.Alpha
//   - 场景动作：不绑定实体的定时逻辑（如鱼的游动节拍）
//
// 时间语义：
//   - 子动作完成后剩余的时间会继续用于下一个子动作
//   - 实体被标记删除后其动作不再推进
type ActionSystem struct {
	entityManager *ecs.EntityManager
	sceneActions  []*components.ActionState
}

// NewActionSystem 创建动作系统
func NewActionSystem(em *ecs.EntityManager) *ActionSystem {
	return &ActionSystem{
		entityManager: em,
	}
}

// RunAction 在实体上执行动作，替换实体当前的动作
func (s *ActionSystem) RunAction(id ecs.EntityID, action *components.Action) {
	if !s.entityManager.Exists(id) {
		log.Printf("[ActionSystem] Warning: RunAction %s on missing entity %d", action.Kind, id)
		return
	}
	ecs.AddComponent(s.entityManager, id, &components.ActionComponent{
		State: components.NewActionState(action),
	})
}

// RunSceneAction 执行不绑定实体的场景动作
func (s *ActionSystem) RunSceneAction(action *components.Action) {
	s.sceneActions = append(s.sceneActions, components.NewActionState(action))
}

// HasAction 检查实体是否仍有未完成的动作
func (s *ActionSystem) HasAction(id ecs.EntityID) bool {
	return ecs.HasComponent[*components.ActionComponent](s.entityManager, id)
}

// SceneActionCount 返回未完成的场景动作数量
func (s *ActionSystem) SceneActionCount() int {
	return len(s.sceneActions)
}

// Update 推进所有动作
func (s *ActionSystem) Update(deltaTime float64) {
	// 场景动作先执行，回调中排入的实体动作在同一帧内开始推进
	// 回调中新加入的场景动作从下一帧开始推进
	pending := s.sceneActions
	s.sceneActions = nil
	active := make([]*components.ActionState, 0, len(pending))
	for _, state := range pending {
		if done, _ := s.advance(ecs.InvalidEntity, state, deltaTime); !done {
			active = append(active, state)
		}
	}
	s.sceneActions = append(active, s.sceneActions...)

	for _, id := range ecs.GetEntitiesWith1[*components.ActionComponent](s.entityManager) {
		if s.entityManager.IsPendingDestroy(id) {
			continue
		}
		actionComp, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, id)
		if !ok || actionComp.State == nil {
			continue
		}

		state := actionComp.State
		done, _ := s.advance(id, state, deltaTime)

		// 回调中可能已替换了动作，只移除仍是本次执行的那个
		if done {
			if current, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, id); ok && current.State == state {
				ecs.RemoveComponent[*components.ActionComponent](s.entityManager, id)
			}
		}
	}
}

// advance 推进一个动作 deltaTime 秒
// 返回动作是否完成，以及完成后未用完的时间
func (s *ActionSystem) advance(id ecs.EntityID, state *components.ActionState, deltaTime float64) (bool, float64) {
	action := state.Action

	switch action.Kind {
	case components.ActionMoveTo:
		return s.advanceMoveTo(id, state, deltaTime)

	case components.ActionFadeOut:
		return s.advanceFadeOut(id, state, deltaTime)

	case components.ActionWait:
		return s.advanceTimed(state, deltaTime)

	case components.ActionRun:
		if action.Func != nil {
			action.Func()
		}
		return true, deltaTime

	case components.ActionRemoveFromParent:
		if id != ecs.InvalidEntity {
			s.entityManager.DestroyEntity(id)
		}
		return true, deltaTime

	case components.ActionSequence:
		for state.Index < len(action.Children) {
			if state.Child == nil {
				state.Child = components.NewActionState(action.Children[state.Index])
			}
			done, remaining := s.advance(id, state.Child, deltaTime)
			if !done {
				return false, 0
			}
			state.Index++
			state.Child = nil
			deltaTime = remaining
		}
		return true, deltaTime

	case components.ActionRepeatForever:
		if len(action.Children) == 0 {
			return true, deltaTime
		}
		for {
			if state.Child == nil {
				state.Child = components.NewActionState(action.Children[0])
			}
			before := deltaTime
			done, remaining := s.advance(id, state.Child, deltaTime)
			if !done {
				return false, 0
			}
			state.Child = nil
			// 一轮没有消耗时间，留到下一帧再开始新一轮
			if remaining <= 0 || remaining >= before {
				return false, 0
			}
			deltaTime = remaining
		}

	default:
		log.Printf("[ActionSystem] Warning: unknown action kind %d", action.Kind)
		return true, deltaTime
	}
}

// advanceTimed 推进计时，返回是否到期与剩余时间
func (s *ActionSystem) advanceTimed(state *components.ActionState, deltaTime float64) (bool, float64) {
	state.Elapsed += deltaTime
	if state.Elapsed >= state.Action.Duration {
		return true, state.Elapsed - state.Action.Duration
	}
	return false, 0
}

// progress 返回 [0, 1] 的动作进度
func progress(state *components.ActionState) float64 {
	if state.Action.Duration <= 0 {
		return 1
	}
	return utils.Clamp(state.Elapsed/state.Action.Duration, 0, 1)
}

func (s *ActionSystem) advanceMoveTo(id ecs.EntityID, state *components.ActionState, deltaTime float64) (bool, float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return true, deltaTime
	}

	if !state.Started {
		state.Started = true
		state.FromX, state.FromY = pos.X, pos.Y
	}

	done, remaining := s.advanceTimed(state, deltaTime)
	t := utils.EaseLinear(progress(state))
	pos.X = utils.Lerp(state.FromX, state.Action.X, t)
	pos.Y = utils.Lerp(state.FromY, state.Action.Y, t)
	return done, remaining
}

func (s *ActionSystem) advanceFadeOut(id ecs.EntityID, state *components.ActionState, deltaTime float64) (bool, float64) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok {
		return true, deltaTime
	}

	if !state.Started {
		state.Started = true
		state.FromAlpha = sprite.Alpha
	}

	done, remaining := s.advanceTimed(state, deltaTime)
	sprite.Alpha = utils.Lerp(state.FromAlpha, 0, progress(state))
	return done, remaining
}
