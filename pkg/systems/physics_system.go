package systems

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/gonewx/fishtank/pkg/components"
	"github.com/gonewx/fishtank/pkg/ecs"
	"github.com/gonewx/fishtank/pkg/types"
	"github.com/gonewx/fishtank/pkg/utils"
)

// contactCollisionType 所有刚体共用的 Chipmunk 碰撞类型
// 分类判定在 ContactListener 中完成，Chipmunk 只负责过滤与检测
const contactCollisionType cp.CollisionType = 1

// Contact 一次新产生的接触（两个形状开始重叠）
type Contact struct {
	A, B      ecs.EntityID
	CategoryA types.PhysicsCategory
	CategoryB types.PhysicsCategory
}

// ContactListener 接收物理步结束后的接触事件
type ContactListener interface {
	HandleContact(contact Contact)
}

// PhysicsSystem 基于 Chipmunk2D 的物理系统
//
// 职责范围：
//   - 为带 PhysicsBodyComponent 的实体创建刚体与形状
//   - 每帧把 PositionComponent 同步到刚体（位置由动作驱动，物理不移动实体）
//   - 检测接触并在物理步结束后分发给 ContactListener
//   - 实体移除时释放刚体
//
// 过滤规则（Chipmunk ShapeFilter）：
//   - Categories = PhysicsBodyComponent.Category
//   - Mask = PhysicsBodyComponent.ContactMask
//   - CollisionMask 为 None 的形状是传感器：只通知接触，不产生阻挡
type PhysicsSystem struct {
	entityManager *ecs.EntityManager
	space         *cp.Space
	listener      ContactListener
	maxSubsteps   int

	// 物理步进行中产生的接触，步结束后统一分发
	pending []Contact
	// 已注册到 space 的刚体
	bodies map[ecs.EntityID]*components.PhysicsBodyComponent

	lastSubsteps int
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - maxSubsteps: 精确检测时单帧最多子步数（小于 1 时按 1 处理）
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager, maxSubsteps int) *PhysicsSystem {
	if maxSubsteps < 1 {
		maxSubsteps = 1
	}

	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	ps := &PhysicsSystem{
		entityManager: em,
		space:         space,
		maxSubsteps:   maxSubsteps,
		bodies:        make(map[ecs.EntityID]*components.PhysicsBodyComponent),
	}

	handler := space.NewCollisionHandler(contactCollisionType, contactCollisionType)
	handler.BeginFunc = ps.onContactBegin

	em.OnDestroy(ps.removeBody)
	return ps
}

// SetContactListener 设置接触事件接收者
func (ps *PhysicsSystem) SetContactListener(listener ContactListener) {
	ps.listener = listener
}

// BodyCount 返回已注册的刚体数量
func (ps *PhysicsSystem) BodyCount() int {
	return len(ps.bodies)
}

// LastSubsteps 返回上一帧使用的子步数
func (ps *PhysicsSystem) LastSubsteps() int {
	return ps.lastSubsteps
}

// Update 执行一帧物理模拟并分发接触事件
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (ps *PhysicsSystem) Update(deltaTime float64) {
	ps.registerNewBodies()

	if deltaTime <= 0 {
		return
	}

	substeps := ps.substepCount()
	ps.lastSubsteps = substeps
	stepDt := deltaTime / float64(substeps)

	for i := 1; i <= substeps; i++ {
		fraction := float64(i) / float64(substeps)
		ps.syncBodies(fraction)
		ps.space.Step(stepDt)
	}

	for id, body := range ps.bodies {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](ps.entityManager, id); ok {
			body.PrevX, body.PrevY = pos.X, pos.Y
		}
	}

	ps.dispatchContacts()
}

// registerNewBodies 为尚未创建刚体的实体创建刚体与形状
func (ps *PhysicsSystem) registerNewBodies() {
	ids := ecs.GetEntitiesWith2[*components.PhysicsBodyComponent, *components.PositionComponent](ps.entityManager)
	for _, id := range ids {
		if ps.entityManager.IsPendingDestroy(id) {
			continue
		}
		bodyComp, _ := ecs.GetComponent[*components.PhysicsBodyComponent](ps.entityManager, id)
		if bodyComp.Body != nil {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.entityManager, id)
		ps.addBody(id, bodyComp, pos)
	}
}

func (ps *PhysicsSystem) addBody(id ecs.EntityID, bodyComp *components.PhysicsBodyComponent, pos *components.PositionComponent) {
	const mass = 1.0

	var body *cp.Body
	var shape *cp.Shape

	switch bodyComp.Shape {
	case components.ShapeCircle:
		body = cp.NewBody(mass, cp.MomentForCircle(mass, 0, bodyComp.Radius, cp.Vector{}))
		shape = cp.NewCircle(body, bodyComp.Radius, cp.Vector{})
	default:
		body = cp.NewBody(mass, cp.MomentForBox(mass, bodyComp.Width, bodyComp.Height))
		shape = cp.NewBox(body, bodyComp.Width, bodyComp.Height, 0)
	}

	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	body.UserData = id

	shape.UserData = id
	shape.SetCollisionType(contactCollisionType)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(bodyComp.Category), uint(bodyComp.ContactMask)))
	shape.SetSensor(bodyComp.CollisionMask == types.CategoryNone)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	bodyComp.Body = body
	bodyComp.CPShape = shape
	bodyComp.PrevX, bodyComp.PrevY = pos.X, pos.Y
	ps.bodies[id] = bodyComp

	log.Printf("[PhysicsSystem] Registered body for entity %d (category=%s, contact=%s, sensor=%v, precise=%v)",
		id, bodyComp.Category, bodyComp.ContactMask, bodyComp.CollisionMask == types.CategoryNone, bodyComp.Precise)
}

// removeBody 实体移除时释放刚体（DestroyHook）
func (ps *PhysicsSystem) removeBody(id ecs.EntityID) {
	bodyComp, ok := ps.bodies[id]
	if !ok {
		return
	}
	if bodyComp.CPShape != nil {
		ps.space.RemoveShape(bodyComp.CPShape)
	}
	if bodyComp.Body != nil {
		ps.space.RemoveBody(bodyComp.Body)
	}
	bodyComp.Body = nil
	bodyComp.CPShape = nil
	delete(ps.bodies, id)
}

// substepCount 计算本帧子步数
// 精确检测的刚体每个子步的位移不超过其最小尺寸的一半
func (ps *PhysicsSystem) substepCount() int {
	substeps := 1
	for id, body := range ps.bodies {
		if !body.Precise {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](ps.entityManager, id)
		if !ok {
			continue
		}
		limit := body.MinExtent() / 2
		if limit <= 0 {
			continue
		}
		displacement := math.Hypot(pos.X-body.PrevX, pos.Y-body.PrevY)
		if n := int(math.Ceil(displacement / limit)); n > substeps {
			substeps = n
		}
	}
	if substeps > ps.maxSubsteps {
		substeps = ps.maxSubsteps
	}
	return substeps
}

// syncBodies 把刚体放到上一帧位置与当前位置之间 fraction 处
func (ps *PhysicsSystem) syncBodies(fraction float64) {
	for id, body := range ps.bodies {
		pos, ok := ecs.GetComponent[*components.PositionComponent](ps.entityManager, id)
		if !ok || body.Body == nil {
			continue
		}
		x := utils.Lerp(body.PrevX, pos.X, fraction)
		y := utils.Lerp(body.PrevY, pos.Y, fraction)
		body.Body.SetPosition(cp.Vector{X: x, Y: y})
	}
}

// onContactBegin Chipmunk 接触开始回调
// 物理步进行中不能修改 space，这里只记录接触
func (ps *PhysicsSystem) onContactBegin(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
	shapeA, shapeB := arb.Shapes()

	idA, okA := shapeA.UserData.(ecs.EntityID)
	idB, okB := shapeB.UserData.(ecs.EntityID)
	if !okA || !okB {
		log.Printf("[PhysicsSystem] Warning: contact between shapes without entity data, ignored")
		return true
	}

	bodyA, okA := ps.bodies[idA]
	bodyB, okB := ps.bodies[idB]
	if !okA || !okB {
		return true
	}

	ps.pending = append(ps.pending, Contact{
		A:         idA,
		B:         idB,
		CategoryA: bodyA.Category,
		CategoryB: bodyB.Category,
	})
	return true
}

// dispatchContacts 把本帧接触交给 ContactListener
func (ps *PhysicsSystem) dispatchContacts() {
	if len(ps.pending) == 0 {
		return
	}
	contacts := ps.pending
	ps.pending = nil

	if ps.listener == nil {
		return
	}
	for _, contact := range contacts {
		ps.listener.HandleContact(contact)
	}
}
