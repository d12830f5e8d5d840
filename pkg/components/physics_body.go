package components

import (
	"github.com/jakecoffman/cp"

	"github.com/gonewx/fishtank/pkg/types"
)

// BodyShape 刚体形状
type BodyShape int

const (
	// ShapeBox 轴对齐矩形，尺寸为 Width x Height
	ShapeBox BodyShape = iota
	// ShapeCircle 圆形，半径为 Radius
	ShapeCircle
)

// PhysicsBodyComponent 描述实体的物理刚体配置与 Chipmunk2D 运行时数据
//
// 配置字段由实体工厂填写；Body/Shape 由 PhysicsSystem 在首次更新时创建。
type PhysicsBodyComponent struct {
	Shape  BodyShape
	Width  float64
	Height float64
	Radius float64

	// Category 本刚体所属分类
	Category types.PhysicsCategory
	// ContactMask 与哪些分类产生接触通知
	ContactMask types.PhysicsCategory
	// CollisionMask 与哪些分类产生阻挡碰撞；为 None 时刚体是传感器
	CollisionMask types.PhysicsCategory
	// Precise 启用子步检测，防止快速移动的小物体穿透
	Precise bool

	Body    *cp.Body
	CPShape *cp.Shape

	// PrevX/PrevY 上一次物理步结束时的位置，用于子步插值
	PrevX, PrevY float64
}

// MinExtent 返回刚体最小的外形尺寸
func (p *PhysicsBodyComponent) MinExtent() float64 {
	if p.Shape == ShapeCircle {
		return p.Radius * 2
	}
	if p.Width < p.Height {
		return p.Width
	}
	return p.Height
}
