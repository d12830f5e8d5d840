package components

// PositionComponent 存储实体在世界坐标系中的位置
// 世界坐标原点在场景左下角，Y 轴向上；位置指精灵中心
type PositionComponent struct {
	X float64
	Y float64
}
