package components

// PositionComponent 存储实体在世界坐标中的位置（Y 轴向上）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 存储实体的线速度（单位/秒）
type VelocityComponent struct {
	VX float64
	VY float64
}
