package components

// CircleColliderComponent 定义实体的圆形碰撞体
// 用于物理系统检测球与球、球与容器之间的接触
type CircleColliderComponent struct {
	Radius float64 // 半径（世界单位）
}
