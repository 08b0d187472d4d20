package components

// RigidbodyComponent 刚体参数
// GravityScale 为 0 时不受重力影响（例如生成器持有中的球）
type RigidbodyComponent struct {
	GravityScale float64 // 重力缩放，0 表示关闭重力，1 表示正常重力
	Mass         float64 // 质量，用于接触冲量分配
}
