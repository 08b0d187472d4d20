package components

import (
	"image/color"

	"github.com/decker502/mergeball/pkg/types"
)

// BallComponent 标识一个合成球实体
type BallComponent struct {
	Category types.BallCategory // 球的类别（进化链上的身份）
	Color    color.RGBA         // 渲染填充色
}

// PhysicsGateComponent 控制球何时受重力影响
//
// 合成产物（Combined）每帧都强制开启重力；
// 生成器产出的球初始关闭重力，直到投放时 Released 置位。
type PhysicsGateComponent struct {
	Combined bool // 是否由合成产生
	Released bool // 是否已被生成器释放
}
