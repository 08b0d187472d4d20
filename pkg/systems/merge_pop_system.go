package systems

import (
	"github.com/decker502/mergeball/pkg/components"
	"github.com/decker502/mergeball/pkg/ecs"
	"github.com/decker502/mergeball/pkg/utils"
)

const (
	// DefaultMergePopDuration 合成弹出动画时长（秒）
	DefaultMergePopDuration = 0.18
	// mergePopStartScale 动画起始缩放
	mergePopStartScale = 0.4
)

// MergePopSystem 为合成出的新球播放弹出动画
// 只影响绘制半径，不影响碰撞体
type MergePopSystem struct {
	em       *ecs.EntityManager
	duration float64
}

// NewMergePopSystem 创建弹出动画系统
func NewMergePopSystem(em *ecs.EntityManager, duration float64) *MergePopSystem {
	return &MergePopSystem{em: em, duration: duration}
}

// OnMerge 给新球挂上动画组件，作为 CombinationSystem 的合成回调
func (s *MergePopSystem) OnMerge(e MergeEvent) {
	if s.duration <= 0 || !s.em.Exists(e.Result) {
		return
	}
	s.em.AddComponent(e.Result, &components.MergePopComponent{Duration: s.duration})
}

// Update 推进动画，播放完毕后移除组件
func (s *MergePopSystem) Update(deltaTime float64) {
	for _, id := range s.em.GetEntitiesWith(typeOfMergePop) {
		pop, _ := ecs.GetComponent[*components.MergePopComponent](s.em, id)
		pop.Elapsed += deltaTime
		if pop.Elapsed >= pop.Duration {
			s.em.RemoveComponent(id, typeOfMergePop)
		}
	}
}

// PopScale 返回实体当前的绘制缩放，没有动画时为 1
func PopScale(em *ecs.EntityManager, id ecs.EntityID) float64 {
	pop, ok := ecs.GetComponent[*components.MergePopComponent](em, id)
	if !ok || pop.Duration <= 0 {
		return 1
	}
	return utils.Lerp(mergePopStartScale, 1, utils.EaseOutBack(pop.Elapsed/pop.Duration))
}
