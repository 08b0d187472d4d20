package systems

import (
	"github.com/decker502/mergeball/pkg/components"
	"github.com/decker502/mergeball/pkg/ecs"
)

// PhysicsGateSystem 控制球的重力开关
//
// 合成产物每帧重新开启重力；生成器产出的球保持无重力，
// 直到 Release 被调用。
type PhysicsGateSystem struct {
	em *ecs.EntityManager
}

// NewPhysicsGateSystem 创建重力开关系统
func NewPhysicsGateSystem(em *ecs.EntityManager) *PhysicsGateSystem {
	return &PhysicsGateSystem{em: em}
}

// Update 对所有合成产物强制开启重力
func (s *PhysicsGateSystem) Update(deltaTime float64) {
	for _, id := range s.em.GetEntitiesWith(typeOfPhysicsGate, typeOfRigidbody) {
		gate, _ := ecs.GetComponent[*components.PhysicsGateComponent](s.em, id)
		if !gate.Combined {
			continue
		}
		rb, _ := ecs.GetComponent[*components.RigidbodyComponent](s.em, id)
		if rb.GravityScale != 1 {
			rb.GravityScale = 1
		}
	}
}

// Release 释放生成器持有的球，开启重力
// 实体不存在或缺少刚体时返回 false
func (s *PhysicsGateSystem) Release(id ecs.EntityID) bool {
	rb, ok := ecs.GetComponent[*components.RigidbodyComponent](s.em, id)
	if !ok {
		return false
	}
	rb.GravityScale = 1

	if gate, ok := ecs.GetComponent[*components.PhysicsGateComponent](s.em, id); ok {
		gate.Released = true
	}
	return true
}

// IsReleased 报告球是否已受重力影响（已释放或为合成产物）
func (s *PhysicsGateSystem) IsReleased(id ecs.EntityID) bool {
	gate, ok := ecs.GetComponent[*components.PhysicsGateComponent](s.em, id)
	if !ok {
		return false
	}
	return gate.Combined || gate.Released
}
