package entities

import (
	"fmt"

	"github.com/decker502/mergeball/pkg/components"
	"github.com/decker502/mergeball/pkg/config"
	"github.com/decker502/mergeball/pkg/ecs"
	"github.com/decker502/mergeball/pkg/types"
)

// BallSpawnOptions 创建球实体的参数
type BallSpawnOptions struct {
	X, Y     float64 // 世界坐标
	VX, VY   float64 // 初速度
	Combined bool    // 是否为合成产物（强制开启重力）
}

// BallFactory 按进化链模板实例化球实体
type BallFactory struct {
	em    *ecs.EntityManager
	chain *config.EvolutionChain
}

// NewBallFactory 创建球工厂
func NewBallFactory(em *ecs.EntityManager, chain *config.EvolutionChain) *BallFactory {
	return &BallFactory{em: em, chain: chain}
}

// Spawn 按类别创建球实体
//
// 返回:
//   - ecs.EntityID: 创建的实体ID
//   - error: 类别不在进化链中时返回错误
func (f *BallFactory) Spawn(category types.BallCategory, opts BallSpawnOptions) (ecs.EntityID, error) {
	bt, ok := f.chain.Lookup(category)
	if !ok {
		return ecs.InvalidEntity, fmt.Errorf("ball category %s is not in the evolution chain", category)
	}
	return NewBallEntity(f.em, bt, opts), nil
}

// NewBallEntity 创建一个球实体
//
// 非合成球初始关闭重力（由生成器控制位置，投放时释放）；
// 合成球直接开启重力。
//
// 参数:
//   - em: EntityManager 实例
//   - bt: 进化链条目（模板）
//   - opts: 位置/速度/合成标记
//
// 返回: 创建的实体ID
func NewBallEntity(em *ecs.EntityManager, bt config.BallTypeConfig, opts BallSpawnOptions) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: opts.X, Y: opts.Y})
	em.AddComponent(id, &components.VelocityComponent{VX: opts.VX, VY: opts.VY})

	gravity := 0.0
	if opts.Combined {
		gravity = 1.0
	}
	mass := bt.Mass
	if mass <= 0 {
		mass = bt.Radius * bt.Radius
	}
	em.AddComponent(id, &components.RigidbodyComponent{
		GravityScale: gravity,
		Mass:         mass,
	})

	em.AddComponent(id, &components.CircleColliderComponent{Radius: bt.Radius})

	em.AddComponent(id, &components.BallComponent{
		Category: bt.Category,
		Color:    bt.RGBA(),
	})

	em.AddComponent(id, &components.PhysicsGateComponent{
		Combined: opts.Combined,
		Released: opts.Combined,
	})

	return id
}
