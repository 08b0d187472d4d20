package scenes

import (
	"github.com/decker502/mergeball/pkg/components"
	"github.com/decker502/mergeball/pkg/config"
	"github.com/decker502/mergeball/pkg/ecs"
	"github.com/decker502/mergeball/pkg/entities"
	"github.com/decker502/mergeball/pkg/game"
	"github.com/decker502/mergeball/pkg/systems"
)

// MergeWorld 一局游戏的全部模拟状态
//
// 不涉及渲染和设备输入，GameScene 与无头验证工具共用。
// 每帧按固定顺序驱动：
//  1. 调度器推进时钟（到期的重新生成、宽限期释放）
//  2. 生成器处理输入
//  3. 重力开关
//  4. 物理模拟，派发接触事件（合成在此登记）
//  5. 合成弹出动画
//  6. 帧末任务（执行合成）
//  7. 清理已销毁实体
type MergeWorld struct {
	entityManager *ecs.EntityManager
	scheduler     *game.Scheduler
	registry      *game.PendingMergeRegistry
	score         *game.ScoreTracker

	gateSystem        *systems.PhysicsGateSystem
	physicsSystem     *systems.PhysicsSystem
	combinationSystem *systems.CombinationSystem
	spawnerSystem     *systems.SpawnerSystem
	mergePopSystem    *systems.MergePopSystem

	cfg *config.GameConfig
}

// NewMergeWorld 根据配置组装一局游戏
//
// 参数:
//   - cfg: 已验证的游戏配置
//   - rng: 生成器使用的随机数来源
//   - input: 生成器读取的输入，可为 nil
func NewMergeWorld(cfg *config.GameConfig, rng game.RandomSource, input systems.SpawnerInput) *MergeWorld {
	em := ecs.NewEntityManager()
	chain := cfg.EvolutionChain()
	scheduler := game.NewScheduler()
	registry := game.NewPendingMergeRegistry()
	score := game.NewScoreTracker()

	gate := systems.NewPhysicsGateSystem(em)
	physics := systems.NewPhysicsSystem(em, cfg.Physics)
	combination := systems.NewCombinationSystem(em, chain, registry, scheduler, score, cfg.Merge)
	physics.AddListener(combination)

	pop := systems.NewMergePopSystem(em, systems.DefaultMergePopDuration)
	combination.OnMerge(pop.OnMerge)

	spawner := systems.NewSpawnerSystem(
		em,
		entities.NewBallFactory(em, chain),
		gate,
		scheduler,
		cfg.Spawner,
		cfg.Spawn,
		rng,
		input,
	)

	return &MergeWorld{
		entityManager:     em,
		scheduler:         scheduler,
		registry:          registry,
		score:             score,
		gateSystem:        gate,
		physicsSystem:     physics,
		combinationSystem: combination,
		spawnerSystem:     spawner,
		mergePopSystem:    pop,
		cfg:               cfg,
	}
}

// Start 生成第一个球
func (w *MergeWorld) Start() error {
	return w.spawnerSystem.Spawn()
}

// Step 推进一帧
func (w *MergeWorld) Step(deltaTime float64) {
	w.scheduler.Update(deltaTime)
	w.spawnerSystem.Update(deltaTime)
	w.gateSystem.Update(deltaTime)
	w.physicsSystem.Update(deltaTime)
	w.mergePopSystem.Update(deltaTime)
	w.scheduler.EndOfFrame()
	w.entityManager.RemoveMarkedEntities()
}

// HeldBallX 返回生成器持有的球的 X 坐标
// 当前没有持有球时返回 false
func (w *MergeWorld) HeldBallX() (float64, bool) {
	if w.spawnerSystem.State() != systems.SpawnerHolding {
		return 0, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.entityManager, w.spawnerSystem.ActiveBall())
	if !ok {
		return 0, false
	}
	return pos.X, true
}

// BallCount 返回场上存活的球数量
func (w *MergeWorld) BallCount() int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.BallComponent](w.entityManager) {
		if w.entityManager.IsAlive(id) {
			count++
		}
	}
	return count
}

// EntityManager 返回实体管理器
func (w *MergeWorld) EntityManager() *ecs.EntityManager { return w.entityManager }

// Scheduler 返回调度器
func (w *MergeWorld) Scheduler() *game.Scheduler { return w.scheduler }

// Score 返回计分器
func (w *MergeWorld) Score() *game.ScoreTracker { return w.score }

// Registry 返回合成登记表
func (w *MergeWorld) Registry() *game.PendingMergeRegistry { return w.registry }

// Gate 返回重力开关系统
func (w *MergeWorld) Gate() *systems.PhysicsGateSystem { return w.gateSystem }

// Physics 返回物理系统
func (w *MergeWorld) Physics() *systems.PhysicsSystem { return w.physicsSystem }

// Combination 返回合成检测系统
func (w *MergeWorld) Combination() *systems.CombinationSystem { return w.combinationSystem }

// Spawner 返回生成器
func (w *MergeWorld) Spawner() *systems.SpawnerSystem { return w.spawnerSystem }

// Config 返回游戏配置
func (w *MergeWorld) Config() *config.GameConfig { return w.cfg }
