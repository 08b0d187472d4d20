package systems

import (
	"log"

	"github.com/decker502/mergeball/pkg/components"
	"github.com/decker502/mergeball/pkg/config"
	"github.com/decker502/mergeball/pkg/ecs"
	"github.com/decker502/mergeball/pkg/entities"
	"github.com/decker502/mergeball/pkg/game"
	"github.com/decker502/mergeball/pkg/types"
)

// MergeEvent 一次成功合成的结果
type MergeEvent struct {
	Pair     game.PairKey       // 被合成的两个球
	Result   ecs.EntityID       // 新生成的球
	From     types.BallCategory // 原类别
	To       types.BallCategory // 新类别
	Level    int                // 新类别在进化链中的位置
	Points   int                // 本次获得的分数
	X, Y     float64            // 新球位置
	VX, VY   float64            // 新球速度
	Detected uint64             // 检测到合成的帧
}

// MergeListener 合成完成回调
type MergeListener func(MergeEvent)

// pendingMerge 检测时记录、帧末执行的合成
type pendingMerge struct {
	key      game.PairKey
	a, b     ecs.EntityID
	from     types.BallCategory
	next     config.BallTypeConfig
	level    int
	x, y     float64
	vx, vy   float64
	detected uint64
}

// CombinationSystem 合成检测系统
//
// 作为 PhysicsSystem 的接触监听者：两个同类别球开始接触时，
// 若该配对尚未登记且类别不是进化链末端，则登记配对并安排帧末合成。
// 帧末合成在本帧所有接触事件派发完之后执行。
type CombinationSystem struct {
	em         *ecs.EntityManager
	chain      *config.EvolutionChain
	registry   *game.PendingMergeRegistry
	scheduler  *game.Scheduler
	score      *game.ScoreTracker
	graceDelay float64
	listeners  []MergeListener

	merged  int // 成功合成次数
	skipped int // 帧末时原球已不存在而跳过的次数
}

// NewCombinationSystem 创建合成检测系统
//
// 参数:
//   - em: 实体管理器
//   - chain: 进化链
//   - registry: 合成登记表（由场景持有）
//   - scheduler: 延迟执行队列
//   - score: 计分器
//   - cfg: 合成参数（宽限期）
func NewCombinationSystem(
	em *ecs.EntityManager,
	chain *config.EvolutionChain,
	registry *game.PendingMergeRegistry,
	scheduler *game.Scheduler,
	score *game.ScoreTracker,
	cfg config.MergeConfig,
) *CombinationSystem {
	return &CombinationSystem{
		em:         em,
		chain:      chain,
		registry:   registry,
		scheduler:  scheduler,
		score:      score,
		graceDelay: cfg.GraceDelay,
	}
}

// OnMerge 注册合成完成回调
func (cs *CombinationSystem) OnMerge(l MergeListener) {
	if l != nil {
		cs.listeners = append(cs.listeners, l)
	}
}

// MergedCount 返回成功合成次数
func (cs *CombinationSystem) MergedCount() int {
	return cs.merged
}

// SkippedCount 返回被跳过的合成次数
func (cs *CombinationSystem) SkippedCount() int {
	return cs.skipped
}

// OnCollisionEnter 处理一次接触事件
func (cs *CombinationSystem) OnCollisionEnter(self, other ecs.EntityID) {
	if self == other {
		return
	}

	ballA, ok := ecs.GetComponent[*components.BallComponent](cs.em, self)
	if !ok {
		return
	}
	ballB, ok := ecs.GetComponent[*components.BallComponent](cs.em, other)
	if !ok || ballA.Category != ballB.Category {
		return
	}

	key := game.NewPairKey(self, other)
	if cs.registry.Contains(key) {
		return
	}

	// 末端类别没有后继，不合成
	next, ok := cs.chain.Next(ballA.Category)
	if !ok {
		return
	}

	posA, okA := ecs.GetComponent[*components.PositionComponent](cs.em, self)
	posB, okB := ecs.GetComponent[*components.PositionComponent](cs.em, other)
	if !okA || !okB {
		return
	}

	cs.registry.Add(key)

	pm := pendingMerge{
		key:      key,
		a:        self,
		b:        other,
		from:     ballA.Category,
		next:     next,
		level:    cs.chain.IndexOf(next.Category),
		x:        (posA.X + posB.X) / 2,
		y:        (posA.Y + posB.Y) / 2,
		detected: cs.scheduler.Tick(),
	}
	pm.vx, pm.vy = cs.averageVelocity(self, other)

	cs.scheduler.AfterEndOfFrame(func() {
		cs.executeMerge(pm)
	})
}

// averageVelocity 两球速度的分量平均，任一方缺少速度组件时为零
func (cs *CombinationSystem) averageVelocity(a, b ecs.EntityID) (float64, float64) {
	velA, okA := ecs.GetComponent[*components.VelocityComponent](cs.em, a)
	velB, okB := ecs.GetComponent[*components.VelocityComponent](cs.em, b)
	if !okA || !okB {
		return 0, 0
	}
	return (velA.VX + velB.VX) / 2, (velA.VY + velB.VY) / 2
}

// executeMerge 帧末执行合成
//
// 两个原球都仍存活时生成新球、加分、销毁原球；
// 无论是否执行，宽限期后都从登记表移除配对。
func (cs *CombinationSystem) executeMerge(pm pendingMerge) {
	defer cs.scheduler.AfterSeconds(cs.graceDelay, func() {
		cs.registry.Remove(pm.key)
	})

	if !cs.em.IsAlive(pm.a) || !cs.em.IsAlive(pm.b) {
		cs.skipped++
		log.Printf("[CombinationSystem] Skip merge %s: ball already gone", pm.key)
		return
	}

	result := entities.NewBallEntity(cs.em, pm.next, entities.BallSpawnOptions{
		X:        pm.x,
		Y:        pm.y,
		VX:       pm.vx,
		VY:       pm.vy,
		Combined: true,
	})

	cs.score.Add(pm.next.Points)

	cs.em.DestroyEntity(pm.a)
	cs.em.DestroyEntity(pm.b)
	cs.merged++

	log.Printf("[CombinationSystem] Merged %s %s -> %s (entity %d) at (%.2f, %.2f), +%d",
		pm.from, pm.key, pm.next.Category, result, pm.x, pm.y, pm.next.Points)

	event := MergeEvent{
		Pair:     pm.key,
		Result:   result,
		From:     pm.from,
		To:       pm.next.Category,
		Level:    pm.level,
		Points:   pm.next.Points,
		X:        pm.x,
		Y:        pm.y,
		VX:       pm.vx,
		VY:       pm.vy,
		Detected: pm.detected,
	}
	for _, l := range cs.listeners {
		l(event)
	}
}
