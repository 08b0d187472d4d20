package systems

import (
	"github.com/decker502/mergeball/pkg/config"
	"github.com/decker502/mergeball/pkg/ecs"
	"github.com/decker502/mergeball/pkg/entities"
	"github.com/decker502/mergeball/pkg/game"
	"github.com/decker502/mergeball/pkg/types"
)

// testFrame 测试使用的固定帧时长
const testFrame = 1.0 / 60.0

// testChain 创建测试用的三级进化链：cherry(1) -> strawberry(3) -> grape(9)
func testChain() *config.EvolutionChain {
	return config.NewEvolutionChain([]config.BallTypeConfig{
		{Name: "cherry", Category: types.BallCherry, Radius: 0.5, Mass: 0.25, Points: 1},
		{Name: "strawberry", Category: types.BallStrawberry, Radius: 0.75, Mass: 0.5625, Points: 3},
		{Name: "grape", Category: types.BallGrape, Radius: 1.0, Mass: 1, Points: 9},
	})
}

// testWorld 组装一套按游戏顺序驱动的系统，供系统测试共用
type testWorld struct {
	em        *ecs.EntityManager
	chain     *config.EvolutionChain
	scheduler *game.Scheduler
	registry  *game.PendingMergeRegistry
	score     *game.ScoreTracker
	gate      *PhysicsGateSystem
	physics   *PhysicsSystem
	combiner  *CombinationSystem
}

func newTestWorld(physics config.PhysicsConfig) *testWorld {
	em := ecs.NewEntityManager()
	chain := testChain()
	w := &testWorld{
		em:        em,
		chain:     chain,
		scheduler: game.NewScheduler(),
		registry:  game.NewPendingMergeRegistry(),
		score:     game.NewScoreTracker(),
		gate:      NewPhysicsGateSystem(em),
		physics:   NewPhysicsSystem(em, physics),
	}
	w.combiner = NewCombinationSystem(em, chain, w.registry, w.scheduler, w.score, config.DefaultMergeConfig())
	w.physics.AddListener(w.combiner)
	return w
}

// step 按游戏主循环顺序推进一帧
func (w *testWorld) step() {
	w.scheduler.Update(testFrame)
	w.gate.Update(testFrame)
	w.physics.Update(testFrame)
	w.scheduler.EndOfFrame()
	w.em.RemoveMarkedEntities()
}

// spawn 创建一个球
func (w *testWorld) spawn(category types.BallCategory, opts entities.BallSpawnOptions) ecs.EntityID {
	id, err := entities.NewBallFactory(w.em, w.chain).Spawn(category, opts)
	if err != nil {
		panic(err)
	}
	return id
}

// scriptedInput 可编程的生成器输入
type scriptedInput struct {
	axis float64
	drop bool
}

func (in *scriptedInput) Horizontal() float64 { return in.axis }

// DropPressed 只在置位后的第一次读取返回 true
func (in *scriptedInput) DropPressed() bool {
	d := in.drop
	in.drop = false
	return d
}

// fixedRandom 返回固定值的随机数来源
type fixedRandom float64

func (r fixedRandom) Float64() float64 { return float64(r) }
