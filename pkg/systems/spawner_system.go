package systems

import (
	"log"
	"math"

	"github.com/decker502/mergeball/pkg/components"
	"github.com/decker502/mergeball/pkg/config"
	"github.com/decker502/mergeball/pkg/ecs"
	"github.com/decker502/mergeball/pkg/entities"
	"github.com/decker502/mergeball/pkg/game"
)

// SpawnerInput 生成器读取的玩家输入
type SpawnerInput interface {
	// Horizontal 返回水平输入轴，-1（左）~ 1（右）
	Horizontal() float64
	// DropPressed 本帧是否按下投放
	DropPressed() bool
}

// SpawnerState 生成器状态
type SpawnerState int

const (
	// SpawnerIdle 尚未生成第一个球
	SpawnerIdle SpawnerState = iota
	// SpawnerHolding 持有一个球，接受水平控制
	SpawnerHolding
	// SpawnerDropped 已投放，等待球落定
	SpawnerDropped
	// SpawnerWaiting 已安排生成下一个球
	SpawnerWaiting
)

// String 返回状态名，用于日志
func (s SpawnerState) String() string {
	switch s {
	case SpawnerIdle:
		return "Idle"
	case SpawnerHolding:
		return "Holding"
	case SpawnerDropped:
		return "Dropped"
	case SpawnerWaiting:
		return "Waiting"
	default:
		return "Unknown"
	}
}

// SpawnerSystem 球生成器
//
// 在生成点放置一个无重力的球，持有期间把水平输入映射为位移并限制在边界内；
// 投放后开启重力，等球落定（速度低于阈值）或消失后，延迟一段时间生成下一个。
type SpawnerSystem struct {
	em        *ecs.EntityManager
	factory   *entities.BallFactory
	gate      *PhysicsGateSystem
	scheduler *game.Scheduler
	cfg       config.SpawnerConfig
	entries   []config.SpawnEntry
	rng       game.RandomSource
	input     SpawnerInput

	state     SpawnerState
	active    ecs.EntityID
	dropTick  uint64
	droppedAt float64
	spawned   int

	onDrop []func(ecs.EntityID)
}

// NewSpawnerSystem 创建生成器
//
// 参数:
//   - em: 实体管理器
//   - factory: 球工厂
//   - gate: 重力开关系统（投放时释放重力）
//   - scheduler: 延迟执行队列
//   - cfg: 生成器参数
//   - entries: 可生成的球及权重
//   - rng: 随机数来源
//   - input: 玩家输入
func NewSpawnerSystem(
	em *ecs.EntityManager,
	factory *entities.BallFactory,
	gate *PhysicsGateSystem,
	scheduler *game.Scheduler,
	cfg config.SpawnerConfig,
	entries []config.SpawnEntry,
	rng game.RandomSource,
	input SpawnerInput,
) *SpawnerSystem {
	return &SpawnerSystem{
		em:        em,
		factory:   factory,
		gate:      gate,
		scheduler: scheduler,
		cfg:       cfg,
		entries:   entries,
		rng:       rng,
		input:     input,
		state:     SpawnerIdle,
	}
}

// OnDrop 注册投放回调
func (s *SpawnerSystem) OnDrop(fn func(ecs.EntityID)) {
	if fn != nil {
		s.onDrop = append(s.onDrop, fn)
	}
}

// SetInput 替换输入来源
func (s *SpawnerSystem) SetInput(input SpawnerInput) {
	s.input = input
}

// State 返回当前状态
func (s *SpawnerSystem) State() SpawnerState {
	return s.state
}

// ActiveBall 返回当前持有或刚投放的球
func (s *SpawnerSystem) ActiveBall() ecs.EntityID {
	return s.active
}

// SpawnedCount 返回已生成的球数量
func (s *SpawnerSystem) SpawnedCount() int {
	return s.spawned
}

// Spawn 按权重随机选择一种球，在生成点创建并进入持有状态
func (s *SpawnerSystem) Spawn() error {
	idx, err := game.SelectWeighted(s.entries, s.rng)
	if err != nil {
		log.Printf("[SpawnerSystem] Cannot select ball: %v", err)
		return err
	}
	category := s.entries[idx].Category

	id, err := s.factory.Spawn(category, entities.BallSpawnOptions{
		X: 0,
		Y: s.cfg.SpawnHeight,
	})
	if err != nil {
		log.Printf("[SpawnerSystem] Spawn %s failed: %v", category, err)
		return err
	}

	s.active = id
	s.state = SpawnerHolding
	s.spawned++
	log.Printf("[SpawnerSystem] Spawned %s (entity %d)", category, id)
	return nil
}

// Update 处理持有球的移动、投放以及落定后的重新生成
func (s *SpawnerSystem) Update(deltaTime float64) {
	switch s.state {
	case SpawnerHolding:
		s.updateHolding(deltaTime)
	case SpawnerDropped:
		s.updateDropped()
	}
}

func (s *SpawnerSystem) updateHolding(deltaTime float64) {
	if !s.em.IsAlive(s.active) {
		// 持有中的球被合成掉了，直接安排下一个
		s.scheduleRespawn()
		return
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.active)
	if !ok {
		s.scheduleRespawn()
		return
	}

	axis := 0.0
	drop := false
	if s.input != nil {
		axis = clamp(s.input.Horizontal(), -1, 1)
		drop = s.input.DropPressed()
	}

	pos.X = clamp(pos.X+axis*s.cfg.MoveSpeed*deltaTime, s.cfg.LeftBoundary, s.cfg.RightBoundary)
	pos.Y = s.cfg.SpawnHeight

	// 持有期间冻结在生成高度
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, s.active); ok {
		vel.VX, vel.VY = 0, 0
	}

	if drop {
		s.Drop()
	}
}

// Drop 投放持有的球
// 非持有状态下调用无效果
func (s *SpawnerSystem) Drop() {
	if s.state != SpawnerHolding {
		return
	}
	if !s.gate.Release(s.active) {
		return
	}

	s.state = SpawnerDropped
	s.dropTick = s.scheduler.Tick()
	s.droppedAt = s.scheduler.Now()
	log.Printf("[SpawnerSystem] Dropped entity %d", s.active)

	for _, fn := range s.onDrop {
		fn(s.active)
	}
}

func (s *SpawnerSystem) updateDropped() {
	// 投放当帧物理尚未推进，速度仍为 0，从下一帧开始检查
	if s.scheduler.Tick() <= s.dropTick {
		return
	}

	if !s.em.IsAlive(s.active) {
		s.scheduleRespawn()
		return
	}

	if s.cfg.SettleTimeout > 0 && s.scheduler.Now()-s.droppedAt >= s.cfg.SettleTimeout {
		log.Printf("[SpawnerSystem] Entity %d did not settle in %.1fs, spawning next", s.active, s.cfg.SettleTimeout)
		s.scheduleRespawn()
		return
	}

	vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, s.active)
	if !ok || math.Hypot(vel.VX, vel.VY) < s.cfg.SettleSpeed {
		s.scheduleRespawn()
	}
}

// scheduleRespawn 延迟生成下一个球，失败时按同样的延迟重试
func (s *SpawnerSystem) scheduleRespawn() {
	s.state = SpawnerWaiting
	s.scheduler.AfterSeconds(s.cfg.RespawnDelay, func() {
		if err := s.Spawn(); err != nil {
			log.Printf("[SpawnerSystem] Warning: respawn failed, retrying in %.2fs: %v", s.cfg.RespawnDelay, err)
			s.scheduleRespawn()
		}
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
