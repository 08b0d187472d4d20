package systems

import (
	"math"
	"sort"

	"github.com/decker502/mergeball/pkg/components"
	"github.com/decker502/mergeball/pkg/config"
	"github.com/decker502/mergeball/pkg/ecs"
	"github.com/decker502/mergeball/pkg/game"
)

const (
	// contactSlop 两个圆的间距小于该值仍视为接触，避免静止堆叠时接触反复开合
	contactSlop = 0.02
	// bounceThreshold 法向接近速度低于该值时不反弹（静止接触不抖动）
	bounceThreshold = 1.0
)

// CollisionListener 接触事件监听者
//
// 两个实体开始接触时，每个参与者各收到一次回调：
// OnCollisionEnter(a, b) 与 OnCollisionEnter(b, a)。
type CollisionListener interface {
	OnCollisionEnter(self, other ecs.EntityID)
}

// body 一帧内参与模拟的刚体快照
type body struct {
	id  ecs.EntityID
	pos *components.PositionComponent
	vel *components.VelocityComponent
	rb  *components.RigidbodyComponent
	col *components.CircleColliderComponent
}

func (b body) invMass() float64 {
	if b.rb.Mass <= 0 {
		return 1
	}
	return 1 / b.rb.Mass
}

// PhysicsSystem 圆形刚体物理
// 负责重力积分、球与球/容器的接触求解，并在接触开始时派发事件
type PhysicsSystem struct {
	em        *ecs.EntityManager
	cfg       config.PhysicsConfig
	listeners []CollisionListener

	// 上一帧处于接触中的配对，用于只在接触开始时派发事件
	contacts map[game.PairKey]struct{}
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 物理参数（重力、弹性、容器边界）
func NewPhysicsSystem(em *ecs.EntityManager, cfg config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{
		em:       em,
		cfg:      cfg,
		contacts: make(map[game.PairKey]struct{}),
	}
}

// AddListener 注册接触事件监听者
func (ps *PhysicsSystem) AddListener(l CollisionListener) {
	if l != nil {
		ps.listeners = append(ps.listeners, l)
	}
}

// Update 推进一步物理模拟
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (ps *PhysicsSystem) Update(deltaTime float64) {
	bodies := ps.collectBodies()

	// 1. 积分
	for _, b := range bodies {
		b.vel.VY += ps.cfg.Gravity * b.rb.GravityScale * deltaTime
		b.pos.X += b.vel.VX * deltaTime
		b.pos.Y += b.vel.VY * deltaTime
	}

	// 2. 接触求解
	for iter := 0; iter < ps.cfg.Iterations; iter++ {
		for i := 0; i < len(bodies); i++ {
			for j := i + 1; j < len(bodies); j++ {
				ps.resolvePair(bodies[i], bodies[j])
			}
			ps.resolveContainer(bodies[i])
		}
	}

	// 3. 派发新开始的接触
	current := make(map[game.PairKey]struct{})
	entered := make([]game.PairKey, 0)
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if !touching(bodies[i], bodies[j]) {
				continue
			}
			key := game.NewPairKey(bodies[i].id, bodies[j].id)
			current[key] = struct{}{}
			if _, was := ps.contacts[key]; !was {
				entered = append(entered, key)
			}
		}
	}
	ps.contacts = current

	sort.Slice(entered, func(i, j int) bool {
		if entered[i].Low != entered[j].Low {
			return entered[i].Low < entered[j].Low
		}
		return entered[i].High < entered[j].High
	})
	for _, key := range entered {
		for _, l := range ps.listeners {
			l.OnCollisionEnter(key.Low, key.High)
			l.OnCollisionEnter(key.High, key.Low)
		}
	}
}

// InContact 报告两个实体上一步结束时是否处于接触
func (ps *PhysicsSystem) InContact(a, b ecs.EntityID) bool {
	_, ok := ps.contacts[game.NewPairKey(a, b)]
	return ok
}

// collectBodies 收集所有存活的刚体（按 ID 升序，保证求解顺序确定）
func (ps *PhysicsSystem) collectBodies() []body {
	ids := ps.em.GetEntitiesWith(
		typeOfPosition, typeOfVelocity, typeOfRigidbody, typeOfCircleCollider,
	)

	bodies := make([]body, 0, len(ids))
	for _, id := range ids {
		if !ps.em.IsAlive(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](ps.em, id)
		rb, _ := ecs.GetComponent[*components.RigidbodyComponent](ps.em, id)
		col, _ := ecs.GetComponent[*components.CircleColliderComponent](ps.em, id)
		bodies = append(bodies, body{id: id, pos: pos, vel: vel, rb: rb, col: col})
	}
	return bodies
}

// touching 判断两个圆是否接触（含 contactSlop 容差）
func touching(a, b body) bool {
	dx := b.pos.X - a.pos.X
	dy := b.pos.Y - a.pos.Y
	r := a.col.Radius + b.col.Radius + contactSlop
	return dx*dx+dy*dy <= r*r
}

// resolvePair 分离重叠的两个圆并施加法向冲量
func (ps *PhysicsSystem) resolvePair(a, b body) {
	dx := b.pos.X - a.pos.X
	dy := b.pos.Y - a.pos.Y
	minDist := a.col.Radius + b.col.Radius
	distSq := dx*dx + dy*dy
	if distSq >= minDist*minDist {
		return
	}

	dist := math.Sqrt(distSq)
	var nx, ny float64
	if dist < 1e-9 {
		// 完全重合时沿竖直方向分开
		nx, ny, dist = 0, 1, 0
	} else {
		nx, ny = dx/dist, dy/dist
	}

	invA, invB := a.invMass(), b.invMass()
	invSum := invA + invB

	// 位置修正：按质量倒数分配穿透深度
	penetration := minDist - dist
	a.pos.X -= nx * penetration * invA / invSum
	a.pos.Y -= ny * penetration * invA / invSum
	b.pos.X += nx * penetration * invB / invSum
	b.pos.Y += ny * penetration * invB / invSum

	// 法向冲量
	rvx := b.vel.VX - a.vel.VX
	rvy := b.vel.VY - a.vel.VY
	vn := rvx*nx + rvy*ny
	if vn >= 0 {
		return
	}
	e := ps.cfg.Restitution
	if -vn < bounceThreshold {
		e = 0
	}
	j := -(1 + e) * vn / invSum
	a.vel.VX -= j * nx * invA
	a.vel.VY -= j * ny * invA
	b.vel.VX += j * nx * invB
	b.vel.VY += j * ny * invB

	// 切向摩擦
	tx, ty := -ny, nx
	vt := rvx*tx + rvy*ty
	loss := vt * (1 - ps.cfg.Friction) / invSum
	a.vel.VX += loss * tx * invA
	a.vel.VY += loss * ty * invA
	b.vel.VX -= loss * tx * invB
	b.vel.VY -= loss * ty * invB
}

// resolveContainer 将圆限制在容器（左右墙与地面）内
func (ps *PhysicsSystem) resolveContainer(b body) {
	r := b.col.Radius

	if b.pos.X-r < ps.cfg.LeftWall {
		b.pos.X = ps.cfg.LeftWall + r
		if b.vel.VX < 0 {
			b.vel.VX = ps.bounce(b.vel.VX)
		}
	}
	if b.pos.X+r > ps.cfg.RightWall {
		b.pos.X = ps.cfg.RightWall - r
		if b.vel.VX > 0 {
			b.vel.VX = ps.bounce(b.vel.VX)
		}
	}
	if b.pos.Y-r < ps.cfg.Floor {
		b.pos.Y = ps.cfg.Floor + r
		if b.vel.VY < 0 {
			b.vel.VY = ps.bounce(b.vel.VY)
			b.vel.VX *= ps.cfg.Friction
		}
	}
}

// bounce 返回撞墙后的法向速度
func (ps *PhysicsSystem) bounce(v float64) float64 {
	if math.Abs(v) < bounceThreshold {
		return 0
	}
	return -v * ps.cfg.Restitution
}
