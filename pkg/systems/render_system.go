package systems

import (
	"image/color"

	"github.com/decker502/mergeball/pkg/components"
	"github.com/decker502/mergeball/pkg/config"
	"github.com/decker502/mergeball/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 250, G: 236, B: 204, A: 255}
	containerColor  = color.RGBA{R: 120, G: 84, B: 52, A: 255}
	guideColor      = color.RGBA{R: 255, G: 255, B: 255, A: 140}
	outlineColor    = color.RGBA{R: 60, G: 40, B: 30, A: 200}
)

const (
	// containerThickness 容器墙/地面的绘制厚度（像素）
	containerThickness = 6
	// outlineWidth 球描边宽度（像素）
	outlineWidth = 1.5
)

// BallSprite 一个球在屏幕上的绘制参数
type BallSprite struct {
	ID     ecs.EntityID
	X, Y   float32 // 屏幕坐标（圆心）
	Radius float32 // 屏幕半径
	Color  color.RGBA
	Held   bool // 是否为生成器持有中的球
}

// RenderSystem 绘制容器与所有球
//
// 世界坐标通过 config.WorldToScreen 映射到屏幕。
// 绘制顺序按实体 ID 升序，先生成的球在下层。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	gate          *PhysicsGateSystem
	physics       config.PhysicsConfig
	spawnHeight   float64
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - em: 实体管理器
//   - gate: 用于区分持有中与已释放的球
//   - physics: 容器边界
//   - spawnHeight: 生成点高度（绘制投放引导线）
func NewRenderSystem(em *ecs.EntityManager, gate *PhysicsGateSystem, physics config.PhysicsConfig, spawnHeight float64) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		gate:          gate,
		physics:       physics,
		spawnHeight:   spawnHeight,
	}
}

// BallSprites 收集所有存活球的绘制参数
func (s *RenderSystem) BallSprites() []BallSprite {
	ids := s.entityManager.GetEntitiesWith(typeOfBall, typeOfPosition, typeOfCircleCollider)
	sprites := make([]BallSprite, 0, len(ids))
	for _, id := range ids {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		ball, _ := ecs.GetComponent[*components.BallComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CircleColliderComponent](s.entityManager, id)

		sx, sy := config.WorldToScreen(pos.X, pos.Y)
		sprites = append(sprites, BallSprite{
			ID:     id,
			X:      float32(sx),
			Y:      float32(sy),
			Radius: float32(col.Radius * config.PixelsPerUnit * PopScale(s.entityManager, id)),
			Color:  ball.Color,
			Held:   s.gate != nil && !s.gate.IsReleased(id),
		})
	}
	return sprites
}

// Draw 绘制背景、容器、投放引导线和球
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.drawContainer(screen)

	sprites := s.BallSprites()
	for _, sp := range sprites {
		if sp.Held {
			s.drawGuide(screen, sp)
		}
	}
	for _, sp := range sprites {
		vector.DrawFilledCircle(screen, sp.X, sp.Y, sp.Radius, sp.Color, true)
		vector.StrokeCircle(screen, sp.X, sp.Y, sp.Radius, outlineWidth, outlineColor, true)
	}
}

// drawContainer 绘制左右墙与地面
func (s *RenderSystem) drawContainer(screen *ebiten.Image) {
	left, floor := config.WorldToScreen(s.physics.LeftWall, s.physics.Floor)
	right, top := config.WorldToScreen(s.physics.RightWall, s.spawnHeight)

	vector.DrawFilledRect(screen,
		float32(left)-containerThickness, float32(top),
		containerThickness, float32(floor-top)+containerThickness,
		containerColor, false)
	vector.DrawFilledRect(screen,
		float32(right), float32(top),
		containerThickness, float32(floor-top)+containerThickness,
		containerColor, false)
	vector.DrawFilledRect(screen,
		float32(left)-containerThickness, float32(floor),
		float32(right-left)+2*containerThickness, containerThickness,
		containerColor, false)
}

// drawGuide 从持有的球向地面绘制竖直引导线
func (s *RenderSystem) drawGuide(screen *ebiten.Image, sp BallSprite) {
	_, floor := config.WorldToScreen(0, s.physics.Floor)
	vector.StrokeLine(screen, sp.X, sp.Y+sp.Radius, sp.X, float32(floor), 1, guideColor, false)
}
