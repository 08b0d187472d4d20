package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/mergeball/pkg/components"
	"github.com/decker502/mergeball/pkg/config"
	"github.com/decker502/mergeball/pkg/ecs"
	"github.com/decker502/mergeball/pkg/entities"
	"github.com/decker502/mergeball/pkg/types"
)

// TestRenderBallSprites 球的世界坐标被映射到屏幕
func TestRenderBallSprites(t *testing.T) {
	w := newTestWorld(config.DefaultPhysicsConfig())
	held := w.spawn(types.BallCherry, entities.BallSpawnOptions{X: 0, Y: 18})
	falling := w.spawn(types.BallGrape, entities.BallSpawnOptions{X: 2, Y: 1, Combined: true})
	gone := w.spawn(types.BallCherry, entities.BallSpawnOptions{X: -2, Y: 1, Combined: true})
	w.em.DestroyEntity(gone)

	ball, _ := ecs.GetComponent[*components.BallComponent](w.em, falling)
	ball.Color = color.RGBA{R: 1, G: 2, B: 3, A: 255}

	rs := NewRenderSystem(w.em, w.gate, config.DefaultPhysicsConfig(), 18)
	sprites := rs.BallSprites()

	if len(sprites) != 2 {
		t.Fatalf("sprites = %d, want 2", len(sprites))
	}

	tests := []struct {
		name   string
		sprite BallSprite
		id     ecs.EntityID
		x, y   float64
		radius float64
		held   bool
	}{
		{name: "持有中的球", sprite: sprites[0], id: held, x: 0, y: 18, radius: 0.5, held: true},
		{name: "合成产物", sprite: sprites[1], id: falling, x: 2, y: 1, radius: 1.0, held: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.sprite.ID != tt.id {
				t.Errorf("ID = %d, want %d", tt.sprite.ID, tt.id)
			}
			wantX, wantY := config.WorldToScreen(tt.x, tt.y)
			if tt.sprite.X != float32(wantX) || tt.sprite.Y != float32(wantY) {
				t.Errorf("screen position = (%v, %v), want (%v, %v)", tt.sprite.X, tt.sprite.Y, wantX, wantY)
			}
			if tt.sprite.Radius != float32(tt.radius*config.PixelsPerUnit) {
				t.Errorf("Radius = %v, want %v", tt.sprite.Radius, tt.radius*config.PixelsPerUnit)
			}
			if tt.sprite.Held != tt.held {
				t.Errorf("Held = %v, want %v", tt.sprite.Held, tt.held)
			}
		})
	}

	if sprites[1].Color != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("Color = %v, want component color", sprites[1].Color)
	}
}
