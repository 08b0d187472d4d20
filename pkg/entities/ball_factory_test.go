package entities

import (
	"testing"

	"github.com/decker502/mergeball/pkg/components"
	"github.com/decker502/mergeball/pkg/config"
	"github.com/decker502/mergeball/pkg/ecs"
	"github.com/decker502/mergeball/pkg/types"
)

func testChain() *config.EvolutionChain {
	return config.NewEvolutionChain([]config.BallTypeConfig{
		{Category: types.BallCherry, Radius: 0.5, Color: "#ff0000", Points: 1},
		{Category: types.BallStrawberry, Radius: 0.7, Mass: 2, Points: 3},
	})
}

func TestNewBallEntityHeld(t *testing.T) {
	em := ecs.NewEntityManager()
	f := NewBallFactory(em, testChain())

	id, err := f.Spawn(types.BallCherry, BallSpawnOptions{X: 1, Y: 18})
	if err != nil {
		t.Fatalf("Spawn() error: %v", err)
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok || pos.X != 1 || pos.Y != 18 {
		t.Errorf("position = %+v, %v", pos, ok)
	}

	rb, ok := ecs.GetComponent[*components.RigidbodyComponent](em, id)
	if !ok {
		t.Fatal("rigidbody missing")
	}
	if rb.GravityScale != 0 {
		t.Errorf("held ball gravity = %v, want 0", rb.GravityScale)
	}
	if rb.Mass != 0.25 {
		t.Errorf("default mass = %v, want radius^2 = 0.25", rb.Mass)
	}

	col, _ := ecs.GetComponent[*components.CircleColliderComponent](em, id)
	if col.Radius != 0.5 {
		t.Errorf("radius = %v, want 0.5", col.Radius)
	}

	ball, _ := ecs.GetComponent[*components.BallComponent](em, id)
	if ball.Category != types.BallCherry || ball.Color.R != 0xff {
		t.Errorf("ball = %+v", ball)
	}

	gate, _ := ecs.GetComponent[*components.PhysicsGateComponent](em, id)
	if gate.Combined || gate.Released {
		t.Errorf("held ball gate = %+v", gate)
	}
}

func TestNewBallEntityCombined(t *testing.T) {
	em := ecs.NewEntityManager()
	f := NewBallFactory(em, testChain())

	id, err := f.Spawn(types.BallStrawberry, BallSpawnOptions{X: 1, Y: 5, VX: 0.5, VY: -1, Combined: true})
	if err != nil {
		t.Fatalf("Spawn() error: %v", err)
	}

	rb, _ := ecs.GetComponent[*components.RigidbodyComponent](em, id)
	if rb.GravityScale != 1 {
		t.Errorf("combined ball gravity = %v, want 1", rb.GravityScale)
	}
	if rb.Mass != 2 {
		t.Errorf("configured mass = %v, want 2", rb.Mass)
	}

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if vel.VX != 0.5 || vel.VY != -1 {
		t.Errorf("velocity = %+v", vel)
	}

	gate, _ := ecs.GetComponent[*components.PhysicsGateComponent](em, id)
	if !gate.Combined {
		t.Error("combined flag not set")
	}
}

func TestSpawnUnknownCategory(t *testing.T) {
	em := ecs.NewEntityManager()
	f := NewBallFactory(em, testChain())

	id, err := f.Spawn(types.BallWatermelon, BallSpawnOptions{})
	if err == nil {
		t.Fatal("expected error for category outside the chain")
	}
	if id != ecs.InvalidEntity {
		t.Errorf("id = %d, want InvalidEntity", id)
	}
	if em.EntityCount() != 0 {
		t.Errorf("no entity should be created, got %d", em.EntityCount())
	}
}
