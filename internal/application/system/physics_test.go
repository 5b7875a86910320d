package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/expired/internal/ecs"
	"github.com/younwookim/expired/internal/infrastructure/config"
)

func createTestTuning() *config.Tuning {
	return config.DefaultTuning()
}

func createTestPlayer(w *ecs.World, pos ecs.Vec2) ecs.EntityID {
	return NewPlayerController(createTestTuning()).Spawn(w, pos)
}

func TestPhysicsSystem_DT(t *testing.T) {
	s := NewPhysicsSystem(&config.PhysicsConfig{FixedHz: 120})
	assert.InDelta(t, 1.0/120.0, s.DT(), 1e-12)
}

func TestPhysicsSystem_StepGravityImpulse(t *testing.T) {
	tuning := createTestTuning()
	s := NewPhysicsSystem(&tuning.Physics)
	w := ecs.NewWorld()
	id := createTestPlayer(w, ecs.Vec2{})

	hits := s.Step(w)

	assert.Empty(t, hits)
	assert.Equal(t, ecs.Velocity{X: 0, Y: -50}, w.Velocity[id])
	assert.InDelta(t, -50.0/60.0, w.Position[id].Y, 1e-9)
}

func TestPhysicsSystem_StepLandsOnPlatform(t *testing.T) {
	tuning := createTestTuning()
	s := NewPhysicsSystem(&tuning.Physics)
	sp := NewSpawner(&tuning.Entities)
	w := ecs.NewWorld()

	sp.PushPlatform(SpawnPlatform{Pos: ecs.Vec2{Y: -100}})
	sp.Drain(w)
	id := createTestPlayer(w, ecs.Vec2{})

	var landed []ecs.Hit
	for i := 0; i < 120; i++ {
		landed = append(landed, s.Step(w)...)
	}

	require.NotEmpty(t, landed)
	assert.Equal(t, ecs.ContactTop, landed[0].Contact)
	assert.Equal(t, -100.0+24.0+32.0, w.Position[id].Y)
	assert.Equal(t, 0.0, w.Velocity[id].Y)
}

func TestPhysicsSystem_VelocityGrowsLinearlyWhileFalling(t *testing.T) {
	tuning := createTestTuning()
	s := NewPhysicsSystem(&tuning.Physics)
	w := ecs.NewWorld()
	id := createTestPlayer(w, ecs.Vec2{})

	for n := 1; n <= 30; n++ {
		s.Step(w)
		require.InDelta(t, float64(n)*-50, w.Velocity[id].Y, 1e-9, "tick %d", n)
	}
}
