package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/expired/internal/ecs"
)

func TestPlayerController_Spawn(t *testing.T) {
	c := NewPlayerController(createTestTuning())
	w := ecs.NewWorld()

	id := c.Spawn(w, ecs.Vec2{X: 1, Y: 2})

	assert.Equal(t, ecs.Vec2{X: 1, Y: 2}, w.Position[id])
	assert.Equal(t, ecs.Gravity{Y: -1}, w.Gravity[id])
	assert.Equal(t, ecs.Vec2{X: 16, Y: 32}, w.Shape[id].HalfSize)
	assert.Equal(t, ecs.Vec2{X: 3, Y: 3}, w.Sprite[id].Scale)
	assert.Equal(t, 15, w.Animation[id].Length)
}

func TestPlayerController_FixedUpdateCollectsAndCompletes(t *testing.T) {
	tuning := createTestTuning()
	c := NewPlayerController(tuning)
	sp := NewSpawner(&tuning.Entities)
	fx := NewSideEffectSystem(&tuning.Effects, 1)
	w := ecs.NewWorld()

	sp.PushPill(SpawnPill{Pos: ecs.Vec2{X: 5}, Effect: ecs.EffectSpeed})
	sp.PushPatient(SpawnPatient{Pos: ecs.Vec2{X: 20}})
	goal := sp.Drain(w).Patient
	id := c.Spawn(w, ecs.Vec2{})

	done := c.FixedUpdate(w, id, goal, 1, ecs.MoveInput{}, fx.Queue())

	assert.True(t, done, "collected count reaches goal in the same tick")
	assert.Equal(t, 1, w.Player[id].Collected)
	assert.Equal(t, 1, fx.Queue().Len())
}

func TestPlayerController_FixedUpdateUnderCollected(t *testing.T) {
	tuning := createTestTuning()
	c := NewPlayerController(tuning)
	sp := NewSpawner(&tuning.Entities)
	fx := NewSideEffectSystem(&tuning.Effects, 1)
	w := ecs.NewWorld()

	sp.PushPatient(SpawnPatient{})
	goal := sp.Drain(w).Patient
	id := c.Spawn(w, ecs.Vec2{})

	for i := 0; i < 10; i++ {
		require.False(t, c.FixedUpdate(w, id, goal, 1, ecs.MoveInput{}, fx.Queue()))
	}
}

func TestPlayerController_FixedUpdateMoves(t *testing.T) {
	tuning := createTestTuning()
	c := NewPlayerController(tuning)
	fx := NewSideEffectSystem(&tuning.Effects, 1)
	w := ecs.NewWorld()
	id := c.Spawn(w, ecs.Vec2{})

	c.FixedUpdate(w, id, ecs.NoEntity, 0, ecs.MoveInput{Left: true, JumpPressed: true}, fx.Queue())

	assert.Equal(t, -400.0, w.Velocity[id].X)
	assert.Equal(t, 1000.0, w.Velocity[id].Y)
	assert.True(t, w.Sprite[id].FlipX)
}

func TestPlayerController_FixedUpdateWithoutPlayer(t *testing.T) {
	tuning := createTestTuning()
	c := NewPlayerController(tuning)
	fx := NewSideEffectSystem(&tuning.Effects, 1)
	w := ecs.NewWorld()

	assert.False(t, c.FixedUpdate(w, ecs.NoEntity, ecs.NoEntity, 0, ecs.MoveInput{Right: true}, fx.Queue()))
}

func TestPlayerController_FrameUpdateSignalsStateChange(t *testing.T) {
	c := NewPlayerController(createTestTuning())
	w := ecs.NewWorld()
	id := c.Spawn(w, ecs.Vec2{})

	type change struct{ from, to ecs.PlayerState }
	var changes []change
	c.OnStateChange = func(_ ecs.EntityID, from, to ecs.PlayerState) {
		changes = append(changes, change{from, to})
	}

	c.FrameUpdate(w, id)
	assert.Empty(t, changes, "idle at rest")

	w.Velocity[id] = ecs.Velocity{X: 400}
	sprite := w.Sprite[id]
	sprite.Index = 9
	w.Sprite[id] = sprite
	c.FrameUpdate(w, id)
	c.FrameUpdate(w, id)

	require.Len(t, changes, 1)
	assert.Equal(t, change{ecs.StateIdle, ecs.StateRunning}, changes[0])
	assert.Equal(t, "player_run", w.Sprite[id].Strip)
	assert.Equal(t, 0, w.Sprite[id].Index, "frame index resets on swap")
	assert.Equal(t, 8, w.Animation[id].Length)

	w.Velocity[id] = ecs.Velocity{X: 400, Y: -10}
	c.FrameUpdate(w, id)
	require.Len(t, changes, 2)
	assert.Equal(t, ecs.StateFalling, changes[1].to)
}

func TestPlayerController_OutOfBounds(t *testing.T) {
	c := NewPlayerController(createTestTuning())
	w := ecs.NewWorld()
	id := c.Spawn(w, ecs.Vec2{Y: -900})

	assert.False(t, c.OutOfBounds(w, id))

	w.Position[id] = ecs.Position{Y: -1000.5}
	assert.True(t, c.OutOfBounds(w, id))
	assert.False(t, c.OutOfBounds(w, ecs.NoEntity))
}
