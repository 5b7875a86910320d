package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEffects = EffectConfig{
	ShrinkFactor:     0.73,
	ShrinkJumpFactor: 0.85,
	SpeedFactor:      1.5,
	SlownessFactor:   0.8,
}

var testMove = MoveConfig{Speed: 400, JumpSpeed: 1000}

func TestDeriveState(t *testing.T) {
	tests := []struct {
		name string
		vel  Velocity
		want PlayerState
	}{
		{"at rest", Velocity{}, StateIdle},
		{"running right", Velocity{X: 400}, StateRunning},
		{"running left", Velocity{X: -400}, StateRunning},
		{"rising", Velocity{Y: 10}, StateJumping},
		{"falling", Velocity{Y: -10}, StateFalling},
		{"rising while moving favors vertical", Velocity{X: 400, Y: 1}, StateJumping},
		{"falling while moving favors vertical", Velocity{X: -400, Y: -1}, StateFalling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveState(tt.vel))
		})
	}
}

func TestTransitionPlayerState_IndependentOfHistory(t *testing.T) {
	w := NewWorld()
	id := w.CreatePlayer(Vec2{}, testPlayerConfig())

	sequence := []Velocity{{Y: 5}, {X: 3}, {Y: -2}, {}, {X: -1, Y: 9}}
	for _, v := range sequence {
		w.Velocity[id] = v
		TransitionPlayerState(w, id)
	}

	w.Velocity[id] = Velocity{X: 400}
	got, _ := TransitionPlayerState(w, id)
	assert.Equal(t, StateRunning, got)
	assert.Equal(t, StateRunning, w.Player[id].State)
}

func TestTransitionPlayerState_ReportsChange(t *testing.T) {
	w := NewWorld()
	id := w.CreatePlayer(Vec2{}, testPlayerConfig())

	_, changed := TransitionPlayerState(w, id)
	assert.False(t, changed, "idle stays idle")

	w.Velocity[id] = Velocity{Y: -50}
	state, changed := TransitionPlayerState(w, id)
	assert.True(t, changed)
	assert.Equal(t, StateFalling, state)

	_, changed = TransitionPlayerState(w, id)
	assert.False(t, changed)
}

func TestTransitionPlayerState_MissingPlayer(t *testing.T) {
	w := NewWorld()
	state, changed := TransitionPlayerState(w, NoEntity)
	assert.Equal(t, StateIdle, state)
	assert.False(t, changed)
}

func TestSelectAnimation(t *testing.T) {
	w := NewWorld()
	id := w.CreatePlayer(Vec2{}, testPlayerConfig())
	sprite := w.Sprite[id]
	sprite.Index = 7
	w.Sprite[id] = sprite

	SelectAnimation(w, id, StateRunning, 8)

	assert.Equal(t, "player_run", w.Sprite[id].Strip)
	assert.Equal(t, 0, w.Sprite[id].Index)
	assert.Equal(t, 8, w.Animation[id].Length)
}

// =============================================================================
// Movement Tests
// =============================================================================

func TestMovePlayer(t *testing.T) {
	t.Run("sets horizontal velocity directly", func(t *testing.T) {
		w := NewWorld()
		id := w.CreatePlayer(Vec2{}, testPlayerConfig())
		w.Velocity[id] = Velocity{X: 9999}

		MovePlayer(w, id, MoveInput{Right: true}, testMove)
		assert.Equal(t, 400.0, w.Velocity[id].X)
		assert.False(t, w.Sprite[id].FlipX)

		MovePlayer(w, id, MoveInput{Left: true}, testMove)
		assert.Equal(t, -400.0, w.Velocity[id].X)
		assert.True(t, w.Sprite[id].FlipX)
	})

	t.Run("no input stops and keeps facing", func(t *testing.T) {
		w := NewWorld()
		id := w.CreatePlayer(Vec2{}, testPlayerConfig())
		MovePlayer(w, id, MoveInput{Left: true}, testMove)

		MovePlayer(w, id, MoveInput{}, testMove)
		assert.Equal(t, 0.0, w.Velocity[id].X)
		assert.True(t, w.Sprite[id].FlipX)
	})

	t.Run("both directions cancel", func(t *testing.T) {
		w := NewWorld()
		id := w.CreatePlayer(Vec2{}, testPlayerConfig())

		MovePlayer(w, id, MoveInput{Left: true, Right: true}, testMove)
		assert.Equal(t, 0.0, w.Velocity[id].X)
	})

	t.Run("scaled by speed multiplier", func(t *testing.T) {
		w := NewWorld()
		id := w.CreatePlayer(Vec2{}, testPlayerConfig())
		p := w.Player[id]
		p.SpeedMultiplier = 1.5
		w.Player[id] = p

		MovePlayer(w, id, MoveInput{Right: true}, testMove)
		assert.Equal(t, 600.0, w.Velocity[id].X)
	})

	t.Run("missing player is a no-op", func(t *testing.T) {
		w := NewWorld()
		assert.NotPanics(t, func() {
			MovePlayer(w, NoEntity, MoveInput{Right: true}, testMove)
			MovePlayer(w, EntityID(42), MoveInput{Right: true}, testMove)
		})
		assert.Empty(t, w.Velocity)
	})
}

func TestMovePlayer_Jump(t *testing.T) {
	tests := []struct {
		state PlayerState
		jumps bool
	}{
		{StateIdle, true},
		{StateRunning, true},
		{StateJumping, false},
		{StateFalling, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			w := NewWorld()
			id := w.CreatePlayer(Vec2{}, testPlayerConfig())
			p := w.Player[id]
			p.State = tt.state
			p.JumpMultiplier = 0.85
			w.Player[id] = p
			w.Velocity[id] = Velocity{Y: -7}

			MovePlayer(w, id, MoveInput{JumpPressed: true}, testMove)

			if tt.jumps {
				assert.InDelta(t, 850, w.Velocity[id].Y, 1e-9)
			} else {
				assert.Equal(t, -7.0, w.Velocity[id].Y, "no double jump")
			}
		})
	}
}

// =============================================================================
// Pickup & Goal Tests
// =============================================================================

func TestCollectPills(t *testing.T) {
	w := NewWorld()
	player := w.CreatePlayer(Vec2{}, testPlayerConfig())
	near := w.CreatePill(Vec2{X: 20}, EffectSlowness, testPillConfig())
	far := w.CreatePill(Vec2{X: 500}, EffectSpeed, testPillConfig())
	var effects Queue[SideEffect]

	n := CollectPills(w, player, &effects)

	assert.Equal(t, 1, n)
	assert.False(t, w.Exists(near), "collected pill is removed")
	assert.True(t, w.Exists(far))
	assert.Equal(t, 1, w.Player[player].Collected)
	assert.Equal(t, []SideEffect{EffectSlowness}, effects.Drain())

	n = CollectPills(w, player, &effects)
	assert.Equal(t, 0, n, "nothing left to collect")
	assert.Equal(t, 1, w.Player[player].Collected)
	assert.Zero(t, effects.Len())
}

func TestCollectPills_MultipleInSpawnOrder(t *testing.T) {
	w := NewWorld()
	player := w.CreatePlayer(Vec2{}, testPlayerConfig())
	w.CreatePill(Vec2{X: 5}, EffectSpeed, testPillConfig())
	w.CreatePill(Vec2{X: -5}, EffectShrink, testPillConfig())
	var effects Queue[SideEffect]

	n := CollectPills(w, player, &effects)

	assert.Equal(t, 2, n)
	assert.Equal(t, 2, w.Player[player].Collected)
	assert.Equal(t, []SideEffect{EffectSpeed, EffectShrink}, effects.Drain())
}

func TestCollectPills_MissingPlayer(t *testing.T) {
	w := NewWorld()
	pill := w.CreatePill(Vec2{}, EffectSpeed, testPillConfig())
	var effects Queue[SideEffect]

	assert.Equal(t, 0, CollectPills(w, NoEntity, &effects))
	assert.True(t, w.Exists(pill))
}

func TestReachedGoal(t *testing.T) {
	setup := func(collected int, goalPos Vec2) (*World, EntityID, EntityID) {
		w := NewWorld()
		player := w.CreatePlayer(Vec2{}, testPlayerConfig())
		p := w.Player[player]
		p.Collected = collected
		w.Player[player] = p
		goal := w.CreatePatient(goalPos, testPatientConfig())
		return w, player, goal
	}

	t.Run("under-collected is silent", func(t *testing.T) {
		w, player, goal := setup(2, Vec2{X: 10})
		assert.False(t, ReachedGoal(w, player, goal, 3))
	})

	t.Run("exact count overlapping", func(t *testing.T) {
		w, player, goal := setup(3, Vec2{X: 10})
		assert.True(t, ReachedGoal(w, player, goal, 3))
	})

	t.Run("over-collected never completes", func(t *testing.T) {
		w, player, goal := setup(4, Vec2{X: 10})
		assert.False(t, ReachedGoal(w, player, goal, 3))
	})

	t.Run("exact count not overlapping", func(t *testing.T) {
		w, player, goal := setup(3, Vec2{X: 1000})
		assert.False(t, ReachedGoal(w, player, goal, 3))
	})

	t.Run("missing goal", func(t *testing.T) {
		w, player, _ := setup(0, Vec2{})
		assert.False(t, ReachedGoal(w, player, NoEntity, 0))
	})
}

// =============================================================================
// Side Effect Tests
// =============================================================================

func TestApplySideEffect_Shrink(t *testing.T) {
	w := NewWorld()
	id := w.CreatePlayer(Vec2{}, testPlayerConfig())

	ApplySideEffect(w, id, EffectShrink, testEffects)

	assert.InDelta(t, 3*0.73, w.Sprite[id].Scale.X, 1e-9)
	assert.InDelta(t, 3*0.73, w.Sprite[id].Scale.Y, 1e-9)
	assert.InDelta(t, 16*0.73, w.Shape[id].HalfSize.X, 1e-9)
	assert.InDelta(t, 32*0.73, w.Shape[id].HalfSize.Y, 1e-9)
	assert.InDelta(t, 0.85, w.Player[id].JumpMultiplier, 1e-9)
	assert.Equal(t, 1.0, w.Player[id].SpeedMultiplier)
}

func TestApplySideEffect_CompoundsInCollectionOrder(t *testing.T) {
	w := NewWorld()
	id := w.CreatePlayer(Vec2{}, testPlayerConfig())

	for _, e := range []SideEffect{EffectShrink, EffectSpeed, EffectSlowness} {
		ApplySideEffect(w, id, e, testEffects)
	}

	assert.InDelta(t, 1.5*0.8, w.Player[id].SpeedMultiplier, 1e-9)
	assert.InDelta(t, 0.85, w.Player[id].JumpMultiplier, 1e-9)
}

func TestApplySideEffect_Unclamped(t *testing.T) {
	w := NewWorld()
	id := w.CreatePlayer(Vec2{}, testPlayerConfig())

	for i := 0; i < 40; i++ {
		ApplySideEffect(w, id, EffectSpeed, testEffects)
	}

	require.Greater(t, w.Player[id].SpeedMultiplier, 1e6)
}

func TestBelowFloor(t *testing.T) {
	w := NewWorld()
	id := w.CreatePlayer(Vec2{Y: -999}, testPlayerConfig())

	assert.False(t, BelowFloor(w, id, -1000))

	w.Position[id] = Position{Y: -1001}
	assert.True(t, BelowFloor(w, id, -1000))
	assert.False(t, BelowFloor(w, NoEntity, -1000))
}
