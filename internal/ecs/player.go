package ecs

// DeriveState maps a velocity to a player state.
// Vertical motion wins over horizontal motion.
func DeriveState(v Velocity) PlayerState {
	switch {
	case v.Y > 0:
		return StateJumping
	case v.Y < 0:
		return StateFalling
	case v.X != 0:
		return StateRunning
	default:
		return StateIdle
	}
}

// MoveInput holds the discrete movement signals for one fixed tick
type MoveInput struct {
	Left, Right bool
	JumpPressed bool // just pressed this frame
}

// MoveConfig holds base movement speeds in world units per second
type MoveConfig struct {
	Speed     float64
	JumpSpeed float64
}

// MovePlayer sets horizontal velocity from input and starts a jump when the
// player is grounded (Idle or Running). No-op when the player is absent.
func MovePlayer(w *World, id EntityID, input MoveInput, cfg MoveConfig) {
	if id == NoEntity {
		return
	}
	player, ok := w.Player[id]
	if !ok {
		return
	}

	vel := w.Velocity[id]
	sprite := w.Sprite[id]

	dir := 0
	if input.Right {
		dir++
	}
	if input.Left {
		dir--
	}
	if dir < 0 {
		sprite.FlipX = true
	} else if dir > 0 {
		sprite.FlipX = false
	}

	vel.X = float64(dir) * cfg.Speed * player.SpeedMultiplier

	if input.JumpPressed && (player.State == StateIdle || player.State == StateRunning) {
		vel.Y = cfg.JumpSpeed * player.JumpMultiplier
	}

	w.Velocity[id] = vel
	w.Sprite[id] = sprite
}

// CollectPills despawns every pill overlapping the player, counts it and
// pushes its side effect onto effects in the same step.
// Returns the number of pills collected.
func CollectPills(w *World, id EntityID, effects *Queue[SideEffect]) int {
	if id == NoEntity {
		return 0
	}
	player, ok := w.Player[id]
	if !ok {
		return 0
	}

	pos := w.Position[id]
	shape := w.Shape[id]

	collected := 0
	for _, pid := range sortedIDs(w.IsPill) {
		pShape := w.Shape[pid]
		if !Overlaps(pos, shape.HalfSize, w.Position[pid], pShape.HalfSize) {
			continue
		}
		effect := w.Pill[pid].Effect
		w.DestroyEntity(pid)
		player.Collected++
		effects.Push(effect)
		collected++
	}

	w.Player[id] = player
	return collected
}

// ReachedGoal reports whether the player overlaps the goal target while
// holding exactly goalCount pills. Missing player or goal yields false.
func ReachedGoal(w *World, playerID, goalID EntityID, goalCount int) bool {
	if playerID == NoEntity || goalID == NoEntity {
		return false
	}
	player, ok := w.Player[playerID]
	if !ok || !w.Exists(goalID) {
		return false
	}
	if player.Collected != goalCount {
		return false
	}
	return Overlaps(w.Position[playerID], w.Shape[playerID].HalfSize,
		w.Position[goalID], w.Shape[goalID].HalfSize)
}

// EffectConfig holds the multiplicative factors of each side effect
type EffectConfig struct {
	ShrinkFactor     float64 // sprite scale and collision extents
	ShrinkJumpFactor float64
	SpeedFactor      float64
	SlownessFactor   float64
}

// ApplySideEffect mutates the player's physical and control parameters.
// Factors compound; nothing is clamped.
func ApplySideEffect(w *World, id EntityID, effect SideEffect, cfg EffectConfig) {
	if id == NoEntity {
		return
	}
	player, ok := w.Player[id]
	if !ok {
		return
	}

	switch effect {
	case EffectShrink:
		sprite := w.Sprite[id]
		sprite.Scale = sprite.Scale.Scale(cfg.ShrinkFactor)
		w.Sprite[id] = sprite

		shape := w.Shape[id]
		shape.HalfSize = shape.HalfSize.Scale(cfg.ShrinkFactor)
		w.Shape[id] = shape

		player.JumpMultiplier *= cfg.ShrinkJumpFactor
	case EffectSpeed:
		player.SpeedMultiplier *= cfg.SpeedFactor
	case EffectSlowness:
		player.SpeedMultiplier *= cfg.SlownessFactor
	}

	w.Player[id] = player
}

// TransitionPlayerState recomputes the player state from velocity.
// Returns the new state and whether it differs from the stored one.
func TransitionPlayerState(w *World, id EntityID) (PlayerState, bool) {
	if id == NoEntity {
		return StateIdle, false
	}
	player, ok := w.Player[id]
	if !ok {
		return StateIdle, false
	}

	next := DeriveState(w.Velocity[id])
	if next == player.State {
		return next, false
	}
	player.State = next
	w.Player[id] = player
	return next, true
}

// SelectAnimation swaps the player's sprite strip and restarts it at frame 0
func SelectAnimation(w *World, id EntityID, state PlayerState, length int) {
	sprite, ok := w.Sprite[id]
	if !ok {
		return
	}
	sprite.Strip = state.Strip()
	sprite.Index = 0
	w.Sprite[id] = sprite

	anim := w.Animation[id]
	anim.Length = length
	anim.Timer = 0
	w.Animation[id] = anim
}

// BelowFloor reports whether the player's center fell below floorY
func BelowFloor(w *World, id EntityID, floorY float64) bool {
	if id == NoEntity {
		return false
	}
	pos, ok := w.Position[id]
	if !ok {
		return false
	}
	return pos.Y < floorY
}
