package system

import (
	"github.com/younwookim/expired/internal/ecs"
	"github.com/younwookim/expired/internal/infrastructure/config"
)

// PlayerController runs the player's fixed-step movement, pickup and goal
// checks, and its per-frame state machine.
type PlayerController struct {
	move   ecs.MoveConfig
	player config.PlayerConfig
	spawn  ecs.PlayerConfig
	floorY float64
	// OnStateChange is called after the animation strip was swapped
	OnStateChange func(id ecs.EntityID, from, to ecs.PlayerState)
}

// NewPlayerController creates a controller from the tuning
func NewPlayerController(t *config.Tuning) *PlayerController {
	p := t.Entities.Player
	return &PlayerController{
		move: ecs.MoveConfig{
			Speed:     t.Movement.Speed,
			JumpSpeed: t.Movement.JumpSpeed,
		},
		player: p,
		spawn: ecs.PlayerConfig{
			Size:        ecs.Vec2{X: p.Size.Width, Y: p.Size.Height},
			SpriteScale: t.Entities.SpriteScale,
			Gravity:     ecs.Vec2{Y: p.GravityY},
			FrameRate:   p.FPS,
			IdleFrames:  p.StripFrames(ecs.StateIdle.Strip()),
		},
		floorY: t.Physics.FloorY,
	}
}

// Spawn creates the player at pos
func (c *PlayerController) Spawn(w *ecs.World, pos ecs.Vec2) ecs.EntityID {
	return w.CreatePlayer(pos, c.spawn)
}

// FixedUpdate applies movement input, collects overlapping pills and checks
// the goal. Returns true when the level is completed on this tick.
func (c *PlayerController) FixedUpdate(w *ecs.World, id, goal ecs.EntityID, goalCount int, input ecs.MoveInput, effects *ecs.Queue[ecs.SideEffect]) bool {
	if id == ecs.NoEntity {
		return false
	}

	ecs.MovePlayer(w, id, input, c.move)
	ecs.CollectPills(w, id, effects)
	return ecs.ReachedGoal(w, id, goal, goalCount)
}

// FrameUpdate recomputes the player state from velocity and swaps the
// animation strip when it changed.
func (c *PlayerController) FrameUpdate(w *ecs.World, id ecs.EntityID) {
	if id == ecs.NoEntity {
		return
	}
	from := w.Player[id].State
	to, changed := ecs.TransitionPlayerState(w, id)
	if !changed {
		return
	}
	ecs.SelectAnimation(w, id, to, c.player.StripFrames(to.Strip()))
	if c.OnStateChange != nil {
		c.OnStateChange(id, from, to)
	}
}

// OutOfBounds reports whether the player fell below the world floor
func (c *PlayerController) OutOfBounds(w *ecs.World, id ecs.EntityID) bool {
	return ecs.BelowFloor(w, id, c.floorY)
}
