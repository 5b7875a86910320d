package system

import "github.com/younwookim/expired/internal/ecs"

// Camera tracks the player in world space.
// It snaps to the target every frame.
type Camera struct {
	Pos ecs.Vec2
}

// Follow centers the camera on the target. No-op when the target is absent.
func (c *Camera) Follow(w *ecs.World, target ecs.EntityID) {
	if target == ecs.NoEntity {
		return
	}
	if pos, ok := w.Position[target]; ok {
		c.Pos = pos
	}
}

// WorldToScreen converts a world point (Y-up) to screen pixels (Y-down)
// for a screen of the given size centered on the camera.
func (c *Camera) WorldToScreen(p ecs.Vec2, screenW, screenH int) (float64, float64) {
	x := p.X - c.Pos.X + float64(screenW)/2
	y := -(p.Y - c.Pos.Y) + float64(screenH)/2
	return x, y
}

// Visible reports whether a centered rectangle intersects the screen
func (c *Camera) Visible(p, half ecs.Vec2, screenW, screenH int) bool {
	x, y := c.WorldToScreen(p, screenW, screenH)
	return x+half.X >= 0 && x-half.X <= float64(screenW) &&
		y+half.Y >= 0 && y-half.Y <= float64(screenH)
}
