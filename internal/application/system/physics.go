package system

import (
	"github.com/younwookim/expired/internal/ecs"
	"github.com/younwookim/expired/internal/infrastructure/config"
)

// PhysicsSystem runs the fixed-step integrator and collision resolver
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// DT returns the fixed tick delta in seconds
func (s *PhysicsSystem) DT() float64 {
	return s.config.FixedDT()
}

// Step advances the world by one fixed tick.
// Gravity is applied before velocity, and velocity before collision
// resolution; the returned hits are in resolution order.
func (s *PhysicsSystem) Step(w *ecs.World) []ecs.Hit {
	ecs.ApplyGravity(w, s.config.GravityScale)
	ecs.ApplyVelocity(w, s.config.FixedDT())
	return ecs.ResolveCollisions(w)
}
