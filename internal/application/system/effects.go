package system

import (
	"math/rand"

	"github.com/younwookim/expired/internal/ecs"
	"github.com/younwookim/expired/internal/infrastructure/config"
)

// SideEffectSystem owns the side-effect queue and the RNG that assigns
// effects to pills.
type SideEffectSystem struct {
	queue ecs.Queue[ecs.SideEffect]
	rng   *rand.Rand
	cfg   ecs.EffectConfig
}

// NewSideEffectSystem creates a side-effect system with a seeded RNG
func NewSideEffectSystem(cfg *config.EffectsConfig, seed int64) *SideEffectSystem {
	return &SideEffectSystem{
		rng: rand.New(rand.NewSource(seed)),
		cfg: ecs.EffectConfig{
			ShrinkFactor:     cfg.Shrink,
			ShrinkJumpFactor: cfg.ShrinkJump,
			SpeedFactor:      cfg.Speed,
			SlownessFactor:   cfg.Slowness,
		},
	}
}

// Roll picks a side effect uniformly at random
func (s *SideEffectSystem) Roll() ecs.SideEffect {
	return ecs.SideEffect(s.rng.Intn(ecs.SideEffectCount))
}

// Queue returns the queue pickups dispatch into
func (s *SideEffectSystem) Queue() *ecs.Queue[ecs.SideEffect] {
	return &s.queue
}

// Drain applies each pending effect to the player exactly once, in dispatch
// order. Effects are dropped when the player is absent.
func (s *SideEffectSystem) Drain(w *ecs.World, player ecs.EntityID) []ecs.SideEffect {
	effects := s.queue.Drain()
	for _, e := range effects {
		ecs.ApplySideEffect(w, player, e, s.cfg)
	}
	return effects
}

// Clear drops pending effects
func (s *SideEffectSystem) Clear() {
	s.queue.Clear()
}
