package system

import (
	"github.com/younwookim/expired/internal/ecs"
	"github.com/younwookim/expired/internal/infrastructure/config"
)

// QueueLevel pushes one spawn event per platform, pill, label and the
// patient of a level. Each pill gets a freshly rolled side effect.
// Returns the number of events pushed.
func QueueLevel(cfg *config.LevelConfig, sp *Spawner, fx *SideEffectSystem) int {
	n := 0
	for _, p := range cfg.Platforms {
		sp.PushPlatform(SpawnPlatform{Pos: point(p)})
		n++
	}
	for _, p := range cfg.Pills {
		sp.PushPill(SpawnPill{Pos: point(p), Effect: fx.Roll()})
		n++
	}
	sp.PushPatient(SpawnPatient{Pos: point(cfg.Patient)})
	n++
	for _, l := range cfg.Labels {
		sp.PushLabel(SpawnLabel{Pos: ecs.Vec2{X: l.X, Y: l.Y}, Text: l.Text})
		n++
	}
	return n
}

func point(p config.PointConfig) ecs.Vec2 {
	return ecs.Vec2{X: p.X, Y: p.Y}
}
