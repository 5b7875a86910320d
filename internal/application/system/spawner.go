package system

import (
	"github.com/younwookim/expired/internal/ecs"
	"github.com/younwookim/expired/internal/infrastructure/config"
)

// SpawnPlatform requests a static platform
type SpawnPlatform struct {
	Pos ecs.Vec2
}

// SpawnPill requests a pill carrying a pre-rolled side effect
type SpawnPill struct {
	Pos    ecs.Vec2
	Effect ecs.SideEffect
}

// SpawnPatient requests the goal target
type SpawnPatient struct {
	Pos ecs.Vec2
}

// SpawnLabel requests a floating text label
type SpawnLabel struct {
	Pos  ecs.Vec2
	Text string
}

// SpawnResult summarizes one drain pass
type SpawnResult struct {
	Spawned int
	// Patient is the goal target spawned in this pass, if any
	Patient ecs.EntityID
}

// Spawner owns one spawn queue per dynamic kind. Events pushed during a
// frame become entities at the next Drain.
type Spawner struct {
	platforms ecs.Queue[SpawnPlatform]
	pills     ecs.Queue[SpawnPill]
	patients  ecs.Queue[SpawnPatient]
	labels    ecs.Queue[SpawnLabel]

	platformCfg ecs.PlatformConfig
	pillCfg     ecs.PillConfig
	patientCfg  ecs.PatientConfig
}

// NewSpawner creates a spawner using the configured entity sizes
func NewSpawner(cfg *config.EntitiesConfig) *Spawner {
	return &Spawner{
		platformCfg: ecs.PlatformConfig{
			Size:        ecs.Vec2{X: cfg.Platform.Width, Y: cfg.Platform.Height},
			SpriteScale: cfg.SpriteScale,
		},
		pillCfg: ecs.PillConfig{
			Size:        ecs.Vec2{X: cfg.Pill.Size.Width, Y: cfg.Pill.Size.Height},
			SpriteScale: cfg.SpriteScale,
			FrameRate:   cfg.Pill.Animation.FPS,
			Frames:      cfg.Pill.Animation.Frames,
		},
		patientCfg: ecs.PatientConfig{
			Size:        ecs.Vec2{X: cfg.Patient.Size.Width, Y: cfg.Patient.Size.Height},
			SpriteScale: cfg.SpriteScale,
			FrameRate:   cfg.Patient.Animation.FPS,
			Frames:      cfg.Patient.Animation.Frames,
		},
	}
}

func (s *Spawner) PushPlatform(evt SpawnPlatform) { s.platforms.Push(evt) }
func (s *Spawner) PushPill(evt SpawnPill)         { s.pills.Push(evt) }
func (s *Spawner) PushPatient(evt SpawnPatient)   { s.patients.Push(evt) }
func (s *Spawner) PushLabel(evt SpawnLabel)       { s.labels.Push(evt) }

// Pending returns the number of queued spawn events across all kinds
func (s *Spawner) Pending() int {
	return s.platforms.Len() + s.pills.Len() + s.patients.Len() + s.labels.Len()
}

// Drain consumes every queued event, creating exactly one entity per event.
// Kinds are drained in a fixed order: platforms, pills, patient, labels.
func (s *Spawner) Drain(w *ecs.World) SpawnResult {
	var res SpawnResult

	for _, evt := range s.platforms.Drain() {
		w.CreatePlatform(evt.Pos, s.platformCfg)
		res.Spawned++
	}
	for _, evt := range s.pills.Drain() {
		w.CreatePill(evt.Pos, evt.Effect, s.pillCfg)
		res.Spawned++
	}
	for _, evt := range s.patients.Drain() {
		res.Patient = w.CreatePatient(evt.Pos, s.patientCfg)
		res.Spawned++
	}
	for _, evt := range s.labels.Drain() {
		w.CreateLabel(evt.Pos, evt.Text)
		res.Spawned++
	}

	return res
}

// DespawnAll removes every platform, pill, patient and label regardless of
// how it was created, and drops events that were never drained.
// Returns the number of entities removed.
func (s *Spawner) DespawnAll(w *ecs.World) int {
	s.platforms.Clear()
	s.pills.Clear()
	s.patients.Clear()
	s.labels.Clear()

	removed := 0
	for _, kind := range []ecs.Kind{ecs.KindPlatform, ecs.KindPill, ecs.KindPatient, ecs.KindLabel} {
		removed += w.DespawnKind(kind)
	}
	return removed
}
