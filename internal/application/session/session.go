// Package session runs one level: it owns the world, the player and goal
// references, and schedules fixed-step and per-frame systems.
package session

import (
	"log"

	"github.com/younwookim/expired/internal/application/system"
	"github.com/younwookim/expired/internal/ecs"
	"github.com/younwookim/expired/internal/infrastructure/config"
)

// Outcome is the terminal result of a level session
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeGameOver
	OutcomeLevelCompleted
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeGameOver:
		return "GameOver"
	case OutcomeLevelCompleted:
		return "LevelCompleted"
	default:
		return "Unknown"
	}
}

// Cause explains a GameOver outcome
type Cause int

const (
	CauseNone Cause = iota
	CauseTimeout
	CauseOutOfBounds
)

// String returns the cause name
func (c Cause) String() string {
	switch c {
	case CauseTimeout:
		return "timeout"
	case CauseOutOfBounds:
		return "out of bounds"
	default:
		return "none"
	}
}

// Session is the level-session context
type Session struct {
	tuning *config.Tuning

	world      *ecs.World
	physics    *system.PhysicsSystem
	spawner    *system.Spawner
	effects    *system.SideEffectSystem
	controller *system.PlayerController
	timer      *system.Countdown
	camera     system.Camera

	levelNum int
	level    *config.LevelConfig
	player   ecs.EntityID
	goal     ecs.EntityID

	accumulator float64
	pendingJump bool
	ticks       int
	frames      int
	active      bool
	outcome     Outcome
	cause       Cause
	collected   int // snapshot taken when the session ends
}

// New creates a session. seed drives side-effect rolls.
func New(tuning *config.Tuning, seed int64) *Session {
	return &Session{
		tuning:     tuning,
		world:      ecs.NewWorld(),
		physics:    system.NewPhysicsSystem(&tuning.Physics),
		spawner:    system.NewSpawner(&tuning.Entities),
		effects:    system.NewSideEffectSystem(&tuning.Effects, seed),
		controller: system.NewPlayerController(tuning),
		timer:      system.NewCountdown(0),
	}
}

// Enter starts level n from a validated level snapshot. The player is
// created immediately; every other entity is queued and spawned by the
// entry pass before the first tick.
func (s *Session) Enter(n int, level *config.LevelConfig) {
	if s.active {
		s.Exit()
	}

	s.levelNum = n
	s.level = level
	s.accumulator = 0
	s.pendingJump = false
	s.ticks = 0
	s.frames = 0
	s.outcome = OutcomeNone
	s.cause = CauseNone
	s.collected = 0
	s.timer.Reset(level.TimeLimit)

	s.player = s.controller.Spawn(s.world, ecs.Vec2{X: level.PlayerSpawn.X, Y: level.PlayerSpawn.Y})
	system.QueueLevel(level, s.spawner, s.effects)
	s.drainSpawns()
	s.camera.Follow(s.world, s.player)
	s.active = true

	log.Printf("Entered level %d %q (goal %d, %.0fs)", n, level.Name, level.Goal, level.TimeLimit)
}

// Update advances the session by one frame of frameDt seconds.
// Fixed ticks run from an accumulator, then the per-frame systems run.
// Once a terminal outcome is reached the session stops and keeps reporting it.
func (s *Session) Update(frameDt float64, in system.InputState) Outcome {
	if !s.active {
		return s.outcome
	}
	s.frames++

	s.pendingJump = s.pendingJump || in.JumpPressed
	s.accumulator += frameDt

	dt := s.physics.DT()
	maxTicks := s.tuning.Physics.MaxTicksPerFrame
	ticks := 0
	for s.accumulator >= dt {
		if maxTicks > 0 && ticks >= maxTicks {
			s.accumulator = 0
			break
		}
		s.accumulator -= dt
		ticks++
		if s.fixedTick(in) {
			s.finish(OutcomeLevelCompleted, CauseNone)
			return s.outcome
		}
	}

	s.frameUpdate(frameDt, in)
	return s.outcome
}

// fixedTick runs one physics step followed by the player's fixed-step
// systems. Returns true when the goal is reached.
func (s *Session) fixedTick(in system.InputState) bool {
	s.ticks++
	s.physics.Step(s.world)

	move := in.Move(s.pendingJump)
	s.pendingJump = false
	return s.controller.FixedUpdate(s.world, s.player, s.goal, s.level.Goal, move, s.effects.Queue())
}

func (s *Session) frameUpdate(frameDt float64, in system.InputState) {
	s.controller.FrameUpdate(s.world, s.player)
	ecs.AdvanceAnimations(s.world, frameDt)
	s.camera.Follow(s.world, s.player)

	if s.timer.Tick(frameDt) {
		s.finish(OutcomeGameOver, CauseTimeout)
		return
	}

	if in.DebugPill && s.player != ecs.NoEntity {
		s.spawner.PushPill(system.SpawnPill{Pos: s.world.Position[s.player], Effect: s.effects.Roll()})
	}
	s.drainSpawns()
	s.effects.Drain(s.world, s.player)

	if s.controller.OutOfBounds(s.world, s.player) {
		s.finish(OutcomeGameOver, CauseOutOfBounds)
	}
}

func (s *Session) drainSpawns() {
	res := s.spawner.Drain(s.world)
	if res.Patient != ecs.NoEntity {
		s.goal = res.Patient
	}
}

func (s *Session) finish(outcome Outcome, cause Cause) {
	s.outcome = outcome
	s.cause = cause
	s.collected = s.Collected()
	if cause != CauseNone {
		log.Printf("Level %d ended: %s (%s) after %d ticks", s.levelNum, outcome, cause, s.ticks)
	} else {
		log.Printf("Level %d ended: %s after %d ticks", s.levelNum, outcome, s.ticks)
	}
	s.Exit()
}

// Exit despawns every level entity and the player, and drops pending
// events. Safe to call more than once.
func (s *Session) Exit() {
	if !s.active {
		return
	}
	removed := s.spawner.DespawnAll(s.world)
	removed += s.world.DespawnKind(ecs.KindPlayer)
	s.effects.Clear()
	s.player = ecs.NoEntity
	s.goal = ecs.NoEntity
	s.pendingJump = false
	s.active = false

	log.Printf("Exited level %d (%d entities removed)", s.levelNum, removed)
}

// OnStateChange registers the animation swap callback
func (s *Session) OnStateChange(fn func(id ecs.EntityID, from, to ecs.PlayerState)) {
	s.controller.OnStateChange = fn
}

func (s *Session) World() *ecs.World          { return s.world }
func (s *Session) Player() ecs.EntityID       { return s.player }
func (s *Session) Goal() ecs.EntityID         { return s.goal }
func (s *Session) Camera() *system.Camera     { return &s.camera }
func (s *Session) Level() *config.LevelConfig { return s.level }
func (s *Session) LevelNumber() int           { return s.levelNum }
func (s *Session) Active() bool               { return s.active }
func (s *Session) Outcome() Outcome           { return s.outcome }
func (s *Session) Cause() Cause               { return s.cause }
func (s *Session) Ticks() int                 { return s.ticks }
func (s *Session) Frames() int                { return s.frames }
func (s *Session) Remaining() float64         { return s.timer.Remaining() }

// Collected returns the player's pill count. After the session ended it
// returns the count at the moment it ended.
func (s *Session) Collected() int {
	if !s.active {
		return s.collected
	}
	return s.world.Player[s.player].Collected
}
