package ecs

// Vec2 is a 2D vector in world units.
// The world is Y-up: positive Y points toward the top of the screen.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Mul returns the component-wise product of v and o
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{X: v.X * o.X, Y: v.Y * o.Y} }

// Position is the center of an entity in world units
type Position = Vec2

// Velocity is measured in world units per second
type Velocity = Vec2

// Gravity is a per-tick acceleration impulse direction.
// It is scaled by the gravity scale, not by the tick delta.
type Gravity = Vec2

// Shape is an axis-aligned rectangle centered on the entity position.
//
// Shapes with Collide=false still take part in overlap tests (pickups, goal)
// but never resolve physically.
type Shape struct {
	HalfSize Vec2
	Collide  bool
}

// NewShape builds a shape from full width and height
func NewShape(width, height float64, collide bool) Shape {
	return Shape{HalfSize: Vec2{X: width / 2, Y: height / 2}, Collide: collide}
}

// Size returns the full width and height
func (s Shape) Size() Vec2 { return s.HalfSize.Scale(2) }

// Sprite is the presentation state emitted per entity.
// The renderer owns the atlas; the core only picks strip and frame.
type Sprite struct {
	Scale Vec2
	FlipX bool
	Strip string
	Index int
}

// Animation advances a sprite strip at a fixed frame rate.
// Timer accumulates wall-clock seconds; the timer repeats.
type Animation struct {
	FrameDuration float64 // seconds per frame
	Length        int     // frames in the current strip
	Timer         float64
}

// Tick advances the timer by dt and reports how many frames elapsed
func (a *Animation) Tick(dt float64) int {
	if a.FrameDuration <= 0 {
		return 0
	}
	a.Timer += dt
	frames := 0
	for a.Timer >= a.FrameDuration {
		a.Timer -= a.FrameDuration
		frames++
	}
	return frames
}

// PlayerState is the animation/movement state of the player
type PlayerState int

const (
	StateIdle PlayerState = iota
	StateRunning
	StateJumping
	StateFalling
)

// String returns the state name
func (s PlayerState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateJumping:
		return "Jumping"
	case StateFalling:
		return "Falling"
	default:
		return "Unknown"
	}
}

// Strip returns the sprite strip name for the state
func (s PlayerState) Strip() string {
	switch s {
	case StateRunning:
		return "player_run"
	case StateJumping:
		return "player_jump"
	case StateFalling:
		return "player_fall"
	default:
		return "player_idle"
	}
}

// Player holds player-specific data
type Player struct {
	Collected       int     // pills collected this level
	JumpMultiplier  float64 // >0, compounds with shrink
	SpeedMultiplier float64 // >0, compounds with speed/slowness
	State           PlayerState
}

// SideEffect is the effect a pill applies when collected
type SideEffect int

const (
	EffectShrink SideEffect = iota
	EffectSpeed
	EffectSlowness
)

// SideEffectCount is the number of SideEffect variants
const SideEffectCount = 3

// String returns the effect name
func (e SideEffect) String() string {
	switch e {
	case EffectShrink:
		return "Shrink"
	case EffectSpeed:
		return "Speed"
	case EffectSlowness:
		return "Slowness"
	default:
		return "Unknown"
	}
}

// Pill is a collectible medicine with a side effect fixed at spawn
type Pill struct {
	Effect SideEffect
}

// Label is a floating world-space text
type Label struct {
	Text string
}

// Kind identifies the lifecycle group an entity belongs to
type Kind int

const (
	KindPlayer Kind = iota
	KindPlatform
	KindPill
	KindPatient
	KindLabel
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlatform:
		return "platform"
	case KindPill:
		return "pill"
	case KindPatient:
		return "patient"
	case KindLabel:
		return "label"
	default:
		return "unknown"
	}
}
