package ecs

import (
	"maps"
	"slices"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// NoEntity is the zero EntityID; no live entity ever has it
const NoEntity EntityID = 0

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Position  map[EntityID]Position
	Velocity  map[EntityID]Velocity
	Gravity   map[EntityID]Gravity
	Shape     map[EntityID]Shape
	Sprite    map[EntityID]Sprite
	Animation map[EntityID]Animation
	Player    map[EntityID]Player
	Pill      map[EntityID]Pill
	Label     map[EntityID]Label

	// Tags
	IsPlayer   map[EntityID]struct{}
	IsPlatform map[EntityID]struct{}
	IsPill     map[EntityID]struct{}
	IsPatient  map[EntityID]struct{}
	IsLabel    map[EntityID]struct{}
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:     1, // 0 is "nil"
		Position:   make(map[EntityID]Position),
		Velocity:   make(map[EntityID]Velocity),
		Gravity:    make(map[EntityID]Gravity),
		Shape:      make(map[EntityID]Shape),
		Sprite:     make(map[EntityID]Sprite),
		Animation:  make(map[EntityID]Animation),
		Player:     make(map[EntityID]Player),
		Pill:       make(map[EntityID]Pill),
		Label:      make(map[EntityID]Label),
		IsPlayer:   make(map[EntityID]struct{}),
		IsPlatform: make(map[EntityID]struct{}),
		IsPill:     make(map[EntityID]struct{}),
		IsPatient:  make(map[EntityID]struct{}),
		IsLabel:    make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Position, id)
	delete(w.Velocity, id)
	delete(w.Gravity, id)
	delete(w.Shape, id)
	delete(w.Sprite, id)
	delete(w.Animation, id)
	delete(w.Player, id)
	delete(w.Pill, id)
	delete(w.Label, id)
	delete(w.IsPlayer, id)
	delete(w.IsPlatform, id)
	delete(w.IsPill, id)
	delete(w.IsPatient, id)
	delete(w.IsLabel, id)
}

// Exists checks if an entity has Position component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Position[id]
	return ok
}

// tagFor returns the tag map that marks entities of a kind
func (w *World) tagFor(kind Kind) map[EntityID]struct{} {
	switch kind {
	case KindPlayer:
		return w.IsPlayer
	case KindPlatform:
		return w.IsPlatform
	case KindPill:
		return w.IsPill
	case KindPatient:
		return w.IsPatient
	case KindLabel:
		return w.IsLabel
	default:
		return nil
	}
}

// Entities returns the IDs of every entity of a kind in spawn order
func (w *World) Entities(kind Kind) []EntityID {
	return sortedIDs(w.tagFor(kind))
}

// Count returns the number of live entities of a kind
func (w *World) Count(kind Kind) int {
	return len(w.tagFor(kind))
}

// DespawnKind removes every entity tagged with kind, regardless of how it
// was created. Returns the number of entities removed.
func (w *World) DespawnKind(kind Kind) int {
	ids := w.Entities(kind)
	for _, id := range ids {
		w.DestroyEntity(id)
	}
	return len(ids)
}

// sortedIDs returns map keys in ascending order. IDs are never recycled,
// so ascending order is spawn order.
func sortedIDs[V any](m map[EntityID]V) []EntityID {
	return slices.Sorted(maps.Keys(m))
}

// PlayerConfig holds configuration for creating the player
type PlayerConfig struct {
	Size        Vec2 // full collision extents
	SpriteScale float64
	Gravity     Vec2
	FrameRate   float64 // animation frames per second
	IdleFrames  int
}

// CreatePlayer creates the player entity at rest
func (w *World) CreatePlayer(pos Vec2, cfg PlayerConfig) EntityID {
	id := w.NewEntity()

	w.Position[id] = pos
	w.Velocity[id] = Velocity{}
	w.Gravity[id] = cfg.Gravity
	w.Shape[id] = NewShape(cfg.Size.X, cfg.Size.Y, true)
	w.Sprite[id] = Sprite{
		Scale: Vec2{X: cfg.SpriteScale, Y: cfg.SpriteScale},
		Strip: StateIdle.Strip(),
	}
	w.Animation[id] = Animation{FrameDuration: frameDuration(cfg.FrameRate), Length: cfg.IdleFrames}
	w.Player[id] = Player{
		JumpMultiplier:  1,
		SpeedMultiplier: 1,
		State:           StateIdle,
	}
	w.IsPlayer[id] = struct{}{}

	return id
}

// PlatformConfig holds configuration for creating a platform
type PlatformConfig struct {
	Size        Vec2
	SpriteScale float64
}

// CreatePlatform creates a static, colliding platform
func (w *World) CreatePlatform(pos Vec2, cfg PlatformConfig) EntityID {
	id := w.NewEntity()

	w.Position[id] = pos
	w.Shape[id] = NewShape(cfg.Size.X, cfg.Size.Y, true)
	w.Sprite[id] = Sprite{Scale: Vec2{X: cfg.SpriteScale, Y: cfg.SpriteScale}, Strip: "platform"}
	w.IsPlatform[id] = struct{}{}

	return id
}

// PillConfig holds configuration for creating a pill
type PillConfig struct {
	Size        Vec2
	SpriteScale float64
	FrameRate   float64
	Frames      int
}

// CreatePill creates a non-colliding pickup carrying a pre-chosen effect
func (w *World) CreatePill(pos Vec2, effect SideEffect, cfg PillConfig) EntityID {
	id := w.NewEntity()

	w.Position[id] = pos
	w.Shape[id] = NewShape(cfg.Size.X, cfg.Size.Y, false)
	w.Sprite[id] = Sprite{Scale: Vec2{X: cfg.SpriteScale, Y: cfg.SpriteScale}, Strip: "pill"}
	w.Animation[id] = Animation{FrameDuration: frameDuration(cfg.FrameRate), Length: cfg.Frames}
	w.Pill[id] = Pill{Effect: effect}
	w.IsPill[id] = struct{}{}

	return id
}

// PatientConfig holds configuration for creating the goal target
type PatientConfig struct {
	Size        Vec2
	SpriteScale float64
	FrameRate   float64
	Frames      int
}

// CreatePatient creates the non-colliding goal target
func (w *World) CreatePatient(pos Vec2, cfg PatientConfig) EntityID {
	id := w.NewEntity()

	w.Position[id] = pos
	w.Shape[id] = NewShape(cfg.Size.X, cfg.Size.Y, false)
	w.Sprite[id] = Sprite{Scale: Vec2{X: cfg.SpriteScale, Y: cfg.SpriteScale}, Strip: "patient"}
	w.Animation[id] = Animation{FrameDuration: frameDuration(cfg.FrameRate), Length: cfg.Frames}
	w.IsPatient[id] = struct{}{}

	return id
}

// CreateLabel creates a floating text label
func (w *World) CreateLabel(pos Vec2, text string) EntityID {
	id := w.NewEntity()

	w.Position[id] = pos
	w.Label[id] = Label{Text: text}
	w.IsLabel[id] = struct{}{}

	return id
}

func frameDuration(fps float64) float64 {
	if fps <= 0 {
		return 0
	}
	return 1 / fps
}
