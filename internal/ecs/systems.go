package ecs

import (
	"math"
)

// ApplyGravity adds gravity * scale to the velocity of every entity with
// both Gravity and Velocity. Gravity is a per-tick impulse: it is not
// multiplied by the tick delta.
func ApplyGravity(w *World, scale float64) {
	for _, id := range sortedIDs(w.Gravity) {
		vel, ok := w.Velocity[id]
		if !ok {
			continue
		}
		w.Velocity[id] = vel.Add(w.Gravity[id].Scale(scale))
	}
}

// ApplyVelocity translates every entity with Velocity and Position by
// velocity * dt. Must run after ApplyGravity in the same tick.
func ApplyVelocity(w *World, dt float64) {
	for _, id := range sortedIDs(w.Velocity) {
		pos, ok := w.Position[id]
		if !ok {
			continue
		}
		w.Position[id] = pos.Add(w.Velocity[id].Scale(dt))
	}
}

// Contact is the side of a static rectangle a movable rectangle touches
type Contact int

const (
	// ContactTop: the movable rests on top of the static. Containment also
	// resolves as ContactTop.
	ContactTop Contact = iota
	ContactBottom
	ContactLeft
	ContactRight
)

// String returns the contact side name
func (c Contact) String() string {
	switch c {
	case ContactTop:
		return "Top"
	case ContactBottom:
		return "Bottom"
	case ContactLeft:
		return "Left"
	case ContactRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Overlaps reports whether two centered rectangles overlap.
// Touching edges do not overlap.
func Overlaps(aPos, aHalf, bPos, bHalf Vec2) bool {
	aMin, aMax := aPos.Sub(aHalf), aPos.Add(aHalf)
	bMin, bMax := bPos.Sub(bHalf), bPos.Add(bHalf)
	return aMin.X < bMax.X && aMax.X > bMin.X && aMin.Y < bMax.Y && aMax.Y > bMin.Y
}

// Collide classifies the overlap of movable rectangle a against static
// rectangle b. The axis with the smaller penetration depth wins; ties and
// containment on both axes resolve vertically, and vertical containment
// resolves as ContactTop.
func Collide(aPos, aHalf, bPos, bHalf Vec2) (Contact, bool) {
	if !Overlaps(aPos, aHalf, bPos, bHalf) {
		return 0, false
	}

	aMin, aMax := aPos.Sub(aHalf), aPos.Add(aHalf)
	bMin, bMax := bPos.Sub(bHalf), bPos.Add(bHalf)

	xContact, xDepth := ContactTop, math.Inf(1)
	switch {
	case aMin.X < bMin.X && aMax.X > bMin.X && aMax.X < bMax.X:
		xContact, xDepth = ContactLeft, aMax.X-bMin.X
	case aMin.X > bMin.X && aMin.X < bMax.X && aMax.X > bMax.X:
		xContact, xDepth = ContactRight, bMax.X-aMin.X
	}

	yContact, yDepth := ContactTop, math.Inf(1)
	switch {
	case aMin.Y < bMin.Y && aMax.Y > bMin.Y && aMax.Y < bMax.Y:
		yContact, yDepth = ContactBottom, aMax.Y-bMin.Y
	case aMin.Y > bMin.Y && aMin.Y < bMax.Y && aMax.Y > bMax.Y:
		yContact, yDepth = ContactTop, bMax.Y-aMin.Y
	}

	if yDepth <= xDepth {
		return yContact, true
	}
	return xContact, true
}

// Resolve snaps a movable rectangle out of a static one along the contact
// axis and zeroes velocity on that axis only.
func Resolve(contact Contact, pos *Position, vel *Velocity, half Vec2, bPos, bHalf Vec2) {
	switch contact {
	case ContactTop:
		vel.Y = 0
		pos.Y = bPos.Y + bHalf.Y + half.Y
	case ContactBottom:
		vel.Y = 0
		pos.Y = bPos.Y - bHalf.Y - half.Y
	case ContactLeft:
		vel.X = 0
		pos.X = bPos.X - bHalf.X - half.X
	case ContactRight:
		vel.X = 0
		pos.X = bPos.X + bHalf.X + half.X
	}
}

// Hit records one resolved movable/static pair
type Hit struct {
	Movable EntityID
	Static  EntityID
	Contact Contact
}

// ResolveCollisions resolves every colliding movable entity (Velocity +
// Shape) against every static entity (Shape, no Velocity). Pairs are
// visited in spawn order and each resolution sees the position written by
// the previous one, so the last static wins.
func ResolveCollisions(w *World) []Hit {
	var hits []Hit

	statics := make([]EntityID, 0, len(w.Shape))
	for _, id := range sortedIDs(w.Shape) {
		if _, moving := w.Velocity[id]; !moving {
			statics = append(statics, id)
		}
	}

	for _, id := range sortedIDs(w.Velocity) {
		shape, ok := w.Shape[id]
		if !ok || !shape.Collide {
			continue
		}
		pos := w.Position[id]
		vel := w.Velocity[id]

		for _, sid := range statics {
			sShape := w.Shape[sid]
			if !sShape.Collide {
				continue
			}
			sPos := w.Position[sid]

			contact, hit := Collide(pos, shape.HalfSize, sPos, sShape.HalfSize)
			if !hit {
				continue
			}
			Resolve(contact, &pos, &vel, shape.HalfSize, sPos, sShape.HalfSize)
			hits = append(hits, Hit{Movable: id, Static: sid, Contact: contact})
		}

		w.Position[id] = pos
		w.Velocity[id] = vel
	}

	return hits
}

// AdvanceAnimations ticks every animation timer and steps the sprite frame
// index, wrapping at the strip length.
func AdvanceAnimations(w *World, dt float64) {
	for _, id := range sortedIDs(w.Animation) {
		anim := w.Animation[id]
		frames := anim.Tick(dt)
		w.Animation[id] = anim

		if frames == 0 || anim.Length <= 0 {
			continue
		}
		sprite, ok := w.Sprite[id]
		if !ok {
			continue
		}
		sprite.Index = (sprite.Index + frames) % anim.Length
		w.Sprite[id] = sprite
	}
}
