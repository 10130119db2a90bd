// Package physics is a small 2D world of circular bodies falling under a
// single vertical acceleration. It reports contact-begin pairs and pushes
// overlapping bodies apart when their collision masks ask for it.
package physics

import (
	"github.com/fchimpan/gh-color-switch/internal/game"
)

// Contact is a pair of bodies that started touching during a step.
type Contact struct {
	A game.EntityID
	B game.EntityID
}

type body struct {
	id        game.EntityID
	pos       game.Vec
	vel       game.Vec
	radius    float64
	category  game.Category
	contact   game.Category
	collision game.Category
	dynamic   bool
}

type pairKey struct {
	a, b game.EntityID
}

func keyOf(a, b game.EntityID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// World implements game.World. Gravity is given in game units and scaled by
// the number of field cells per unit.
type World struct {
	scale   float64
	gravity float64

	bodies   []*body // insertion order keeps contact order stable
	index    map[game.EntityID]*body
	touching map[pairKey]bool
}

var _ game.World = (*World)(nil)

func New(scale float64) *World {
	if scale <= 0 {
		scale = 1
	}
	return &World{
		scale:    scale,
		index:    map[game.EntityID]*body{},
		touching: map[pairKey]bool{},
	}
}

func (w *World) SetGravity(dy float64) { w.gravity = dy }

// Gravity returns the acceleration in field cells per second squared.
func (w *World) Gravity() float64 { return w.gravity * w.scale }

func (w *World) AttachStatic(id game.EntityID, pos game.Vec, radius float64, category game.Category) {
	w.add(&body{id: id, pos: pos, radius: radius, category: category})
}

func (w *World) AttachDynamic(id game.EntityID, pos game.Vec, radius float64, category, contact, collision game.Category) {
	w.add(&body{
		id:        id,
		pos:       pos,
		radius:    radius,
		category:  category,
		contact:   contact,
		collision: collision,
		dynamic:   true,
	})
}

func (w *World) add(b *body) {
	if _, ok := w.index[b.id]; ok {
		w.Remove(b.id)
	}
	w.bodies = append(w.bodies, b)
	w.index[b.id] = b
}

func (w *World) Remove(id game.EntityID) {
	if _, ok := w.index[id]; !ok {
		return
	}
	delete(w.index, id)
	out := w.bodies[:0]
	for _, b := range w.bodies {
		if b.id != id {
			out = append(out, b)
		}
	}
	for i := len(out); i < len(w.bodies); i++ {
		w.bodies[i] = nil
	}
	w.bodies = out
	for k := range w.touching {
		if k.a == id || k.b == id {
			delete(w.touching, k)
		}
	}
}

// Position reports where a body currently is.
func (w *World) Position(id game.EntityID) (game.Vec, bool) {
	b, ok := w.index[id]
	if !ok {
		return game.Vec{}, false
	}
	return b.pos, true
}

func (w *World) Len() int { return len(w.bodies) }

// Step advances the world by dt seconds and returns the pairs that began
// touching. Each pair is reported once until it separates.
func (w *World) Step(dt float64) []Contact {
	if dt <= 0 {
		return nil
	}

	g := w.Gravity()
	for _, b := range w.bodies {
		if !b.dynamic {
			continue
		}
		// Semi-implicit Euler.
		b.vel.Y += g * dt
		b.pos.X += b.vel.X * dt
		b.pos.Y += b.vel.Y * dt
	}

	var contacts []Contact
	for i, a := range w.bodies {
		for _, b := range w.bodies[i+1:] {
			if !a.dynamic && !b.dynamic {
				continue
			}
			overlap := overlapping(a, b)
			if overlap && (a.collision&b.category != 0 || b.collision&a.category != 0) {
				separate(a, b)
			}

			if a.contact&b.category == 0 && b.contact&a.category == 0 {
				continue
			}
			k := keyOf(a.id, b.id)
			switch {
			case overlap && !w.touching[k]:
				w.touching[k] = true
				contacts = append(contacts, Contact{A: a.id, B: b.id})
			case !overlap && w.touching[k]:
				delete(w.touching, k)
			}
		}
	}
	return contacts
}

func overlapping(a, b *body) bool {
	dx := a.pos.X - b.pos.X
	dy := a.pos.Y - b.pos.Y
	r := a.radius + b.radius
	return dx*dx+dy*dy <= r*r
}
