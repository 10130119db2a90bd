package physics

import "math"

// separate pushes the dynamic body of the pair out of the other along the
// line between centers and stops it. Two dynamic bodies share the push.
func separate(a, b *body) {
	dx := a.pos.X - b.pos.X
	dy := a.pos.Y - b.pos.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		// Concentric; push straight up.
		dx, dy, dist = 0, 1, 1
	}
	depth := a.radius + b.radius - dist
	if depth <= 0 {
		return
	}
	nx, ny := dx/dist, dy/dist

	switch {
	case a.dynamic && b.dynamic:
		a.pos.X += nx * depth / 2
		a.pos.Y += ny * depth / 2
		b.pos.X -= nx * depth / 2
		b.pos.Y -= ny * depth / 2
	case a.dynamic:
		a.pos.X += nx * depth
		a.pos.Y += ny * depth
	case b.dynamic:
		b.pos.X -= nx * depth
		b.pos.Y -= ny * depth
	}
	if a.dynamic {
		a.vel.X, a.vel.Y = 0, 0
	}
	if b.dynamic {
		b.vel.X, b.vel.Y = 0, 0
	}
}
