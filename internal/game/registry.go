package game

// registry tracks the two live entities of a session: the switch, which
// lives as long as the session, and the current ball.
type registry struct {
	next     EntityID
	switchID EntityID
	ball     Ball
	hasBall  bool
}

func (r *registry) newID() EntityID {
	r.next++
	return r.next
}

func (r *registry) setBall(b Ball) {
	r.ball = b
	r.hasBall = true
}

func (r *registry) dropBall() {
	r.ball = Ball{}
	r.hasBall = false
}

// category reports the category of a live entity. Unknown or removed
// entities are CategoryNone.
func (r *registry) category(id EntityID) Category {
	switch {
	case id == r.switchID:
		return CategorySwitch
	case r.hasBall && id == r.ball.ID:
		return CategoryBall
	}
	return CategoryNone
}
