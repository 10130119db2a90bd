package game

// Outcome is the result of resolving one contact event.
type Outcome int

const (
	Ignored Outcome = iota
	Matched
	Mismatched
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Mismatched:
		return "mismatched"
	}
	return "ignored"
}

// ResolveContact decides a contact between a and b. Only a pair made of the
// live ball and the switch counts; anything else, including a late contact
// for a ball that was already removed, is ignored.
//
// On a match the score goes up, the ramp runs, the ball leaves the world and
// the next ball is spawned. On a mismatch the session is left untouched and
// the caller ends it.
func ResolveContact(s *Session, a, b EntityID) Outcome {
	if s == nil {
		return Ignored
	}
	if s.reg.category(a)|s.reg.category(b) != CategoryBall|CategorySwitch {
		return Ignored
	}

	ball := s.reg.ball
	if ball.Color != s.state {
		return Mismatched
	}

	s.score++
	s.world.Remove(ball.ID)
	s.reg.dropBall()
	s.emit(BallScored{Ball: ball, Score: s.score, Fade: s.tuning.FadeDuration})
	s.updateGravity()
	s.spawnBall()
	return Matched
}
