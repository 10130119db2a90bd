package game

// Session is one play-through: the switch, the current ball, the score and
// the difficulty ramp. It is created with the first ball already falling.
type Session struct {
	tuning  Tuning
	field   Field
	world   World
	spawner *Spawner

	reg   registry
	ramp  Ramp
	state SwitchState
	score int

	events []Event
}

func NewSession(w World, field Field, t Tuning, seed uint64) *Session {
	s := &Session{
		tuning:  t,
		field:   field,
		world:   w,
		spawner: NewSpawner(seed, field.SpawnPos, t.BallRadius),
		ramp:    NewRamp(t),
		state:   Red,
	}

	w.SetGravity(s.ramp.Gravity)
	s.reg.switchID = s.reg.newID()
	w.AttachStatic(s.reg.switchID, field.SwitchPos, field.SwitchRadius, CategorySwitch)

	s.spawnBall()
	return s
}

func (s *Session) Score() int          { return s.score }
func (s *Session) Switch() SwitchState { return s.state }
func (s *Session) Gravity() float64    { return s.ramp.Gravity }
func (s *Session) Breakpoint() int     { return s.ramp.Breakpoint }
func (s *Session) Field() Field        { return s.field }
func (s *Session) SwitchID() EntityID  { return s.reg.switchID }

// Ball returns the live ball.
func (s *Session) Ball() (Ball, bool) {
	return s.reg.ball, s.reg.hasBall
}

// Tap advances the switch one step.
func (s *Session) Tap() {
	s.state = s.state.Next()
	s.emit(SwitchRotated{
		State:    s.state,
		Angle:    s.tuning.RotateAngle,
		Duration: s.tuning.RotateDuration,
	})
}

// Drain returns the presentation events emitted since the last call.
func (s *Session) Drain() []Event {
	ev := s.events
	s.events = nil
	return ev
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Session) spawnBall() {
	b := s.spawner.Spawn(s.world, s.reg.newID())
	s.reg.setBall(b)
	s.emit(BallSpawned{Ball: b})
}

// updateGravity runs the ramp for the current score and pushes any change to
// the world.
func (s *Session) updateGravity() {
	if !s.ramp.Update(s.score) {
		return
	}
	s.world.SetGravity(s.ramp.Gravity)
	s.emit(GravityIncreased{Gravity: s.ramp.Gravity, Phase: s.tuning.PulsePhase})
}
