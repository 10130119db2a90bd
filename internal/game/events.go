package game

import "time"

// Event is a presentation event. The core emits them alongside state changes
// and the view drains them each frame; none of them feed back into play.
type Event interface {
	event()
}

// SwitchRotated asks the view to turn the gate by Angle over Duration.
type SwitchRotated struct {
	State    SwitchState
	Angle    float64
	Duration time.Duration
}

// BallScored fires on a pass. Ball has already been removed from the world;
// the view may fade it out over Fade.
type BallScored struct {
	Ball  Ball
	Score int
	Fade  time.Duration
}

// GravityIncreased fires when the ramp steps. The label fades in and out and
// pulses its scale, Phase per step.
type GravityIncreased struct {
	Gravity float64
	Phase   time.Duration
}

type BallSpawned struct {
	Ball Ball
}

func (SwitchRotated) event()    {}
func (BallScored) event()       {}
func (GravityIncreased) event() {}
func (BallSpawned) event()      {}
