package game

import (
	"math"
	"time"
)

// Tuning holds the gameplay constants of a session.
type Tuning struct {
	Gravity         float64 // baseline, units/s^2 (negative is down)
	GravityStep     float64 // subtracted from Gravity on every ramp trigger
	FirstBreakpoint int
	TierSize        int // score bucket width used by the ramp

	Scale          float64 // field rows per world unit of gravity
	BallRadius     float64
	RotateAngle    float64
	RotateDuration time.Duration
	FadeDuration   time.Duration // scored ball fade-out
	PulsePhase     time.Duration // each phase of the gravity label fade and scale pulse
}

func DefaultTuning() Tuning {
	return Tuning{
		Gravity:         -2.5,
		GravityStep:     1.0,
		FirstBreakpoint: 2,
		TierSize:        10,

		Scale:          4,
		BallRadius:     0.5,
		RotateAngle:    math.Pi / 2,
		RotateDuration: 250 * time.Millisecond,
		FadeDuration:   250 * time.Millisecond,
		PulsePhase:     300 * time.Millisecond,
	}
}

// Field is the playfield geometry, in world units.
type Field struct {
	Width        float64
	Height       float64
	SwitchRadius float64
	SwitchPos    Vec
	SpawnPos     Vec
}
