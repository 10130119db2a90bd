package game

// Ramp raises gravity as the score climbs.
type Ramp struct {
	Gravity    float64
	Breakpoint int

	step     float64
	tierSize int
}

func NewRamp(t Tuning) Ramp {
	tierSize := t.TierSize
	if tierSize < 1 {
		tierSize = 1
	}
	return Ramp{
		Gravity:    t.Gravity,
		Breakpoint: t.FirstBreakpoint,
		step:       t.GravityStep,
		tierSize:   tierSize,
	}
}

// Tier is 1 for a zero score and ceil(score/tierSize) otherwise.
func (r *Ramp) Tier(score int) int {
	if score <= 0 {
		return 1
	}
	return (score + r.tierSize - 1) / r.tierSize
}

// Update steps gravity once when the score's tier reaches the breakpoint and
// reports whether it did. The breakpoint then moves on, so the same tier
// never triggers twice.
func (r *Ramp) Update(score int) bool {
	if r.Tier(score) != r.Breakpoint {
		return false
	}
	r.Gravity -= r.step
	r.Breakpoint++
	return true
}
