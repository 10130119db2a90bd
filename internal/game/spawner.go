package game

import "math/rand/v2"

// Ball is the falling entity. Its color is drawn independently of the switch.
type Ball struct {
	ID    EntityID
	Color SwitchState
	Pos   Vec
}

// Spawner places new balls at a fixed spawn point with a random color.
type Spawner struct {
	rng    *rand.Rand
	pos    Vec
	radius float64
}

func NewSpawner(seed uint64, pos Vec, radius float64) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		pos:    pos,
		radius: radius,
	}
}

// Spawn creates a ball with a uniformly random color and attaches it to the
// world as a dynamic circle that reports contact with the switch but never
// collides with anything.
func (sp *Spawner) Spawn(w World, id EntityID) Ball {
	b := Ball{
		ID:    id,
		Color: SwitchState(sp.rng.IntN(numColors)),
		Pos:   sp.pos,
	}
	w.AttachDynamic(id, b.Pos, sp.radius, CategoryBall, CategorySwitch, CategoryNone)
	return b
}
