package game

type body struct {
	pos       Vec
	radius    float64
	category  Category
	contact   Category
	collision Category
	dynamic   bool
}

type fakeWorld struct {
	gravity  float64
	gravSets int
	bodies   map[EntityID]body
	removed  []EntityID
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{bodies: map[EntityID]body{}}
}

func (w *fakeWorld) SetGravity(dy float64) {
	w.gravity = dy
	w.gravSets++
}

func (w *fakeWorld) AttachStatic(id EntityID, pos Vec, radius float64, category Category) {
	w.bodies[id] = body{pos: pos, radius: radius, category: category}
}

func (w *fakeWorld) AttachDynamic(id EntityID, pos Vec, radius float64, category, contact, collision Category) {
	w.bodies[id] = body{pos: pos, radius: radius, category: category, contact: contact, collision: collision, dynamic: true}
}

func (w *fakeWorld) Remove(id EntityID) {
	delete(w.bodies, id)
	w.removed = append(w.removed, id)
}

type memStore map[string]int

func (m memStore) SetInt(key string, v int) { m[key] = v }
func (m memStore) Int(key string) int       { return m[key] }

type fakeNav struct {
	calls []Size
}

func (n *fakeNav) PresentMenu(size Size) { n.calls = append(n.calls, size) }

func testField() Field {
	return Field{
		Width:        30,
		Height:       20,
		SwitchRadius: 5,
		SwitchPos:    Vec{X: 15, Y: 10},
		SpawnPos:     Vec{X: 15, Y: 18},
	}
}

func newTestSession(t interface{ Helper() }, w World) *Session {
	t.Helper()
	return NewSession(w, testField(), DefaultTuning(), 42)
}

// setSwitch taps until the switch shows want.
func setSwitch(s *Session, want SwitchState) {
	for s.Switch() != want {
		s.Tap()
	}
	s.Drain()
}
