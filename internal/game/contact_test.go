package game

import "testing"

func TestResolveContact_Match(t *testing.T) {
	t.Parallel()

	w := newFakeWorld()
	s := newTestSession(t, w)
	setSwitch(s, Green)
	s.reg.ball.Color = Green
	old, _ := s.Ball()

	if got := ResolveContact(s, old.ID, s.SwitchID()); got != Matched {
		t.Fatalf("outcome: got %v", got)
	}
	if s.Score() != 1 {
		t.Fatalf("score: got %d", s.Score())
	}
	if len(w.removed) != 1 || w.removed[0] != old.ID {
		t.Fatalf("removed: %v", w.removed)
	}
	next, ok := s.Ball()
	if !ok || next.ID == old.ID {
		t.Fatalf("expected a new ball, got %+v ok=%v", next, ok)
	}
	if _, ok := w.bodies[next.ID]; !ok {
		t.Fatalf("new ball not attached")
	}

	ev := s.Drain()
	if len(ev) != 2 {
		t.Fatalf("expected 2 events, got %d", len(ev))
	}
	scored, ok := ev[0].(BallScored)
	if !ok || scored.Ball.ID != old.ID || scored.Score != 1 {
		t.Fatalf("unexpected first event: %#v", ev[0])
	}
	if _, ok := ev[1].(BallSpawned); !ok {
		t.Fatalf("expected BallSpawned, got %T", ev[1])
	}
}

func TestResolveContact_OrderOfPairDoesNotMatter(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, newFakeWorld())
	s.reg.ball.Color = Red
	ball, _ := s.Ball()

	if got := ResolveContact(s, s.SwitchID(), ball.ID); got != Matched {
		t.Fatalf("outcome: got %v", got)
	}
}

func TestResolveContact_Mismatch(t *testing.T) {
	t.Parallel()

	w := newFakeWorld()
	s := newTestSession(t, w)
	s.reg.ball.Color = Blue
	ball, _ := s.Ball()
	s.Drain()

	if got := ResolveContact(s, ball.ID, s.SwitchID()); got != Mismatched {
		t.Fatalf("outcome: got %v", got)
	}
	if s.Score() != 0 {
		t.Fatalf("score changed: %d", s.Score())
	}
	if len(w.removed) != 0 {
		t.Fatalf("nothing should be removed: %v", w.removed)
	}
	if len(s.Drain()) != 0 {
		t.Fatalf("no events expected on mismatch")
	}
}

func TestResolveContact_IgnoresOtherPairs(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, newFakeWorld())
	ball, _ := s.Ball()

	cases := []struct {
		name string
		a, b EntityID
	}{
		{"ball with itself", ball.ID, ball.ID},
		{"switch with itself", s.SwitchID(), s.SwitchID()},
		{"unknown entity", ball.ID, 999},
		{"both unknown", 998, 999},
	}
	for _, tc := range cases {
		if got := ResolveContact(s, tc.a, tc.b); got != Ignored {
			t.Fatalf("%s: got %v", tc.name, got)
		}
	}
	if s.Score() != 0 {
		t.Fatalf("score changed: %d", s.Score())
	}
}

func TestResolveContact_StaleBallIgnored(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, newFakeWorld())
	s.reg.ball.Color = Red
	old, _ := s.Ball()
	if got := ResolveContact(s, old.ID, s.SwitchID()); got != Matched {
		t.Fatalf("outcome: got %v", got)
	}
	if got := ResolveContact(s, old.ID, s.SwitchID()); got != Ignored {
		t.Fatalf("late contact for removed ball: got %v", got)
	}
	if s.Score() != 1 {
		t.Fatalf("score: got %d", s.Score())
	}
}

func TestResolveContact_NilSession(t *testing.T) {
	t.Parallel()

	if got := ResolveContact(nil, 1, 2); got != Ignored {
		t.Fatalf("got %v", got)
	}
}

func TestResolveContact_RampStepsGravity(t *testing.T) {
	t.Parallel()

	w := newFakeWorld()
	s := newTestSession(t, w)

	var increased []float64
	for range 11 {
		ball, _ := s.Ball()
		s.reg.ball.Color = s.Switch()
		if got := ResolveContact(s, ball.ID, s.SwitchID()); got != Matched {
			t.Fatalf("outcome: got %v", got)
		}
		for _, e := range s.Drain() {
			if g, ok := e.(GravityIncreased); ok {
				increased = append(increased, g.Gravity)
			}
		}
	}
	if s.Score() != 11 {
		t.Fatalf("score: got %d", s.Score())
	}
	if len(increased) != 1 || increased[0] != -3.5 {
		t.Fatalf("gravity events: %v", increased)
	}
	if w.gravity != -3.5 || s.Gravity() != -3.5 || s.Breakpoint() != 3 {
		t.Fatalf("world=%v session=%v breakpoint=%d", w.gravity, s.Gravity(), s.Breakpoint())
	}
	if len(w.bodies) != 2 {
		t.Fatalf("expected switch and one ball, got %d bodies", len(w.bodies))
	}
}
