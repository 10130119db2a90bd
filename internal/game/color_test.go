package game

import "testing"

func TestSwitchState_Next(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   SwitchState
		want SwitchState
	}{
		{Red, Yellow},
		{Yellow, Green},
		{Green, Blue},
		{Blue, Red},
	}
	for _, tc := range cases {
		if got := tc.in.Next(); got != tc.want {
			t.Fatalf("%v.Next() = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSwitchState_FullTurnReturnsToStart(t *testing.T) {
	t.Parallel()

	for _, c := range Colors() {
		s := c
		for range numColors {
			s = s.Next()
		}
		if s != c {
			t.Fatalf("four steps from %v ended at %v", c, s)
		}
	}
}

func TestSwitchState_Ordinals(t *testing.T) {
	t.Parallel()

	if Red != 0 || Yellow != 1 || Green != 2 || Blue != 3 {
		t.Fatalf("unexpected ordinals: %d %d %d %d", Red, Yellow, Green, Blue)
	}
	if Green.String() != "green" {
		t.Fatalf("String: got %q", Green.String())
	}
}
