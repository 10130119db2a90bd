package game

// SwitchState is the logical color of the gate. Balls use the same values for
// their color, so a pass is a plain equality check.
type SwitchState int

const (
	Red SwitchState = iota
	Yellow
	Green
	Blue

	numColors = 4
)

// Next returns the cyclic successor: Red, Yellow, Green, Blue, Red.
func (s SwitchState) Next() SwitchState {
	return (s + 1) % numColors
}

func (s SwitchState) String() string {
	switch s {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "unknown"
}

// Colors lists every switch state in rotation order.
func Colors() [numColors]SwitchState {
	return [numColors]SwitchState{Red, Yellow, Green, Blue}
}
