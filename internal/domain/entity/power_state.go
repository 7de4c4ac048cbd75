package entity

// PowerState is the display/power phase of the kiosk.
type PowerState int

const (
	PowerAwake PowerState = iota
	PowerAsleep
)

func (s PowerState) String() string {
	if s == PowerAsleep {
		return "asleep"
	}
	return "awake"
}

// Toggle returns the opposite state.
func (s PowerState) Toggle() PowerState {
	if s == PowerAsleep {
		return PowerAwake
	}
	return PowerAsleep
}
