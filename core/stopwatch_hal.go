package core

// StopwatchMode selects one of the two mutually exclusive configurations of
// the single hardware timer/counter the clock owns.
type StopwatchMode uint8

const (
	// ModeOff: counter stopped, interrupt disarmed. Power-on state.
	ModeOff StopwatchMode = iota

	// ModeMeasure: free-running count at the coarse divider, interrupt
	// disarmed. Used by the setup protocol to measure the debounce settle
	// window and the inter-press timeout.
	ModeMeasure

	// ModePeriodic: fine divider with a compare interrupt firing
	// TicksPerSecond times per second. Used for timekeeping proper.
	ModePeriodic
)

func (m StopwatchMode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeMeasure:
		return "measure"
	case ModePeriodic:
		return "periodic"
	}
	return "unknown"
}

// StopwatchDriver is the abstract timer/counter interface the core uses.
// Platform-specific implementations own the actual peripheral.
type StopwatchDriver interface {
	// Configure switches the counter between modes. Implementations must
	// stop the counter, reprogram the divider, clear the count, and
	// restart it as one step; a half-configured counter must never be
	// observable. Entering ModePeriodic arms the tick interrupt, leaving
	// it disarms it.
	Configure(mode StopwatchMode) error

	// Reset clears the running count without changing mode.
	Reset()

	// Count returns the raw running count in the current mode's units.
	Count() uint32

	// Mode returns the active configuration.
	Mode() StopwatchMode
}
