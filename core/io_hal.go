package core

// Button is a raw polled digital input, true while the button is held.
// No debouncing: the setup protocol does its own settle-window filtering.
type Button interface {
	Pressed() bool
}

// Blinker presents counted pulses of fixed on/off duration. Blink blocks
// until all pulses have been shown; Blink(0) shows nothing. Pause is the
// longer gap separating two blink groups.
type Blinker interface {
	Blink(count uint8)
	Pause()
}

// MinuteHook is called by the foreground loop once per minute rollover with
// a snapshot of the new time, before the blink feedback. Implementations
// back chimes or displays and are expected to return promptly.
type MinuteHook func(hours, minutes uint8)
