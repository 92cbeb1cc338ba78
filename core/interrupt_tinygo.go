//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts masks interrupts so a multi-field snapshot cannot be
// torn by the tick interrupt. Keep the window short.
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
