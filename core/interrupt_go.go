//go:build !tinygo

package core

// intState is the saved interrupt state. It carries nothing on host Go,
// where the "interrupt" is a goroutine and the shared fields are atomic
// cells in their own right.
type intState uintptr

func disableInterrupts() intState { return 0 }

func restoreInterrupts(state intState) {}
