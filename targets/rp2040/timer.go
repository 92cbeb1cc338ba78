//go:build rp2040

package main

import (
	"device/rp"
	"runtime/interrupt"
	"runtime/volatile"
	"unsafe"

	"github.com/graumannteague/single-button-clock/core"
)

// RP2040 TIMER peripheral. The free-running counter ticks at 1 MHz; ALARM0
// raises TIMER_IRQ_0 when the low word matches.
const (
	timerBase     = 0x40054000
	timerALARM0   = timerBase + 0x10
	timerARMED    = timerBase + 0x20
	timerTIMERAWL = timerBase + 0x28
	timerINTR     = timerBase + 0x34
	timerINTE     = timerBase + 0x38
)

var (
	alarm0Reg = (*volatile.Register32)(unsafe.Pointer(uintptr(timerALARM0)))
	armedReg  = (*volatile.Register32)(unsafe.Pointer(uintptr(timerARMED)))
	rawLowReg = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
	intrReg   = (*volatile.Register32)(unsafe.Pointer(uintptr(timerINTR)))
	inteReg   = (*volatile.Register32)(unsafe.Pointer(uintptr(timerINTE)))
)

const alarm0Bit = 1 << 0

// Stopwatch calibration. Counts are microseconds in both modes; only the
// interrupt arming differs.
const (
	tickIntervalUS = 1000000 / core.TicksPerSecond

	debounceTicks = 25000   // 25 ms settle window
	timeoutTicks  = 3000000 // 3 s inter-press timeout
)

// AlarmStopwatch implements the stopwatch on the RP2040 system timer. The
// counter itself always runs; measure mode just tracks an epoch, and
// periodic mode re-arms ALARM0 from its own interrupt.
type AlarmStopwatch struct {
	// OnTick is invoked from the alarm interrupt. Set it before the
	// switch to periodic mode.
	OnTick func()

	mode  core.StopwatchMode
	epoch uint32
	next  uint32
}

var stopwatch = &AlarmStopwatch{}

func initTimerInterrupt() {
	in := interrupt.New(rp.IRQ_TIMER_IRQ_0, handleAlarm)
	in.Enable()
}

func handleAlarm(interrupt.Interrupt) {
	intrReg.Set(alarm0Bit) // acknowledge
	if stopwatch.mode != core.ModePeriodic {
		return
	}
	// Re-arm relative to the previous deadline, not now, so latency does
	// not accumulate into clock drift.
	stopwatch.next += tickIntervalUS
	alarm0Reg.Set(stopwatch.next)
	if stopwatch.OnTick != nil {
		stopwatch.OnTick()
	}
}

func (s *AlarmStopwatch) Configure(mode core.StopwatchMode) error {
	state := interrupt.Disable()
	// Disarm and acknowledge before switching, so the old configuration
	// cannot fire into the new one.
	inteReg.ClearBits(alarm0Bit)
	armedReg.Set(alarm0Bit) // writing 1 disarms
	intrReg.Set(alarm0Bit)

	s.mode = mode
	s.epoch = rawLowReg.Get()
	if mode == core.ModePeriodic {
		s.next = s.epoch + tickIntervalUS
		alarm0Reg.Set(s.next)
		inteReg.SetBits(alarm0Bit)
	}
	interrupt.Restore(state)
	return nil
}

func (s *AlarmStopwatch) Reset() {
	s.epoch = rawLowReg.Get()
}

func (s *AlarmStopwatch) Count() uint32 {
	return rawLowReg.Get() - s.epoch
}

func (s *AlarmStopwatch) Mode() core.StopwatchMode {
	return s.mode
}
