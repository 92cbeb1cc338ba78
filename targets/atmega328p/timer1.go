//go:build avr

package main

import (
	"device/avr"
	"runtime/interrupt"

	"github.com/graumannteague/single-button-clock/core"
)

// Timer/Counter 1 calibration for the 8 MHz crystal on the AVR-P28 board.
const (
	// Periodic mode: /8 prescaler with CTC compare at 20000 gives
	// exactly core.TicksPerSecond interrupts per second.
	compareTop = 20000

	// Measure mode: /1024 prescaler, 7812.5 counts per second.
	debounceTicks = 195   // ~25 ms settle window
	timeoutTicks  = 23460 // ~3 s inter-press timeout
)

// Register bits (TCCR1B, TIMSK1, TIFR1).
const (
	cs10   = 1 << 0
	cs11   = 1 << 1
	cs12   = 1 << 2
	wgm12  = 1 << 3
	ocie1a = 1 << 1
	ocf1a  = 1 << 1
)

// Timer1 drives the ATmega's 16-bit Timer/Counter 1 as the firmware's
// stopwatch: free-running at /1024 during setup, CTC compare interrupt at
// 50 Hz once the clock runs.
type Timer1 struct {
	// OnTick is invoked from the compare interrupt. Set it before the
	// switch to periodic mode.
	OnTick func()

	mode core.StopwatchMode
}

var timer1 = &Timer1{}

var _ = interrupt.New(avr.IRQ_TIMER1_COMPA, handleCompareMatch)

func handleCompareMatch(interrupt.Interrupt) {
	if timer1.OnTick != nil {
		timer1.OnTick()
	}
}

func (t *Timer1) Configure(mode core.StopwatchMode) error {
	// Stop the counter and disarm the compare interrupt before touching
	// anything else, so no intermediate configuration can fire.
	avr.TCCR1B.Set(0)
	avr.TIMSK1.ClearBits(ocie1a)
	t.writeCount(0)

	switch mode {
	case core.ModeOff:
	case core.ModeMeasure:
		avr.TCCR1B.Set(cs12 | cs10) // /1024, free-running
	case core.ModePeriodic:
		t.writeCompare(compareTop)
		avr.TIFR1.Set(ocf1a) // write-1-to-clear a stale compare flag
		avr.TIMSK1.SetBits(ocie1a)
		avr.TCCR1B.Set(wgm12 | cs11) // CTC, /8
	}
	t.mode = mode
	return nil
}

func (t *Timer1) Reset() {
	t.writeCount(0)
}

func (t *Timer1) Count() uint32 {
	// 16-bit read: low byte first, which latches the high byte.
	state := interrupt.Disable()
	lo := avr.TCNT1L.Get()
	hi := avr.TCNT1H.Get()
	interrupt.Restore(state)
	return uint32(hi)<<8 | uint32(lo)
}

func (t *Timer1) Mode() core.StopwatchMode {
	return t.mode
}

// writeCount stores a 16-bit counter value, high byte first per the shared
// temporary register protocol.
func (t *Timer1) writeCount(v uint16) {
	state := interrupt.Disable()
	avr.TCNT1H.Set(uint8(v >> 8))
	avr.TCNT1L.Set(uint8(v))
	interrupt.Restore(state)
}

func (t *Timer1) writeCompare(v uint16) {
	avr.OCR1AH.Set(uint8(v >> 8))
	avr.OCR1AL.Set(uint8(v))
}
