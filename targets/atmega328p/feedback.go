//go:build avr

package main

import (
	"machine"
	"time"

	"github.com/graumannteague/single-button-clock/midi"
)

// gpioButton reads the push button. The board wires it to ground with an
// external pull-up, so the pin is tristated and pressed reads low.
type gpioButton struct {
	pin machine.Pin
}

func (b *gpioButton) Pressed() bool {
	return !b.pin.Get()
}

// ledBlinker pulses the status LED, which is wired active low.
type ledBlinker struct {
	pin machine.Pin
}

const (
	pulseTime = 200 * time.Millisecond
	groupGap  = 600 * time.Millisecond
)

func (b *ledBlinker) Blink(count uint8) {
	for i := uint8(0); i < count; i++ {
		b.pin.Low()
		time.Sleep(pulseTime)
		b.pin.High()
		time.Sleep(pulseTime)
	}
}

func (b *ledBlinker) Pause() {
	time.Sleep(groupGap)
}

// newChime puts a MIDI note-on/note-off pair on UART0 once per minute, for
// whatever synth happens to be listening. Harmless with nothing attached.
func newChime() func(h, m uint8) {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: midi.BaudRate})
	chime := &midi.Chime{Out: uart, Key: 81}

	return func(h, m uint8) {
		if chime.Strike() != nil {
			return
		}
		time.Sleep(chimeRing)
		chime.Release()
	}
}

const chimeRing = 200 * time.Millisecond
