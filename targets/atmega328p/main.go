//go:build avr

package main

import (
	"machine"

	"github.com/graumannteague/single-button-clock/core"
)

// Olimex AVR-P28 wiring.
const (
	ledPin    = machine.PC5
	buttonPin = machine.PD2
)

// Set to false to drop the once-per-minute MIDI note on UART0.
const chimeEnabled = true

func main() {
	led := ledPin
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.High() // active low, start dark

	button := buttonPin
	button.Configure(machine.PinConfig{Mode: machine.PinInput})

	var notify core.MinuteHook
	if chimeEnabled {
		notify = newChime()
	}

	fw, err := core.New(core.Config{
		Stopwatch:     timer1,
		Button:        &gpioButton{pin: button},
		Blinker:       &ledBlinker{pin: led},
		Notify:        notify,
		DebounceTicks: debounceTicks,
		TimeoutTicks:  timeoutTicks,
	})
	if err != nil {
		// Wiring bug: nothing to show it on but the LED.
		for {
		}
	}
	timer1.OnTick = fw.Clock().Tick

	if err := fw.SetTime(); err != nil {
		for {
		}
	}
	fw.Run(nil)
}
