//go:build rp2040

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/buzzer"

	"github.com/graumannteague/single-button-clock/core"
)

const (
	buttonPin = machine.GP15
	buzzerPin = machine.GP14
)

func main() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	btn := buttonPin
	btn.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	bzPin := buzzerPin
	bzPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	bz := buzzer.New(bzPin)

	display := newTimeDisplay()
	initTimerInterrupt()

	notify := func(hours, minutes uint8) {
		display.Show(hours, minutes)
		bz.Tone(880, 0.5)
	}

	fw, err := core.New(core.Config{
		Stopwatch:     stopwatch,
		Button:        &gpioButton{pin: btn},
		Blinker:       &ledBlinker{pin: led},
		Notify:        notify,
		DebounceTicks: debounceTicks,
		TimeoutTicks:  timeoutTicks,
	})
	if err != nil {
		println("init:", err.Error())
		return
	}
	stopwatch.OnTick = fw.Clock().Tick

	if err := fw.SetTime(); err != nil {
		println("set time:", err.Error())
		return
	}
	fw.Run(nil)
}

// gpioButton reads the push button: pull-up input, pressed reads low.
type gpioButton struct {
	pin machine.Pin
}

func (b *gpioButton) Pressed() bool {
	return !b.pin.Get()
}

// ledBlinker pulses the on-board LED, active high on the Pico.
type ledBlinker struct {
	pin machine.Pin
}

const (
	pulseTime = 200 * time.Millisecond
	groupGap  = 600 * time.Millisecond
)

func (b *ledBlinker) Blink(count uint8) {
	for i := uint8(0); i < count; i++ {
		b.pin.High()
		time.Sleep(pulseTime)
		b.pin.Low()
		time.Sleep(pulseTime)
	}
}

func (b *ledBlinker) Pause() {
	time.Sleep(groupGap)
}
