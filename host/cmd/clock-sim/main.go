package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/graumannteague/single-button-clock/core"
	"github.com/graumannteague/single-button-clock/host/serial"
	"github.com/graumannteague/single-button-clock/host/sim"
	"github.com/graumannteague/single-button-clock/midi"
)

var (
	midiDevice = flag.String("midi-device", "", "Serial device for the MIDI chime (optional)")
	midiKey    = flag.Int("midi-key", 81, "MIDI key struck on the minute (81 = A5)")
	midiRing   = flag.Duration("midi-ring", 200*time.Millisecond, "How long the chime note rings")
)

func main() {
	flag.Parse()

	fmt.Println("single-button-clock simulator")
	fmt.Println("=============================")
	fmt.Println()
	fmt.Println("Enter = one button press.")
	fmt.Println("Set the hour (1-12): press Enter that many times, each press")
	fmt.Println("within 3 s of the last, then wait. One blink confirms.")
	fmt.Println("Then set the minute (0-59) the same way; two blinks confirm.")
	fmt.Println("Three blinks mean the value was out of range: try again.")
	fmt.Println()

	notify := minuteHook()

	button := sim.NewButton()
	go button.Watch(os.Stdin)

	stopwatch := sim.NewStopwatch()
	blinker := sim.NewBlinker(os.Stdout)

	fw, err := core.New(core.Config{
		Stopwatch:     stopwatch,
		Button:        button,
		Blinker:       blinker,
		Notify:        notify,
		DebounceTicks: sim.DebounceTicks,
		TimeoutTicks:  sim.TimeoutTicks,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	stopwatch.OnTick = fw.Clock().Tick

	if err := fw.SetTime(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: setting time: %v\n", err)
		os.Exit(1)
	}

	h, m := fw.Clock().TimeOfDay()
	fmt.Printf("Clock set to %d:%02d. On each minute it blinks the hour, then the minute.\n", h, m)

	fw.Run(nil)
}

// minuteHook builds the once-per-rollover notification: a timestamp line,
// plus a MIDI chime when a device was given.
func minuteHook() core.MinuteHook {
	var chime *midi.Chime
	if *midiDevice != "" {
		port, err := serial.Open(serial.DefaultConfig(*midiDevice))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		chime = &midi.Chime{Out: port, Key: uint8(*midiKey)}
		fmt.Printf("Chiming on %s, key %d.\n", *midiDevice, *midiKey)
	}

	return func(h, m uint8) {
		fmt.Printf("[%d:%02d] ", h, m)
		if chime == nil {
			return
		}
		if err := chime.Strike(); err != nil {
			fmt.Fprintf(os.Stderr, "chime: %v\n", err)
			return
		}
		time.Sleep(*midiRing)
		if err := chime.Release(); err != nil {
			fmt.Fprintf(os.Stderr, "chime: %v\n", err)
		}
	}
}
