// Package sim provides desktop implementations of the firmware's hardware
// interfaces, so the whole clock can run interactively on a PC.
package sim

import (
	"bufio"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/graumannteague/single-button-clock/core"
)

// Simulated stopwatch calibration. Measure mode counts once per
// millisecond, so the firmware's debounce and timeout constants map
// directly onto their physical definitions.
const (
	MeasureTick = time.Millisecond
	TickPeriod  = time.Second / core.TicksPerSecond

	DebounceTicks = 25   // 25 ms settle window
	TimeoutTicks  = 3000 // 3 s inter-press timeout
)

// Stopwatch implements core.StopwatchDriver on the wall clock. In periodic
// mode a ticker goroutine stands in for the timer interrupt.
type Stopwatch struct {
	// OnTick is invoked once per simulated timer interrupt. Set it before
	// the switch to periodic mode.
	OnTick func()

	mode  core.StopwatchMode
	epoch time.Time
	stop  chan struct{}
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{mode: core.ModeOff}
}

func (s *Stopwatch) Configure(mode core.StopwatchMode) error {
	// Tear down the previous mode first; the two configurations must
	// never be active at once.
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
	s.mode = mode
	s.epoch = time.Now()
	if mode == core.ModePeriodic {
		s.stop = make(chan struct{})
		go s.tickLoop(s.stop)
	}
	return nil
}

func (s *Stopwatch) tickLoop(stop chan struct{}) {
	t := time.NewTicker(TickPeriod)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			s.OnTick()
		case <-stop:
			return
		}
	}
}

func (s *Stopwatch) Reset() {
	s.epoch = time.Now()
}

func (s *Stopwatch) Count() uint32 {
	return uint32(time.Since(s.epoch) / MeasureTick)
}

func (s *Stopwatch) Mode() core.StopwatchMode {
	return s.mode
}

// Button turns terminal input into press edges: each line read (one Enter)
// holds the simulated button down briefly. Pressed is a plain polled read,
// exactly like a GPIO level on hardware.
type Button struct {
	// HoldFor is how long one Enter keeps the button down. It must
	// comfortably exceed the debounce window.
	HoldFor time.Duration

	held atomic.Bool
}

func NewButton() *Button {
	return &Button{HoldFor: 120 * time.Millisecond}
}

// Watch consumes r line by line until it closes. Run it on its own
// goroutine; it plays the role of the person at the button.
func (b *Button) Watch(r io.Reader) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		b.Press()
	}
}

// Press holds the button down for HoldFor, blocking.
func (b *Button) Press() {
	b.held.Store(true)
	time.Sleep(b.HoldFor)
	b.held.Store(false)
}

func (b *Button) Pressed() bool {
	return b.held.Load()
}

// Blinker draws LED pulses in the terminal with the hardware cadence:
// 200 ms on, 200 ms off, 600 ms between groups.
type Blinker struct {
	Out   io.Writer
	Pulse time.Duration
	Gap   time.Duration
}

func NewBlinker(w io.Writer) *Blinker {
	return &Blinker{
		Out:   w,
		Pulse: 200 * time.Millisecond,
		Gap:   600 * time.Millisecond,
	}
}

func (b *Blinker) Blink(count uint8) {
	for i := uint8(0); i < count; i++ {
		fmt.Fprint(b.Out, "*")
		time.Sleep(b.Pulse)
		fmt.Fprint(b.Out, " ")
		time.Sleep(b.Pulse)
	}
	fmt.Fprintln(b.Out)
}

func (b *Blinker) Pause() {
	time.Sleep(b.Gap)
}
