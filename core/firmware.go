package core

import "errors"

var (
	ErrNoStopwatch = errors.New("stopwatch driver not configured")
	ErrNoButton    = errors.New("button input not configured")
	ErrNoBlinker   = errors.New("blink output not configured")
	ErrNoTimeout   = errors.New("inter-press timeout not configured")
)

// Config assembles the firmware's collaborators. Stopwatch, Button and
// Blinker are required; Notify is optional.
type Config struct {
	Stopwatch StopwatchDriver
	Button    Button
	Blinker   Blinker
	Notify    MinuteHook

	// Measure-mode counts for the setup protocol, see Setup.
	DebounceTicks uint32
	TimeoutTicks  uint32
}

// Firmware owns the clock state and drives the two phases of operation:
// the blocking time-set protocol, then the interrupt-fed polling loop.
type Firmware struct {
	clock  Clock
	setup  Setup
	sw     StopwatchDriver
	blink  Blinker
	notify MinuteHook
}

func New(cfg Config) (*Firmware, error) {
	if cfg.Stopwatch == nil {
		return nil, ErrNoStopwatch
	}
	if cfg.Button == nil {
		return nil, ErrNoButton
	}
	if cfg.Blinker == nil {
		return nil, ErrNoBlinker
	}
	if cfg.TimeoutTicks == 0 {
		return nil, ErrNoTimeout
	}
	fw := &Firmware{
		sw:     cfg.Stopwatch,
		blink:  cfg.Blinker,
		notify: cfg.Notify,
	}
	fw.setup = Setup{
		Stopwatch:     cfg.Stopwatch,
		Button:        cfg.Button,
		Blinker:       cfg.Blinker,
		DebounceTicks: cfg.DebounceTicks,
		TimeoutTicks:  cfg.TimeoutTicks,
	}
	return fw, nil
}

// Clock exposes the time-of-day state, primarily so the platform can wire
// its timer interrupt to Tick.
func (fw *Firmware) Clock() *Clock { return &fw.clock }

// SetTime runs the acquisition protocol for hours then minutes, seeds the
// clock, and switches the stopwatch into periodic mode. The switch is
// one-way for the life of the process: on return the tick interrupt is
// armed and Poll is live.
func (fw *Firmware) SetTime() error {
	h, err := fw.setup.Acquire(HoursField)
	if err != nil {
		return err
	}
	m, err := fw.setup.Acquire(MinutesField)
	if err != nil {
		return err
	}
	fw.clock.Seed(h, m)
	return fw.sw.Configure(ModePeriodic)
}

// Poll executes one iteration of the foreground loop. If a minute rollover
// is pending it presents the new time (notify hook, hours blinks, pause,
// minutes blinks) and only then acks the flag; the flag is never cleared
// while a presentation is still in progress. Reports whether a presentation
// happened.
func (fw *Firmware) Poll() bool {
	if !fw.clock.MinuteElapsed() {
		return false
	}
	h, m := fw.clock.TimeOfDay()
	if fw.notify != nil {
		fw.notify(h, m)
	}
	fw.blink.Blink(h)
	fw.blink.Pause()
	fw.blink.Blink(m)
	fw.clock.AckMinute()
	return true
}

// Run busy-waits on the minute flag. The platform has nothing else to do,
// so the loop deliberately spins without sleeping. stop is polled every
// iteration and exists so tests can bound the loop; pass nil to run
// forever.
func (fw *Firmware) Run(stop func() bool) {
	for stop == nil || !stop() {
		fw.Poll()
	}
}
