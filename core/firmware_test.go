package core

import "testing"

func newTestFirmware(t *testing.T, env *fakeEnv, notify MinuteHook) (*Firmware, *fakeStopwatch, *fakeBlinker) {
	t.Helper()
	sw := &fakeStopwatch{env: env}
	bl := &fakeBlinker{}
	fw, err := New(Config{
		Stopwatch:     sw,
		Button:        &fakeButton{env: env},
		Blinker:       bl,
		Notify:        notify,
		DebounceTicks: testDebounce,
		TimeoutTicks:  testTimeout,
	})
	if err != nil {
		t.Fatal(err)
	}
	return fw, sw, bl
}

func TestNewRejectsMissingCollaborators(t *testing.T) {
	env := &fakeEnv{}
	sw := &fakeStopwatch{env: env}
	btn := &fakeButton{env: env}
	bl := &fakeBlinker{}

	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"no stopwatch", Config{Button: btn, Blinker: bl, TimeoutTicks: 1}, ErrNoStopwatch},
		{"no button", Config{Stopwatch: sw, Blinker: bl, TimeoutTicks: 1}, ErrNoButton},
		{"no blinker", Config{Stopwatch: sw, Button: btn, TimeoutTicks: 1}, ErrNoBlinker},
		{"no timeout", Config{Stopwatch: sw, Button: btn, Blinker: bl}, ErrNoTimeout},
	}
	for _, tc := range cases {
		if _, err := New(tc.cfg); err != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

// 11 presses for hours, 7 for minutes: the clock seeds to 11:07:00 and the
// stopwatch ends up armed in periodic mode.
func TestSetTimeSeedsAndArms(t *testing.T) {
	env := &fakeEnv{}
	env.pressRun(11, 10, 20)
	env.rest(130) // hours round must run out before the minutes presses
	env.pressRun(7, 10, 20)
	fw, sw, bl := newTestFirmware(t, env, nil)

	if err := fw.SetTime(); err != nil {
		t.Fatal(err)
	}

	c := fw.Clock()
	if h, m := c.TimeOfDay(); h != 11 || m != 7 {
		t.Fatalf("seeded %d:%02d, want 11:07", h, m)
	}
	if c.Seconds() != 0 {
		t.Fatalf("seconds = %d after seed, want 0", c.Seconds())
	}
	if !blinksEqual(bl.blinks, []uint8{1, 2}) {
		t.Fatalf("blinks = %v, want [1 2]", bl.blinks)
	}
	if sw.Mode() != ModePeriodic {
		t.Fatalf("stopwatch mode = %v, want periodic", sw.Mode())
	}
	if last := sw.configs[len(sw.configs)-1]; last != ModePeriodic {
		t.Fatalf("last configuration = %v, want periodic", last)
	}
}

// A rejected hours round still leads to a clean seed once the retry passes.
func TestSetTimeWithRejectedHours(t *testing.T) {
	env := &fakeEnv{}
	env.pressRun(13, 10, 20)
	env.rest(130)
	env.pressRun(5, 10, 20)
	env.rest(130)
	env.pressRun(30, 5, 12)
	fw, _, bl := newTestFirmware(t, env, nil)

	if err := fw.SetTime(); err != nil {
		t.Fatal(err)
	}
	if h, m := fw.Clock().TimeOfDay(); h != 5 || m != 30 {
		t.Fatalf("seeded %d:%02d, want 5:30", h, m)
	}
	if !blinksEqual(bl.blinks, []uint8{InvalidBlinks, 1, 2}) {
		t.Fatalf("blinks = %v, want [3 1 2]", bl.blinks)
	}
}

func TestPollPresentsOncePerRollover(t *testing.T) {
	var notified []uint8
	env := &fakeEnv{}
	fw, _, bl := newTestFirmware(t, env, func(h, m uint8) {
		notified = append(notified, h, m)
	})

	c := fw.Clock()
	c.Seed(11, 7)
	if fw.Poll() {
		t.Fatal("Poll presented with no rollover pending")
	}

	tickN(c, TicksPerSecond*60)
	if !fw.Poll() {
		t.Fatal("Poll ignored a pending rollover")
	}
	if !blinksEqual(bl.blinks, []uint8{11, 8}) {
		t.Fatalf("blinks = %v, want [11 8]", bl.blinks)
	}
	if bl.pauses != 1 {
		t.Fatalf("pauses = %d, want 1", bl.pauses)
	}
	if !blinksEqual(notified, []uint8{11, 8}) {
		t.Fatalf("notified with %v, want [11 8]", notified)
	}

	// Same rollover must not be presented twice.
	if fw.Poll() {
		t.Fatal("Poll presented the same rollover twice")
	}
}

// Presenting a minute with value 0 blinks the minutes group zero times but
// still runs the full sequence.
func TestPollPresentsZeroMinutes(t *testing.T) {
	env := &fakeEnv{}
	fw, _, bl := newTestFirmware(t, env, nil)

	c := fw.Clock()
	c.Seed(12, 59)
	tickN(c, TicksPerSecond*60) // 1:00
	if !fw.Poll() {
		t.Fatal("Poll ignored the rollover")
	}
	if !blinksEqual(bl.blinks, []uint8{1, 0}) {
		t.Fatalf("blinks = %v, want [1 0]", bl.blinks)
	}
}

// The flag must stay set for the whole presentation and only be cleared
// once it finishes.
func TestPollAcksOnlyAfterPresentation(t *testing.T) {
	env := &fakeEnv{}
	sw := &fakeStopwatch{env: env}
	var fw *Firmware
	setDuringBlink := true
	fw, err := New(Config{
		Stopwatch: sw,
		Button:    &fakeButton{env: env},
		Blinker: &hookBlinker{during: func() {
			setDuringBlink = setDuringBlink && fw.Clock().MinuteElapsed()
		}},
		DebounceTicks: testDebounce,
		TimeoutTicks:  testTimeout,
	})
	if err != nil {
		t.Fatal(err)
	}

	c := fw.Clock()
	c.Seed(2, 30)
	tickN(c, TicksPerSecond*60)
	if !fw.Poll() {
		t.Fatal("Poll ignored the rollover")
	}
	if !setDuringBlink {
		t.Fatal("flag was cleared while the presentation was in progress")
	}
	if c.MinuteElapsed() {
		t.Fatal("flag still set after the presentation finished")
	}
}

// hookBlinker runs a callback on every Blink, letting a test observe state
// mid-presentation.
type hookBlinker struct {
	during func()
}

func (b *hookBlinker) Blink(count uint8) {
	if b.during != nil {
		b.during()
	}
}

func (b *hookBlinker) Pause() {}

func TestRunStopsOnPredicate(t *testing.T) {
	env := &fakeEnv{}
	fw, _, bl := newTestFirmware(t, env, nil)

	c := fw.Clock()
	c.Seed(4, 59)
	tickN(c, TicksPerSecond*60)

	iters := 0
	fw.Run(func() bool {
		iters++
		return iters > 3
	})
	if !blinksEqual(bl.blinks, []uint8{5, 0}) {
		t.Fatalf("blinks = %v, want [5 0]", bl.blinks)
	}
}
