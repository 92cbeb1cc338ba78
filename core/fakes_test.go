package core

// Test doubles for the hardware interfaces. The fake environment advances
// one virtual measure-mode count per hardware poll (button read or count
// read), which makes every busy-wait in the protocol deterministic: the
// protocol's own polling is the clock.

type phase struct {
	held bool
	n    uint32 // remaining polls in this phase
}

type fakeEnv struct {
	now    uint32
	phases []phase
}

func (e *fakeEnv) step() {
	e.now++
	if len(e.phases) > 0 {
		e.phases[0].n--
		if e.phases[0].n == 0 {
			e.phases = e.phases[1:]
		}
	}
}

// held reports the button level for the current phase. Past the end of the
// schedule the button idles released forever, so any round in progress runs
// into its timeout.
func (e *fakeEnv) held() bool {
	return len(e.phases) > 0 && e.phases[0].held
}

// press schedules one button press: idle polls of released level, then hold
// polls of pressed level.
func (e *fakeEnv) press(idle, hold uint32) {
	e.phases = append(e.phases, phase{held: false, n: idle}, phase{held: true, n: hold})
}

// pressRun schedules count evenly spaced presses.
func (e *fakeEnv) pressRun(count int, idle, hold uint32) {
	for i := 0; i < count; i++ {
		e.press(idle, hold)
	}
}

// rest schedules released level for n polls. A timed-out round consumes a
// hair over 2*TimeoutTicks polls (expiry readings land on every second
// poll), so a rest spanning one timeout must be at least that long or the
// next scheduled press leaks into the wrong round.
func (e *fakeEnv) rest(n uint32) {
	e.phases = append(e.phases, phase{held: false, n: n})
}

type fakeButton struct {
	env *fakeEnv
}

func (b *fakeButton) Pressed() bool {
	b.env.step()
	return b.env.held()
}

type fakeStopwatch struct {
	env     *fakeEnv
	mode    StopwatchMode
	resetAt uint32
	configs []StopwatchMode
	err     error // returned by Configure when set
}

func (s *fakeStopwatch) Configure(m StopwatchMode) error {
	if s.err != nil {
		return s.err
	}
	s.configs = append(s.configs, m)
	s.mode = m
	s.resetAt = s.env.now
	return nil
}

func (s *fakeStopwatch) Reset() {
	s.resetAt = s.env.now
}

func (s *fakeStopwatch) Count() uint32 {
	s.env.step()
	return s.env.now - s.resetAt
}

func (s *fakeStopwatch) Mode() StopwatchMode { return s.mode }

type fakeBlinker struct {
	blinks []uint8
	pauses int
}

func (b *fakeBlinker) Blink(count uint8) {
	b.blinks = append(b.blinks, count)
}

func (b *fakeBlinker) Pause() {
	b.pauses++
}

func blinksEqual(got, want []uint8) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
