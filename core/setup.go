package core

// Field describes one time-of-day value the setup protocol can acquire: its
// inclusive legal range and the number of acknowledgement blinks shown when
// a value is accepted.
type Field struct {
	Min       uint8
	Max       uint8
	AckBlinks uint8
}

var (
	HoursField   = Field{Min: 1, Max: 12, AckBlinks: 1}
	MinutesField = Field{Min: 0, Max: 59, AckBlinks: 2}
)

// InvalidBlinks is the feedback pattern for an out-of-range press count.
const InvalidBlinks = 3

// Setup runs the single-button acquisition protocol. It owns the stopwatch
// while it runs; the tick interrupt must not be armed yet, so everything
// here is strictly single-threaded busy-wait polling.
type Setup struct {
	Stopwatch StopwatchDriver
	Button    Button
	Blinker   Blinker

	// DebounceTicks is the contact settle window in measure-mode counts
	// (25 ms worth on real hardware).
	DebounceTicks uint32

	// TimeoutTicks is the inter-press timeout in measure-mode counts
	// (about 3 s worth). Once the stopwatch reaches it with no new press,
	// the round ends.
	TimeoutTicks uint32
}

// Acquire derives f's value from button presses. Out-of-range counts get
// InvalidBlinks and the whole round restarts; the retry loop has no attempt
// cap, the user simply tries again. On acceptance the field's ack blinks
// are shown and the count returned.
//
// A round with no presses at all yields 0, which is a legal minutes value:
// letting the timeout expire untouched is how minutes are set to zero. For
// hours, 0 is out of range like any other bad count. The only error source
// is stopwatch reconfiguration.
func (s *Setup) Acquire(f Field) (uint8, error) {
	for {
		n, err := s.countPresses()
		if err != nil {
			return 0, err
		}
		if n >= f.Min && n <= f.Max {
			s.Blinker.Blink(f.AckBlinks)
			return n, nil
		}
		s.Blinker.Blink(InvalidBlinks)
	}
}

// countPresses counts debounced presses until the stopwatch reaches
// TimeoutTicks with no new one. The window runs from the mode switch for
// the first press and is restarted after each accepted press.
//
// Timeout boundary: the expiry check reads the count before each button
// poll, so a press observed while the preceding reading was still below the
// threshold is accepted even if the count has meanwhile reached it; once a
// reading hits the threshold the round is over.
func (s *Setup) countPresses() (uint8, error) {
	sw := s.Stopwatch
	if err := sw.Configure(ModeMeasure); err != nil {
		return 0, err
	}

	count := uint8(0)
	for sw.Count() < s.TimeoutTicks {
		if s.Button.Pressed() {
			s.settle()
			s.waitRelease()
			count++
			sw.Reset()
		}
	}
	return count, nil
}

func (s *Setup) waitRelease() {
	for s.Button.Pressed() {
	}
}

// settle burns the debounce window on the measure-mode count, so contact
// chatter around an edge is not mistaken for further presses.
func (s *Setup) settle() {
	start := s.Stopwatch.Count()
	for s.Stopwatch.Count()-start < s.DebounceTicks {
	}
}
