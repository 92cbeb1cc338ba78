// Time-of-day state and the tick accumulator.
// Implements the cascade the timer interrupt drives: 50 ticks -> 1 second,
// 60 seconds -> 1 minute, 60 minutes -> 1 hour, 12-hour wrap.
package core

import "sync/atomic"

// TicksPerSecond is the calibrated rate of the periodic timer interrupt.
// Stopwatch drivers must program their periodic mode so that exactly this
// many compare interrupts fire per wall second.
const TicksPerSecond = 50

// Clock is the time-of-day state shared between the tick interrupt and the
// foreground loop. After seeding, the interrupt is the only writer; the
// foreground reads hours and minutes for feedback. Every shared field is an
// atomic cell so a read across the interrupt boundary never observes a
// stale or torn value.
type Clock struct {
	ticks   atomic.Uint32 // sub-second ticks, 0..TicksPerSecond-1
	seconds atomic.Uint32 // 0..59
	minutes atomic.Uint32 // 0..59
	hours   atomic.Uint32 // 1..12 once seeded

	// One-shot minute-elapsed flag. Coalescing: a second rollover before
	// the first was presented leaves it simply set.
	minute atomic.Bool
}

// Seed loads the time produced by the setup protocol. Seconds and sub-second
// ticks start at zero. Call once, before the periodic interrupt is armed.
func (c *Clock) Seed(hours, minutes uint8) {
	c.ticks.Store(0)
	c.seconds.Store(0)
	c.minutes.Store(uint32(minutes))
	c.hours.Store(uint32(hours))
	c.minute.Store(false)
}

// Tick advances the clock by one interrupt period. This is the interrupt
// service routine body: bounded work, nothing that blocks. It is never
// reentered because the timer's interrupt class stays masked while it runs.
func (c *Clock) Tick() {
	t := c.ticks.Load() + 1
	if t < TicksPerSecond {
		c.ticks.Store(t)
		return
	}
	c.ticks.Store(0)

	s := c.seconds.Load() + 1
	if s < 60 {
		c.seconds.Store(s)
		return
	}
	c.seconds.Store(0)

	m := c.minutes.Load() + 1
	if m >= 60 {
		m = 0
		h := c.hours.Load() + 1
		if h >= 13 {
			h = 1
		}
		c.hours.Store(h)
	}
	c.minutes.Store(m)

	// Publish the rollover only after the whole cascade has landed, so the
	// foreground never presents a half-updated time.
	c.minute.Store(true)
}

func (c *Clock) Hours() uint8   { return uint8(c.hours.Load()) }
func (c *Clock) Minutes() uint8 { return uint8(c.minutes.Load()) }
func (c *Clock) Seconds() uint8 { return uint8(c.seconds.Load()) }

// TimeOfDay reads hours and minutes in one critical section, so an hour
// rollover between the two loads cannot produce a mixed reading.
func (c *Clock) TimeOfDay() (hours, minutes uint8) {
	state := disableInterrupts()
	h := uint8(c.hours.Load())
	m := uint8(c.minutes.Load())
	restoreInterrupts(state)
	return h, m
}

// MinuteElapsed reports whether a minute rollover is pending presentation.
func (c *Clock) MinuteElapsed() bool { return c.minute.Load() }

// AckMinute clears the pending rollover. Call only after its feedback has
// been fully presented. Acking with nothing pending is a no-op.
func (c *Clock) AckMinute() { c.minute.Store(false) }
