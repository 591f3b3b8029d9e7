package game

import "time"

// Clock is a one-shot timer re-armed after every tick, so the period can change
// between ticks and a step never overlaps the next one.
type Clock struct {
	timer *time.Timer
	armed bool
}

// NewClock creates a stopped clock.
func NewClock() *Clock {
	t := time.NewTimer(time.Hour)
	t.Stop()
	return &Clock{timer: t}
}

// Schedule arms the clock to fire once after d.
func (c *Clock) Schedule(d time.Duration) {
	c.Stop()
	c.timer.Reset(d)
	c.armed = true
}

// C returns the channel the clock fires on.
func (c *Clock) C() <-chan time.Time {
	return c.timer.C
}

// Fired marks the pending tick as consumed. Call after receiving from C.
func (c *Clock) Fired() {
	c.armed = false
}

// Armed returns true while a tick is scheduled and not yet consumed.
func (c *Clock) Armed() bool {
	return c.armed
}

// Stop cancels any pending tick.
func (c *Clock) Stop() {
	if !c.timer.Stop() && c.armed {
		// Drain a tick that fired but was never received
		select {
		case <-c.timer.C:
		default:
		}
	}
	c.armed = false
}
