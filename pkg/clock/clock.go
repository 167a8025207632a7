package clock

import "time"

// Clock provides the current time so date math can be tested deterministically.
type Clock interface {
	Now() time.Time
}

// RealClock reports the system time in a fixed location.
type RealClock struct {
	loc *time.Location
}

func NewRealClock(loc *time.Location) *RealClock {
	if loc == nil {
		loc = time.Local
	}
	return &RealClock{loc: loc}
}

func (c *RealClock) Now() time.Time { return time.Now().In(c.loc) }

// FakeClock always reports the time it was set to.
type FakeClock struct {
	current time.Time
}

func NewFakeClock(t time.Time) *FakeClock { return &FakeClock{current: t} }

func (c *FakeClock) Now() time.Time { return c.current }

func (c *FakeClock) Advance(d time.Duration) { c.current = c.current.Add(d) }
