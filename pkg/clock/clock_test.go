package clock

import (
	"testing"
	"time"
)

func TestRealClockLocation(t *testing.T) {
	loc := time.FixedZone("test", 3*60*60)
	c := NewRealClock(loc)
	if got := c.Now().Location(); got != loc {
		t.Errorf("Now().Location() = %v, want %v", got, loc)
	}
}

func TestFakeClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewFakeClock(start)

	if !c.Now().Equal(start) {
		t.Errorf("Now() = %v, want %v", c.Now(), start)
	}

	c.Advance(36 * time.Hour)
	if want := start.Add(36 * time.Hour); !c.Now().Equal(want) {
		t.Errorf("after Advance, Now() = %v, want %v", c.Now(), want)
	}
}
