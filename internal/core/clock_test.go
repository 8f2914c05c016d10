package core

import (
	"testing"
	"time"
)

// fakeClock returns a Clock driven by a manually advanced time source.
func fakeClock(fps int) (*Clock, *time.Time, *[]time.Duration) {
	now := time.Unix(1000, 0)
	var slept []time.Duration
	c := NewClock(fps)
	c.now = func() time.Time { return now }
	c.sleep = func(d time.Duration) {
		slept = append(slept, d)
		now = now.Add(d)
	}
	return c, &now, &slept
}

func TestClockFirstDeltaIsZero(t *testing.T) {
	c, now, _ := fakeClock(60)

	if dt := c.Delta(); dt != 0 {
		t.Errorf("first Delta() = %f, expected 0", dt)
	}

	*now = now.Add(250 * time.Millisecond)
	if dt := c.Delta(); dt != 0.25 {
		t.Errorf("Delta() = %f, expected 0.25", dt)
	}
}

func TestClockPace(t *testing.T) {
	c, now, slept := fakeClock(10)

	c.Delta()
	*now = now.Add(30 * time.Millisecond)
	c.Pace()

	if len(*slept) != 1 || (*slept)[0] != 70*time.Millisecond {
		t.Fatalf("Pace() slept %v, expected [70ms]", *slept)
	}

	// Frame over budget: no sleep
	c.Delta()
	*now = now.Add(150 * time.Millisecond)
	c.Pace()
	if len(*slept) != 1 {
		t.Errorf("Pace() should not sleep when over budget, slept %v", *slept)
	}
}

func TestClockUnpaced(t *testing.T) {
	c, _, slept := fakeClock(0)
	c.Delta()
	c.Pace()
	if len(*slept) != 0 {
		t.Errorf("unpaced clock slept %v", *slept)
	}
}
