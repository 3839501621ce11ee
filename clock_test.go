package claylake

import (
	"testing"
	"time"
)

// fakeTime is a manually advanced time source.
type fakeTime struct {
	now time.Time
}

func (f *fakeTime) Now() time.Time { return f.now }

func (f *fakeTime) advance(d time.Duration) { f.now = f.now.Add(d) }

func newFakeClock() (*Clock, *fakeTime) {
	ft := &fakeTime{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return newClockWithSource(ft.Now), ft
}

func TestNormalizedTime(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{1500 * time.Millisecond, 0.125},
		{6000 * time.Millisecond, 0.5},
		{12000 * time.Millisecond, 0},
		{13500 * time.Millisecond, 0.125},
		{36 * time.Second, 0},
	}
	for _, tt := range tests {
		assertNear(t, tt.elapsed.String(), NormalizedTime(tt.elapsed), tt.want)
	}
}

func TestNormalizedTimeRange(t *testing.T) {
	for ms := 0; ms < 30000; ms += 17 {
		v := NormalizedTime(time.Duration(ms) * time.Millisecond)
		if v < 0 || v >= 1 {
			t.Fatalf("NormalizedTime(%dms) = %v, outside [0, 1)", ms, v)
		}
	}
}

func TestClockRuns(t *testing.T) {
	c, ft := newFakeClock()
	ft.advance(1500 * time.Millisecond)
	assertNear(t, "T", c.T(), 0.125)
	ft.advance(12 * time.Second)
	assertNear(t, "T after a loop", c.T(), 0.125)
}

func TestClockPauseResume(t *testing.T) {
	c, ft := newFakeClock()
	ft.advance(3 * time.Second)
	c.Pause()
	c.Pause() // no-op
	ft.advance(5 * time.Second)
	if !c.Paused() {
		t.Fatal("expected paused")
	}
	if got := c.Elapsed(); got != 3*time.Second {
		t.Errorf("paused Elapsed = %v, want 3s", got)
	}

	c.Resume()
	ft.advance(time.Second)
	if got := c.Elapsed(); got != 4*time.Second {
		t.Errorf("resumed Elapsed = %v, want 4s", got)
	}

	c.Toggle()
	if !c.Paused() {
		t.Error("Toggle should pause a running clock")
	}
	c.Toggle()
	if c.Paused() {
		t.Error("Toggle should resume a paused clock")
	}
}

func TestClockSeek(t *testing.T) {
	c, ft := newFakeClock()
	ft.advance(time.Second)
	c.Seek(6 * time.Second)
	assertNear(t, "running seek", c.T(), 0.5)
	ft.advance(1500 * time.Millisecond)
	assertNear(t, "after advance", c.T(), 0.625)

	c.Pause()
	c.SeekT(0.3)
	if !c.Paused() {
		t.Error("SeekT should keep the clock paused")
	}
	ft.advance(time.Hour)
	if p, _ := PhaseAt(c.T()); p != PhaseSwoop {
		t.Errorf("SeekT(0.3) lands in %s, want swoop", p)
	}
	assertWithin(t, "SeekT", c.T(), 0.3, 1e-9)
}
