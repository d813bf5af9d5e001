package game

import (
	"testing"
	"time"
)

func TestCountdownExpires(t *testing.T) {
	fired := make(chan struct{})
	c := NewCountdownScheduler(10*time.Millisecond, func(uint64) { close(fired) })

	c.Start()
	if !c.Active() {
		t.Fatalf("expected countdown to be active after start")
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatalf("countdown did not expire")
	}
	if c.Active() {
		t.Errorf("expected countdown to be inactive after expiry")
	}
}

func TestCountdownCancelPreventsExpiry(t *testing.T) {
	fired := make(chan struct{})
	c := NewCountdownScheduler(30*time.Millisecond, func(uint64) { close(fired) })

	c.Start()
	if !c.Cancel() {
		t.Fatalf("expected cancel of a pending countdown to report true")
	}
	if c.Active() {
		t.Errorf("expected countdown to be inactive after cancel")
	}

	select {
	case <-fired:
		t.Fatalf("cancelled countdown still expired")
	case <-time.After(100 * time.Millisecond):
	}

	if c.Cancel() {
		t.Errorf("expected cancel without a pending countdown to report false")
	}
}

func TestCountdownRestart(t *testing.T) {
	var fired int
	done := make(chan struct{})
	c := NewCountdownScheduler(20*time.Millisecond, func(uint64) {
		fired++
		close(done)
	})

	c.Start()
	c.Start()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("restarted countdown did not expire")
	}
	time.Sleep(50 * time.Millisecond)
	if fired != 1 {
		t.Errorf("expire fired %d times, want 1", fired)
	}
}

func TestCountdownGenerationAdvances(t *testing.T) {
	c := NewCountdownScheduler(time.Hour, func(uint64) {})
	g0 := c.Generation()

	c.Start()
	if got := c.Generation(); got != g0+1 {
		t.Fatalf("generation after start = %d, want %d", got, g0+1)
	}
	c.Cancel()
	if got := c.Generation(); got != g0+2 {
		t.Fatalf("generation after cancel = %d, want %d", got, g0+2)
	}
	// Cancel with nothing pending still invalidates a fired-but-unapplied
	// expiry, so it advances the generation too.
	c.Cancel()
	if got := c.Generation(); got != g0+3 {
		t.Fatalf("generation after idle cancel = %d, want %d", got, g0+3)
	}
}

func TestCountdownExpireReceivesArmedGeneration(t *testing.T) {
	got := make(chan uint64, 1)
	c := NewCountdownScheduler(10*time.Millisecond, func(gen uint64) { got <- gen })

	c.Start()
	armed := c.Generation()

	select {
	case gen := <-got:
		if gen != armed {
			t.Errorf("expire got generation %d, want %d", gen, armed)
		}
	case <-time.After(time.Second):
		t.Fatalf("countdown did not expire")
	}
}
