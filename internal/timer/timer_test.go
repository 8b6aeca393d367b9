package timer

import (
	"testing"
	"time"

	"stehauf/internal/clock"
	"stehauf/internal/logging"
	"stehauf/internal/storage"
)

func newTestMachines(t *testing.T, clk clock.Clock, session, cooldown time.Duration, onComplete CompletionFunc) (*SessionTimer, *Cooldown) {
	t.Helper()
	cd := NewCooldown(clk, storage.NewMemoryStore(), logging.Nop())
	return NewSessionTimer(clk, session, cooldown, cd, onComplete), cd
}

func TestSessionTimer_DriftFreePauseResume(t *testing.T) {
	clk := clock.NewManual(time.Date(2024, 3, 7, 9, 0, 0, 0, time.Local))
	st, _ := newTestMachines(t, clk, 15*time.Minute, 15*time.Minute, nil)

	segments := []time.Duration{
		90 * time.Second,
		2 * time.Minute,
		700 * time.Millisecond,
		5 * time.Minute,
	}

	var want time.Duration
	for i, seg := range segments {
		if !st.Start() {
			t.Fatalf("Start refused with no cooldown active")
		}
		// Wall time passing while paused must not count.
		clk.Advance(seg)
		st.Pause()
		clk.Advance(10 * time.Minute)

		want += seg
		if got := st.Elapsed(); got != want {
			t.Errorf("after segment %d: Elapsed = %v, want %v", i+1, got, want)
		}
		if st.State() != StatePaused {
			t.Errorf("expected paused state, got %v", st.State())
		}
	}
}

func TestSessionTimer_ExactlyOnceCompletion(t *testing.T) {
	clk := clock.NewManual(time.Date(2024, 3, 7, 9, 0, 0, 0, time.Local))

	completions := 0
	st, cd := newTestMachines(t, clk, 10*time.Second, 30*time.Second, nil)
	st.onComplete = func(now time.Time) { completions++ }

	st.Start()
	clk.Advance(11 * time.Second)

	for i := 0; i < 5; i++ {
		st.Tick()
	}

	if completions != 1 {
		t.Fatalf("expected exactly 1 completion, got %d", completions)
	}
	if st.State() != StateIdle {
		t.Errorf("expected idle after completion, got %v", st.State())
	}
	if !cd.IsBlocking() {
		t.Error("expected cooldown to be blocking after completion")
	}
	if got := st.RemainingSeconds(); got != 10 {
		t.Errorf("expected full duration at idle, got %d", got)
	}
}

func TestSessionTimer_CompletionFiresFromReentrantTick(t *testing.T) {
	clk := clock.NewManual(time.Date(2024, 3, 7, 9, 0, 0, 0, time.Local))

	var st *SessionTimer
	completions := 0
	st, _ = newTestMachines(t, clk, 5*time.Second, 5*time.Second, nil)
	st.onComplete = func(now time.Time) {
		completions++
		st.Tick() // re-entrant tick must not double-fire
	}

	st.Start()
	clk.Advance(6 * time.Second)
	st.Tick()

	if completions != 1 {
		t.Fatalf("expected exactly 1 completion, got %d", completions)
	}
}

func TestSessionTimer_StartRefusedDuringCooldown(t *testing.T) {
	clk := clock.NewManual(time.Date(2024, 3, 7, 9, 0, 0, 0, time.Local))
	st, cd := newTestMachines(t, clk, time.Minute, time.Minute, nil)

	cd.Begin(time.Minute)

	if st.Start() {
		t.Fatal("Start succeeded while cooldown is blocking")
	}
	if st.State() != StateIdle {
		t.Errorf("expected idle state after refused start, got %v", st.State())
	}

	clk.Advance(61 * time.Second)
	cd.Tick()

	if !st.Start() {
		t.Error("Start refused after cooldown expired")
	}
}

func TestSessionTimer_ResetLeavesCooldownUntouched(t *testing.T) {
	clk := clock.NewManual(time.Date(2024, 3, 7, 9, 0, 0, 0, time.Local))
	st, cd := newTestMachines(t, clk, time.Minute, time.Minute, nil)

	cd.Begin(time.Minute)
	st.Reset()

	if !cd.IsBlocking() {
		t.Error("Reset cleared the cooldown; lifecycles must be independent")
	}
	if st.State() != StateIdle {
		t.Errorf("expected idle after reset, got %v", st.State())
	}
}

func TestSessionTimer_RemainingSecondsCeiling(t *testing.T) {
	clk := clock.NewManual(time.Date(2024, 3, 7, 9, 0, 0, 0, time.Local))
	st, _ := newTestMachines(t, clk, 10*time.Second, 10*time.Second, nil)

	if got := st.RemainingSeconds(); got != 10 {
		t.Errorf("idle RemainingSeconds = %d, want 10", got)
	}

	st.Start()
	clk.Advance(100 * time.Millisecond)
	if got := st.RemainingSeconds(); got != 10 {
		t.Errorf("after 100ms RemainingSeconds = %d, want 10 (ceiling)", got)
	}

	clk.Advance(9400 * time.Millisecond) // 9.5s elapsed total
	if got := st.RemainingSeconds(); got != 1 {
		t.Errorf("after 9.5s RemainingSeconds = %d, want 1", got)
	}

	clk.Advance(time.Second)
	if got := st.RemainingSeconds(); got != 0 {
		t.Errorf("after overrun RemainingSeconds = %d, want 0", got)
	}
}

func TestSessionTimer_PauseFromIdleIsNoop(t *testing.T) {
	clk := clock.NewManual(time.Date(2024, 3, 7, 9, 0, 0, 0, time.Local))
	st, _ := newTestMachines(t, clk, time.Minute, time.Minute, nil)

	st.Pause()
	if st.State() != StateIdle {
		t.Errorf("Pause from idle changed state to %v", st.State())
	}
	if st.Elapsed() != 0 {
		t.Errorf("Pause from idle accumulated %v", st.Elapsed())
	}
}
