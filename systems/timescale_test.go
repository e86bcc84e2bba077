package systems_test

import (
	"testing"

	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/systems"
)

func TestTimeScaleEasesTowardTarget(t *testing.T) {
	h := newHarness(t, 0)
	tm := h.time()
	tm.Current, tm.Target = 1, 1

	systems.RequestTimeScale(h.w, cfg.Time.AimScale, false)
	if tm.Current != 1 {
		t.Fatalf("a request without snap must not move the current scale")
	}

	prev := tm.Current
	for i := 0; i < 20; i++ {
		systems.UpdateTimeScale(h.w, cfg.Time.TickSeconds)
		if tm.Current >= prev || tm.Current < cfg.Time.AimScale {
			t.Fatalf("tick %d: current %f did not ease from %f toward %f", i, tm.Current, prev, cfg.Time.AimScale)
		}
		prev = tm.Current
	}
}

func TestTimeScaleSnap(t *testing.T) {
	h := newHarness(t, 0)
	tm := h.time()
	tm.Current, tm.Target = 0.02, 0.02

	systems.RequestTimeScale(h.w, 1, true)

	if !approx(tm.Current, 0.51) || tm.Target != 1 {
		t.Fatalf("current = %f target = %f, want 0.51 and 1", tm.Current, tm.Target)
	}
}

func TestTimeSpeedScalesRealDelta(t *testing.T) {
	h := newHarness(t, 0)
	tm := h.time()
	tm.Current, tm.Target = 0.5, 0.5

	systems.UpdateTimeScale(h.w, 0.25)
	if !approx(tm.Speed, 0.125) || tm.Delta != 0.25 {
		t.Fatalf("speed = %f delta = %f", tm.Speed, tm.Delta)
	}
}
