package systems_test

import (
	"math"
	"testing"

	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/jjanrb/chrono-fling/systems"
)

func TestFlingStartsPulse(t *testing.T) {
	h := newHarness(t, 0)
	h.aim(gamemath.Vector{X: 100, Y: 100})
	h.release(gamemath.Vector{X: 100, Y: 0})

	visual := components.Visual.Get(h.playerEntry())
	if visual.Pulse == nil {
		t.Fatalf("a fling must start the pulse")
	}

	// Run the pulse to completion at normal speed.
	h.time().Delta = cfg.Time.TickSeconds
	ticks := int(float64(cfg.SquashStretch.PulseDuration)/cfg.Time.TickSeconds) + 2
	for i := 0; i < ticks; i++ {
		systems.UpdatePlayer(h.w, h.deps)
	}
	if visual.Pulse != nil || visual.PulseValue != 1 {
		t.Fatalf("pulse must settle at 1, got %f", visual.PulseValue)
	}
}

func TestStretchFollowsVelocity(t *testing.T) {
	h := newHarness(t, 0)
	_, body := h.player()
	visual := components.Visual.Get(h.playerEntry())

	body.Velocity = gamemath.Vector{X: 0, Y: -cfg.SquashStretch.StretchSpeed * 2}
	systems.UpdatePlayer(h.w, h.deps)

	stretch := 1 + cfg.SquashStretch.MaxStretch
	if !approx(visual.ScaleY, stretch) || !approx(visual.ScaleX, 1/stretch) {
		t.Fatalf("scale = (%f, %f), want (%f, %f)", visual.ScaleX, visual.ScaleY, 1/stretch, stretch)
	}
	// Moving straight up points the sprite's top along the velocity.
	if !approx(math.Mod(visual.Rotation+2*math.Pi, 2*math.Pi), 0) {
		t.Fatalf("rotation = %f, want 0", visual.Rotation)
	}
}
