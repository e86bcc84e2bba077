package systems_test

import (
	"testing"

	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/jjanrb/chrono-fling/systems"
)

func TestWaveRises(t *testing.T) {
	h := newHarness(t, 0)
	player, _ := h.player()
	player.State = cfg.StateIdle
	h.setWave(100)
	h.time().Speed = 0.5

	systems.UpdateWave(h.w)

	want := 100 - cfg.Wave.Speed*0.5
	if !approx(h.wave().Y, want) {
		t.Fatalf("wave y = %f, want %f", h.wave().Y, want)
	}
	if h.wave().Rect.Y.Lo != h.wave().Y {
		t.Fatalf("rect must follow the wave top")
	}
}

func TestWaveCatchUp(t *testing.T) {
	for _, state := range []cfg.PlayerState{cfg.StateTutorial, cfg.StateIdle, cfg.StateDead} {
		t.Run(state.String(), func(t *testing.T) {
			h := newHarness(t, 0)
			player, _ := h.player()
			player.State = state
			h.setWave(5000)

			for i := 0; i < 3; i++ {
				systems.UpdateWave(h.w)
				limit := h.camera().Bounds.Y.Hi + cfg.Wave.CatchUpMargin
				if h.wave().Y > limit {
					t.Fatalf("wave y = %f, exceeds %f", h.wave().Y, limit)
				}
			}
		})
	}
}

func TestWaveFallsBehindWhileAiming(t *testing.T) {
	h := newHarness(t, 0)
	h.aim(gamemath.Vector{X: 10, Y: 10})
	h.setWave(5000)

	systems.UpdateWave(h.w)

	if h.wave().Y != 5000 {
		t.Fatalf("wave must not catch up while aiming, y = %f", h.wave().Y)
	}
}

func TestWaveContainsEdges(t *testing.T) {
	h := newHarness(t, 0)
	h.setWave(50)
	wave := h.wave()

	if !systems.WaveContains(wave, gamemath.Vector{Y: 50}) {
		t.Fatalf("the top edge counts as inside")
	}
	if systems.WaveContains(wave, gamemath.Vector{Y: 49.9}) {
		t.Fatalf("points above the top edge are outside")
	}
	if !systems.WaveContains(wave, gamemath.Vector{X: -300, Y: 400}) {
		t.Fatalf("the wave spans the whole width")
	}
}
