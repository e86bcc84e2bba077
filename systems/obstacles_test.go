package systems_test

import (
	"bytes"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"strings"
	"testing"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/jjanrb/chrono-fling/systems"
	"github.com/jjanrb/chrono-fling/systems/factory"
	"github.com/jjanrb/chrono-fling/tags"
	"github.com/yohamta/donburi"
)

func TestRespawnStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	bounds := r2.Rect{X: r1.Interval{Lo: -50, Hi: 50}, Y: r1.Interval{Lo: -900, Hi: -300}}

	for _, kind := range []cfg.ObstacleKind{cfg.KindOrb, cfg.KindSpike} {
		t.Run(kind.String(), func(t *testing.T) {
			base := cfg.Obstacle.Orb
			if kind == cfg.KindSpike {
				base = cfg.Obstacle.Spike
			}

			for i := 0; i < 500; i++ {
				body := components.NewPhysics(gamemath.Vector{}, base.BaseRadius)
				obstacle := components.ObstacleData{Kind: kind}
				systems.Respawn(&body, &obstacle, bounds, rng)

				if !bounds.ContainsPoint(gamemath.ToPoint(body.Position)) {
					t.Fatalf("position %v outside %v", body.Position, bounds)
				}
				if body.Scale() < base.ScaleMin || body.Scale() > base.ScaleMax {
					t.Fatalf("scale %f outside [%f, %f]", body.Scale(), base.ScaleMin, base.ScaleMax)
				}
				if !approx(body.ColliderRadius(), base.BaseRadius*body.Scale()) {
					t.Fatalf("radius %f does not follow scale %f", body.ColliderRadius(), body.Scale())
				}
				if kind == cfg.KindSpike && (obstacle.Rotation < 0 || obstacle.Rotation >= 2*math.Pi) {
					t.Fatalf("rotation %f outside [0, 2pi)", obstacle.Rotation)
				}
				if kind == cfg.KindOrb && obstacle.Rotation != 0 {
					t.Fatalf("orbs are not rotated")
				}
			}
		})
	}
}

func TestUpdateObstaclesRecycles(t *testing.T) {
	h := newHarness(t, 0)
	h.setWave(200)

	behind := spawnObstacle(t, h.w, cfg.KindSpike, gamemath.Vector{Y: 200 + cfg.Obstacle.RecycleMargin + 1})
	edge := spawnObstacle(t, h.w, cfg.KindOrb, gamemath.Vector{Y: 200 + cfg.Obstacle.RecycleMargin})

	systems.UpdateObstacles(h.w, h.deps)

	next := h.camera().NextBounds
	if p := components.Physics.Get(behind).Position; !next.ContainsPoint(gamemath.ToPoint(p)) {
		t.Fatalf("obstacle behind the wave must move into next bounds, at %v", p)
	}
	if p := components.Physics.Get(edge).Position; p.Y != 200+cfg.Obstacle.RecycleMargin {
		t.Fatalf("obstacle at the margin must stay, moved to %v", p)
	}
	if got := h.pendingSFX(); len(got) != 0 {
		t.Fatalf("recycling is silent, got %v", got)
	}
}

func TestResetObjectsKeepsPersonalSpace(t *testing.T) {
	h := newHarness(t, 0)
	factory.CreateObstacles(h.w)
	systems.ResetObjects(h.w, h.deps)

	_, player := h.player()
	personal := player.ColliderRadius() * cfg.Player.PersonalSpace
	bounds := h.camera().Bounds

	count := 0
	each := func(e *donburi.Entry) {
		count++
		body := components.Physics.Get(e)
		if !bounds.ContainsPoint(gamemath.ToPoint(body.Position)) {
			t.Fatalf("obstacle seeded at %v outside %v", body.Position, bounds)
		}
		if gamemath.PointInCircle(player.Position, personal, body.Position) {
			t.Fatalf("obstacle at %v inside the player's personal space", body.Position)
		}
	}
	tags.Orb.Each(h.w, each)
	tags.Spike.Each(h.w, each)

	if count != cfg.Spawn.OrbCount+cfg.Spawn.SpikeCount {
		t.Fatalf("seeded %d obstacles", count)
	}
}

func TestResetObjectsFallsBack(t *testing.T) {
	override(t, &cfg.Player.PersonalSpace, 1000)

	var logged bytes.Buffer
	log.SetOutput(&logged)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	h := newHarness(t, 0)
	orb := spawnObstacle(t, h.w, cfg.KindOrb, gamemath.Vector{})
	systems.ResetObjects(h.w, h.deps)

	p := components.Physics.Get(orb).Position
	if !h.camera().NextBounds.ContainsPoint(gamemath.ToPoint(p)) {
		t.Fatalf("unplaceable obstacle must fall back to next bounds, at %v", p)
	}

	// A personal space larger than one screen covers the next bounds too.
	if !strings.Contains(logged.String(), "inside the player's personal space") {
		t.Fatalf("fallback inside personal space was not reported, log: %q", logged.String())
	}
}

func TestResetObjectsFallbackClearOfPersonalSpace(t *testing.T) {
	override(t, &cfg.Spawn.MaxAttempts, 0)

	var logged bytes.Buffer
	log.SetOutput(&logged)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	h := newHarness(t, 0)
	orb := spawnObstacle(t, h.w, cfg.KindOrb, gamemath.Vector{})
	systems.ResetObjects(h.w, h.deps)

	_, player := h.player()
	p := components.Physics.Get(orb).Position
	if gamemath.PointInCircle(player.Position, player.ColliderRadius()*cfg.Player.PersonalSpace, p) {
		t.Fatalf("default tuning fallback at %v landed in personal space", p)
	}
	if strings.Contains(logged.String(), "inside the player's personal space") {
		t.Fatalf("unexpected personal space warning: %q", logged.String())
	}
}

func TestResetObjectsIsSeeded(t *testing.T) {
	positions := func() []gamemath.Vector {
		h := newHarness(t, 0)
		factory.CreateObstacles(h.w)
		systems.ResetObjects(h.w, h.deps)

		var out []gamemath.Vector
		tags.Orb.Each(h.w, func(e *donburi.Entry) {
			out = append(out, components.Physics.Get(e).Position)
		})
		return out
	}

	a, b := positions(), positions()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different layouts: %v vs %v", a[i], b[i])
		}
	}
}
