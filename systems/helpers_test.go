package systems_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/jjanrb/chrono-fling/systems"
	"github.com/jjanrb/chrono-fling/systems/factory"
	"github.com/jjanrb/chrono-fling/tags"
	"github.com/yohamta/donburi"
)

const epsilon = 1e-9

type harness struct {
	w     donburi.World
	deps  *systems.Deps
	store *systems.MemoryStore
}

// newHarness builds a session with a player at the origin, a camera on it
// and the wave StartOffset below. No obstacles are spawned.
func newHarness(t *testing.T, best int) *harness {
	t.Helper()

	w := donburi.NewWorld()
	factory.CreateSession(w, best)
	factory.CreateCamera(w, gamemath.Vector{})
	factory.CreatePlayer(w, gamemath.Vector{})
	factory.CreateWave(w, cfg.Wave.StartOffset)

	store := &systems.MemoryStore{Best: best}
	return &harness{
		w:     w,
		store: store,
		deps: &systems.Deps{
			Rand:  rand.New(rand.NewPCG(1, 2)),
			Store: store,
		},
	}
}

func (h *harness) player() (*components.PlayerData, *components.PhysicsData) {
	entry, ok := tags.Player.First(h.w)
	if !ok {
		panic("no player")
	}
	return components.Player.Get(entry), components.Physics.Get(entry)
}

func (h *harness) camera() *components.CameraData {
	entry, _ := components.Camera.First(h.w)
	return components.Camera.Get(entry)
}

func (h *harness) wave() *components.WaveData {
	entry, _ := tags.Wave.First(h.w)
	return components.Wave.Get(entry)
}

func (h *harness) time() *components.TimeData {
	entry, _ := components.Time.First(h.w)
	return components.Time.Get(entry)
}

func (h *harness) session() *components.SessionData {
	entry, _ := components.Session.First(h.w)
	return components.Session.Get(entry)
}

// pendingSFX drains the sound queue.
func (h *harness) pendingSFX() []cfg.SoundID {
	rec := &recordingSounder{}
	systems.FlushAudio(h.w, rec)
	return rec.played
}

func (h *harness) setWave(y float64) {
	wave := h.wave()
	wave.Y = y
	wave.Rect = systems.WaveRect(y)
}

// aim leaves the tutorial and presses at p.
func (h *harness) aim(p gamemath.Vector) {
	player, _ := h.player()
	if player.State == cfg.StateTutorial {
		systems.Begin(h.w, h.deps)
	}
	systems.LatchPress(h.w, p)
	systems.OnAimStart(h.w, h.deps)
}

func (h *harness) release(p gamemath.Vector) {
	systems.LatchRelease(h.w, p)
	systems.OnFlingRelease(h.w, h.deps)
}

type recordingSounder struct {
	played []cfg.SoundID
}

func (r *recordingSounder) Play(sound cfg.SoundID) {
	r.played = append(r.played, sound)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func approxVec(a, b gamemath.Vector) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func spawnObstacle(t *testing.T, w donburi.World, kind cfg.ObstacleKind, pos gamemath.Vector) *donburi.Entry {
	t.Helper()
	if kind == cfg.KindSpike {
		return factory.CreateSpike(w, pos)
	}
	return factory.CreateOrb(w, pos)
}

// override sets *p to v for the duration of the test.
func override[T any](t *testing.T, p *T, v T) {
	t.Helper()
	old := *p
	*p = v
	t.Cleanup(func() { *p = old })
}

func (h *harness) playerEntry() *donburi.Entry {
	entry, _ := tags.Player.First(h.w)
	return entry
}
