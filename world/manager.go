package world

import (
	"math/rand/v2"

	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/jjanrb/chrono-fling/systems"
	"github.com/jjanrb/chrono-fling/systems/factory"
	"github.com/jjanrb/chrono-fling/tags"
	"github.com/yohamta/donburi"
)

// Options configures an ObjectManager. Zero values fall back to a silent
// sounder, an in-memory store and a PCG seeded from config.Debug.Seed
// (random when 0).
type Options struct {
	Sound systems.Sounder
	Store systems.BestHeightStore
	Rand  gamemath.Float64Source

	// OnReturnToMenu is called once per session after the wave overtook
	// the dead player's screen.
	OnReturnToMenu func()
}

// ObjectManager owns one game session: the donburi world, its entities and
// the per-frame system order.
type ObjectManager struct {
	world donburi.World
	deps  systems.Deps
	sound systems.Sounder

	onReturnToMenu func()
	bestLoaded     bool
	best           int
}

func NewObjectManager(opts Options) *ObjectManager {
	m := &ObjectManager{
		sound:          opts.Sound,
		onReturnToMenu: opts.OnReturnToMenu,
		deps: systems.Deps{
			Rand:  opts.Rand,
			Store: opts.Store,
		},
	}
	if m.sound == nil {
		m.sound = systems.NopSounder{}
	}
	if m.deps.Store == nil {
		m.deps.Store = &systems.MemoryStore{}
	}
	if m.deps.Rand == nil {
		seed := cfg.Debug.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		m.deps.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	m.Reset()
	return m
}

// Reset throws away the current session and seeds a new one in the
// tutorial state. The best height is read from the store only once.
func (m *ObjectManager) Reset() {
	if !m.bestLoaded {
		m.best = m.deps.Store.LoadBestHeight()
		m.bestLoaded = true
	} else if m.world != nil {
		m.best = m.BestHeight()
	}

	m.world = donburi.NewWorld()
	factory.CreateLevel(m.world, m.best)
	systems.ResetObjects(m.world, &m.deps)
}

// Update advances the session by dt seconds of real time.
func (m *ObjectManager) Update(dt float64) {
	w := m.world

	systems.UpdateTimeScale(w, dt)
	systems.UpdatePhysics(w)
	systems.UpdatePlayer(w, &m.deps)
	systems.UpdateWave(w)
	systems.UpdateObstacles(w, &m.deps)
	systems.UpdateCamera(w)
	systems.FlushAudio(w, m.sound)

	if systems.TakeReturnToMenu(w) && m.onReturnToMenu != nil {
		m.onReturnToMenu()
	}
}

// SetPointer records the pointer position in canvas pixels.
func (m *ObjectManager) SetPointer(p gamemath.Vector) {
	systems.SetPointer(m.world, p)
}

// OnAimStart handles a press at p (canvas pixels).
func (m *ObjectManager) OnAimStart(p gamemath.Vector) {
	systems.LatchPress(m.world, p)
	systems.OnAimStart(m.world, &m.deps)
	systems.FlushAudio(m.world, m.sound)
}

// OnFlingRelease handles a release at p (canvas pixels).
func (m *ObjectManager) OnFlingRelease(p gamemath.Vector) {
	systems.LatchRelease(m.world, p)
	systems.OnFlingRelease(m.world, &m.deps)
	systems.FlushAudio(m.world, m.sound)
}

// Begin leaves the tutorial.
func (m *ObjectManager) Begin() {
	systems.Begin(m.world, &m.deps)
	systems.FlushAudio(m.world, m.sound)
}

// Draw emits the session's sprites back to front.
func (m *ObjectManager) Draw(draw func(systems.Sprite)) {
	systems.Draw(m.world, draw)
}

func (m *ObjectManager) World() donburi.World {
	return m.world
}

func (m *ObjectManager) Player() (*components.PlayerData, *components.PhysicsData) {
	entry, ok := tags.Player.First(m.world)
	if !ok {
		return nil, nil
	}
	return components.Player.Get(entry), components.Physics.Get(entry)
}

func (m *ObjectManager) Camera() *components.CameraData {
	entry, ok := components.Camera.First(m.world)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}

func (m *ObjectManager) Wave() *components.WaveData {
	entry, ok := tags.Wave.First(m.world)
	if !ok {
		return nil
	}
	return components.Wave.Get(entry)
}

func (m *ObjectManager) Time() *components.TimeData {
	entry, ok := components.Time.First(m.world)
	if !ok {
		return nil
	}
	return components.Time.Get(entry)
}

// BestHeight is the best height known to this session, including a record
// set by the current run.
func (m *ObjectManager) BestHeight() int {
	entry, ok := components.Session.First(m.world)
	if !ok {
		return m.best
	}
	return components.Session.Get(entry).BestHeight
}
