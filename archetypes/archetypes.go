package archetypes

import (
	"github.com/jjanrb/chrono-fling/components"
	"github.com/jjanrb/chrono-fling/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Physics,
		components.Visual,
	)
	Orb = newArchetype(
		tags.Orb,
		components.Obstacle,
		components.Physics,
	)
	Spike = newArchetype(
		tags.Spike,
		components.Obstacle,
		components.Physics,
	)
	Wave = newArchetype(
		tags.Wave,
		components.Wave,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Session,
		components.Time,
		components.Input,
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
