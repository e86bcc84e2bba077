package factory

import (
	"github.com/jjanrb/chrono-fling/archetypes"
	"github.com/jjanrb/chrono-fling/components"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/jjanrb/chrono-fling/systems"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World, position gamemath.Vector) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, systems.NewCameraData(position))
	return camera
}
