package components

import (
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/yohamta/donburi"
)

type ObstacleData struct {
	Kind     cfg.ObstacleKind
	Rotation float64 // spikes only
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
