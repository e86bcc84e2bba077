package components

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // world point at the viewport center
	Zoom     float64
	Viewport math.Vec2 // canvas size in pixels

	TargetPosition math.Vec2
	TargetZoom     float64
	Factor         float64

	Bounds           r2.Rect // visible world rect
	NextBounds       r2.Rect // Bounds shifted up by one screen
	HorizontalBounds r1.Interval
}

var Camera = donburi.NewComponentType[CameraData]()
