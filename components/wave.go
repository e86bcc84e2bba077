package components

import (
	"github.com/golang/geo/r2"
	"github.com/yohamta/donburi"
)

// WaveData is the rising hazard. Rect.Y.Lo mirrors Y after every update.
type WaveData struct {
	Y    float64
	Rect r2.Rect
}

var Wave = donburi.NewComponentType[WaveData]()
