package components

import "github.com/yohamta/donburi"

// TimeData holds the virtual clock. Speed is the effective delta of the last
// tick (Current * Delta) and is what every simulation system integrates with.
type TimeData struct {
	Current float64
	Target  float64
	Speed   float64
	Delta   float64 // real elapsed time of the last tick
}

var Time = donburi.NewComponentType[TimeData]()
