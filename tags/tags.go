package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Orb    = donburi.NewTag().SetName("Orb")
	Spike  = donburi.NewTag().SetName("Spike")
	Wave   = donburi.NewTag().SetName("Wave")
)
