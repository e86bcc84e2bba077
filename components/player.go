package components

import (
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/yohamta/donburi"
)

// IndicatorSlot is one marker of the aim indicator chain, in player-local space.
type IndicatorSlot struct {
	Offset gamemath.Vector
	Scale  float64
	Alpha  float64
	Count  bool // the middle slot that displays the remaining charge
}

type PlayerData struct {
	State       cfg.PlayerState
	FlingCharge int
	FlingForce  gamemath.Vector // press minus current/release position, canvas space

	Indicators       []IndicatorSlot
	IndicatorVisible bool
	InvalidFling     bool

	DeathHeight int
	HasDied     bool
}

var Player = donburi.NewComponentType[PlayerData]()
