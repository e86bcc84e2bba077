package components

import "github.com/yohamta/donburi"

// SessionData stores per-session bookkeeping (singleton component)
type SessionData struct {
	BestHeight   int
	ReturnToMenu bool // set once the wave has covered the screen after death
	MenuFired    bool
}

var Session = donburi.NewComponentType[SessionData]()
