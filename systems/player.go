package systems

import (
	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/jjanrb/chrono-fling/tags"
	"github.com/yohamta/donburi"
)

func UpdatePlayer(w donburi.World, d *Deps) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}

	player := components.Player.Get(playerEntry)
	body := components.Physics.Get(playerEntry)

	updateVisual(components.Visual.Get(playerEntry), body, timeData(w).Delta)

	body.ApplyForce(gamemath.Vector{Y: cfg.Physics.Gravity})
	bounceOffWalls(w, body)

	switch player.State {
	case cfg.StateDead:
		wave := waveData(w)
		if wave.Y < cameraData(w).Bounds.Y.Lo {
			fire(w, d, playerEntry, EventWaveOvertook)
		}
	case cfg.StateIdle:
		updateAlive(w, d, playerEntry)
	case cfg.StateAiming:
		if updateAlive(w, d, playerEntry) {
			updateAiming(w, player, body)
		}
	case cfg.StateTutorial:
		FreezeTime(w)
	}

	if player.State != cfg.StateAiming {
		SetCameraTarget(cameraData(w), body.Position, cfg.Camera.FollowZoom, cfg.Camera.FollowFactor)
	}
}

// updateAlive runs the checks shared by Idle and Aiming. It returns false
// when the player died this tick.
func updateAlive(w donburi.World, d *Deps, playerEntry *donburi.Entry) bool {
	body := components.Physics.Get(playerEntry)
	if WaveContains(waveData(w), body.Position) {
		fire(w, d, playerEntry, EventWaveHit)
		return false
	}
	handleObstacleCollisions(w, d, playerEntry)
	return true
}

func updateAiming(w donburi.World, player *components.PlayerData, body *components.PhysicsData) {
	input := inputData(w)
	player.FlingForce = input.Down.Sub(input.Pointer)
	player.InvalidFling = !FlingValid(player.FlingForce, player.FlingCharge)
	player.Indicators = LayoutIndicators(player.FlingForce, player.InvalidFling, player.Indicators)

	target := body.Position.Add(AimTarget(player.Indicators))
	SetCameraTarget(cameraData(w), target, cfg.Camera.AimZoom, cfg.Camera.AimFactor)
}

// bounceOffWalls keeps the player inside the visible columns with a
// perfectly elastic horizontal bounce.
func bounceOffWalls(w donburi.World, body *components.PhysicsData) {
	bounds := cameraData(w).Bounds.X
	switch {
	case body.Position.X < bounds.Lo:
		body.Position.X = bounds.Lo
		body.Velocity.X = -body.Velocity.X
	case body.Position.X > bounds.Hi:
		body.Position.X = bounds.Hi
		body.Velocity.X = -body.Velocity.X
	}
}

// FlingValid reports whether a release with this drag and charge launches.
// The aim indicator uses the same predicate for its invalid tint.
func FlingValid(force gamemath.Vector, charge int) bool {
	return charge > 0 && gamemath.LengthSquared(force) > cfg.Player.FlingForceMin
}

// OnAimStart handles a pointer press. The press position must already be
// latched in the Input component.
func OnAimStart(w donburi.World, d *Deps) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	if !fire(w, d, playerEntry, EventAimStart) {
		return
	}

	player := components.Player.Get(playerEntry)
	player.FlingForce = gamemath.Vector{}
	player.InvalidFling = !FlingValid(player.FlingForce, player.FlingCharge)
	player.Indicators = LayoutIndicators(player.FlingForce, player.InvalidFling, player.Indicators)
}

// OnFlingRelease handles a pointer release. The release position must
// already be latched in the Input component. Releases outside Aiming are
// ignored.
func OnFlingRelease(w donburi.World, d *Deps) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.State != cfg.StateAiming {
		return
	}

	input := inputData(w)
	player.FlingForce = input.Down.Sub(input.Up)

	if !FlingValid(player.FlingForce, player.FlingCharge) {
		fire(w, d, playerEntry, EventFlingCancelled)
		return
	}
	if !fire(w, d, playerEntry, EventFling) {
		return
	}

	body := components.Physics.Get(playerEntry)
	player.FlingCharge--
	body.Velocity = player.FlingForce.MulScalar(cfg.Player.FlingVelocityScale)
	startPulse(components.Visual.Get(playerEntry))
}

// Begin leaves the tutorial.
func Begin(w donburi.World, d *Deps) {
	if playerEntry, ok := tags.Player.First(w); ok {
		fire(w, d, playerEntry, EventBegin)
	}
}

// fire runs ev through the state machine and applies the resulting effects.
// It returns false when ev was not legal in the current state.
func fire(w donburi.World, d *Deps, playerEntry *donburi.Entry, ev Event) bool {
	player := components.Player.Get(playerEntry)
	to, effects, ok := Transition(player.State, ev)
	if !ok {
		return false
	}
	player.State = to

	for _, effect := range effects {
		switch effect.Kind {
		case EffectSound:
			PlaySFX(w, effect.Sound)
		case EffectTimeScale:
			RequestTimeScale(w, effect.TimeScale, effect.Snap)
		case EffectIndicator:
			player.IndicatorVisible = effect.Visible
			if !effect.Visible {
				player.InvalidFling = false
			}
		case EffectRecordDeath:
			recordDeath(w, d, player, components.Physics.Get(playerEntry))
		case EffectReturnToMenu:
			sessionData(w).ReturnToMenu = true
		}
	}
	return true
}

func inputData(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
	}
	return components.Input.Get(entry)
}

func sessionData(w donburi.World) *components.SessionData {
	entry, ok := components.Session.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Session))
	}
	return components.Session.Get(entry)
}
