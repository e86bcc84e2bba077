package scenes

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/render"
	"github.com/jjanrb/chrono-fling/sound"
	"github.com/jjanrb/chrono-fling/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Host carries the collaborators shared by every scene
type Host struct {
	Sound *sound.Player
	Store systems.BestHeightStore
}

func (h *Host) updateAudioKeys() {
	if justPressed(actionMute) {
		h.Sound.ToggleMute()
	}
	if justPressed(actionVolumeDown) {
		h.Sound.SetVolume(h.Sound.Volume() - cfg.Audio.VolumeStep)
	}
	if justPressed(actionVolumeUp) {
		h.Sound.SetVolume(h.Sound.Volume() + cfg.Audio.VolumeStep)
	}
}

// MenuScene displays the title and the best height
type MenuScene struct {
	sceneChanger SceneChanger
	host         *Host
	pointer      pointer
	best         int
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, host *Host) *MenuScene {
	return &MenuScene{
		sceneChanger: sc,
		host:         host,
		best:         host.Store.LoadBestHeight(),
	}
}

func (ms *MenuScene) Update() {
	ms.pointer.update()

	if justPressed(actionBack) {
		os.Exit(0)
	}
	ms.host.updateAudioKeys()
	if !ms.pointer.pressed && !justPressed(actionStart) {
		return
	}
	ms.host.Sound.Play(cfg.SoundSwipe)
	ms.sceneChanger.ChangeScene(NewGameScene(ms.sceneChanger, ms.host))
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	render.DrawCenteredText(screen, "CHRONO FLING", cfg.Menu.TitleY, cfg.Menu.TitleColor)
	render.DrawCenteredText(screen, "Tap to play", cfg.Menu.HintY, cfg.Menu.TextColor)
	render.DrawCenteredText(screen, "M mutes, Esc quits", cfg.Menu.HintY+20, cfg.Menu.TextColor)
	if ms.best > 0 {
		render.DrawCenteredText(screen, fmt.Sprintf("Best: %dm", ms.best), cfg.Menu.BestY, cfg.Menu.TextColor)
	}
}
