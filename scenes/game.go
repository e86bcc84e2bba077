package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/render"
	"github.com/jjanrb/chrono-fling/world"
)

// GameScene runs one session of the climb
type GameScene struct {
	objects      *world.ObjectManager
	sceneChanger SceneChanger
	host         *Host
	pointer      pointer
	once         sync.Once
	done         bool
}

func NewGameScene(sc SceneChanger, host *Host) *GameScene {
	return &GameScene{sceneChanger: sc, host: host}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)

	gs.pointer.update()
	gs.objects.SetPointer(gs.pointer.position)

	gs.host.updateAudioKeys()
	if justPressed(actionBack) {
		gs.host.Sound.Play(cfg.SoundBack)
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.host))
		return
	}

	player, _ := gs.objects.Player()
	switch {
	case player.State == cfg.StateTutorial && (gs.pointer.pressed || justPressed(actionStart)):
		gs.objects.Begin()
	case gs.pointer.pressed:
		gs.objects.OnAimStart(gs.pointer.position)
	case gs.pointer.released:
		gs.objects.OnFlingRelease(gs.pointer.position)
	}

	gs.objects.Update(cfg.Time.TickSeconds)

	if gs.done {
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.host))
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.objects == nil {
		return
	}
	render.DrawWorld(screen, gs.objects)
}

func (gs *GameScene) configure() {
	gs.objects = world.NewObjectManager(world.Options{
		Sound:          gs.host.Sound,
		Store:          gs.host.Store,
		OnReturnToMenu: func() { gs.done = true },
	})
}
