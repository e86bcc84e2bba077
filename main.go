package main

import (
	"flag"
	"image"
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/scenes"
	"github.com/jjanrb/chrono-fling/sound"
	"github.com/jjanrb/chrono-fling/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene

	tuningPath    string
	tuningChanged atomic.Bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(host *scenes.Host, tuningPath string) *Game {
	g := &Game{
		bounds:     image.Rectangle{},
		tuningPath: tuningPath,
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewGameScene(g, host)
	} else {
		g.scene = scenes.NewMenuScene(g, host)
	}

	return g
}

func (g *Game) Update() error {
	// Tuning edits apply here so the core never sees a half-written config.
	if g.tuningChanged.Swap(false) {
		if err := config.LoadOverrides(g.tuningPath); err != nil {
			log.Printf("Warning: Could not reload tuning: %v", err)
		} else {
			log.Printf("Reloaded tuning from %s", g.tuningPath)
		}
	}

	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "tuning.yaml", "YAML file overriding the default tuning")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	seed := flag.Uint64("seed", 0, "seed for obstacle placement, 0 picks one at random")
	skipMenu := flag.Bool("skip-menu", false, "start directly in the game")
	flag.Parse()

	config.Debug.Seed = *seed
	config.Debug.SkipMenu = *skipMenu

	if err := config.LoadOverrides(*tuningPath); err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Chrono Fling")

	// Initialize persistence, falling back to an in-memory best height
	var store systems.BestHeightStore = &systems.MemoryStore{}
	if gdataStore, err := systems.OpenGDataStore("chrono-fling"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		store = gdataStore
	}

	player := sound.NewPlayer()
	player.Preload()

	game := NewGame(&scenes.Host{Sound: player, Store: store}, *tuningPath)

	if *watch {
		stop, err := config.WatchOverrides(*tuningPath, func() { game.tuningChanged.Store(true) })
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			defer func() { _ = stop() }()
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
