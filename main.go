package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/schematic/config"
	"github.com/automoto/schematic/prefabs"
	"github.com/automoto/schematic/scenes"
	"github.com/automoto/schematic/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Quitting() bool
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(watcher *prefabs.Watcher) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewSchematicScene(watcher),
	}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || g.scene.Quitting() {
		g.scene.Close()
		return ebiten.Termination
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
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}
	debug := flag.Bool("debug", config.Debug.Overlay, "Show the camera HUD on start (toggle with F3)")
	restore := flag.Bool("restore", config.Debug.RestoreView, "Restore the last saved camera view")
	watch := flag.Bool("watch", config.Debug.Watch, "Reload prefabs when they change on disk")
	dir := flag.String("prefabs", config.Debug.PrefabsDir, "Directory searched before the embedded prefabs")
	flag.Parse()

	config.Debug.Overlay = *debug
	config.Debug.RestoreView = *restore
	config.Debug.Watch = *watch
	config.Debug.PrefabsDir = *dir
	prefabs.Dir = config.Debug.PrefabsDir

	if err := systems.InitPersistence("schematic"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	var watcher *prefabs.Watcher
	if config.Debug.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", prefabs.Dir, err)
		} else {
			watcher = w
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewGame(watcher)); err != nil {
		log.Fatal(err)
	}
}
