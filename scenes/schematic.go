package scenes

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/schematic/assets"
	cfg "github.com/automoto/schematic/config"
	"github.com/automoto/schematic/fonts"
	"github.com/automoto/schematic/prefabs"
	"github.com/automoto/schematic/shapes"
	"github.com/automoto/schematic/systems"
	"github.com/automoto/schematic/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Plugin adds a library's startup work to a scene.
type Plugin interface {
	Build(r shapes.StartupRegistrar)
}

// SchematicScene shows one rounded panel under a point light, viewed through
// an orthographic camera that the user pans and zooms.
type SchematicScene struct {
	ecs      *ecs.ECS
	rig      *systems.CameraRig
	plugins  []Plugin
	startup  []ecs.System
	reloader *systems.SceneReloader
	once     sync.Once
}

// NewSchematicScene creates the scene. A non-nil watcher enables hot reload
// of the scene prefab.
func NewSchematicScene(watcher *prefabs.Watcher) *SchematicScene {
	return &SchematicScene{
		plugins:  []Plugin{shapes.Plugin{}},
		reloader: &systems.SceneReloader{Watcher: watcher},
	}
}

// AddStartupSystem queues a system that runs once after the world is built.
func (s *SchematicScene) AddStartupSystem(system ecs.System) {
	s.startup = append(s.startup, system)
}

func (s *SchematicScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *SchematicScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// Quitting reports whether the user asked to leave.
func (s *SchematicScene) Quitting() bool {
	if s.ecs == nil {
		return false
	}
	return systems.GetOrCreateSettings(s.ecs).Quit
}

// Close saves the camera view and stops watching prefabs.
func (s *SchematicScene) Close() {
	if s.ecs != nil && s.rig != nil {
		if err := systems.SaveCameraView(s.ecs.World, s.rig.Camera); err != nil {
			log.Printf("Warning: Could not save camera view: %v", err)
		}
	}
	if s.reloader.Watcher != nil {
		if err := s.reloader.Watcher.Close(); err != nil {
			log.Printf("Warning: Could not close prefab watcher: %v", err)
		}
	}
}

func (s *SchematicScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		// Bloom is skipped without its shader.
		log.Printf("Warning: Could not load shaders: %v", err)
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load fonts: %v", err)
	}

	for _, p := range s.plugins {
		p.Build(s)
	}

	scene, err := prefabs.LoadSceneSpec()
	if err != nil {
		panic(fmt.Errorf("failed to load scene: %w", err))
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	camera := factory.CreateCamera(ecs)
	if cfg.Debug.RestoreView {
		systems.RestoreCameraView(camera)
	}
	factory.CreateLight(ecs, scene.Light)
	if _, err := factory.CreateShape(ecs, scene.Shape, prefabs.SceneFile); err != nil {
		panic(fmt.Errorf("failed to build %s: %w", scene.Shape.Name, err))
	}
	factory.CreateSettings(ecs)

	s.rig = systems.NewCameraRig(camera.Entity())

	// Input must be queued before the rig drains it
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(s.rig.Update)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(s.reloader.Update)

	ecs.AddRenderer(cfg.Default, systems.DrawMeshes)
	ecs.AddRenderer(cfg.Default, systems.DrawBloom)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	s.ecs = ecs

	for _, system := range s.startup {
		system(s.ecs)
	}
}
