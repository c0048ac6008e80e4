package systems

import (
	"fmt"
	"log"

	"github.com/automoto/schematic/components"
	"github.com/automoto/schematic/prefabs"
	"github.com/automoto/schematic/systems/factory"
	"github.com/automoto/schematic/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneReloader rebuilds shapes and lights when their prefab changes on
// disk. The camera is never touched.
type SceneReloader struct {
	Watcher *prefabs.Watcher
}

// Update drains pending watcher events without blocking.
func (r *SceneReloader) Update(e *ecs.ECS) {
	if r.Watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-r.Watcher.Events:
			if !ok {
				r.Watcher = nil
				return
			}
			if err := ReloadScene(e, name); err != nil {
				log.Printf("Warning: Could not reload %s: %v", name, err)
			}
		case err, ok := <-r.Watcher.Errors:
			if ok {
				log.Printf("Warning: Prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}

// ReloadScene re-reads the scene prefab and applies it to every shape built
// from it. A prefab that fails to parse or tessellate leaves the world as it
// was.
func ReloadScene(e *ecs.ECS, name string) error {
	if name != prefabs.SceneFile {
		return nil
	}
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		return err
	}
	mesh, err := spec.Shape.Tessellate()
	if err != nil {
		return err
	}

	var reloaded int
	tags.Shape.Each(e.World, func(entry *donburi.Entry) {
		if components.Mesh.Get(entry).Prefab != name {
			return
		}
		factory.ApplyShapeSpec(entry, spec.Shape, name, mesh)
		reloaded++
	})

	tags.Light.Each(e.World, func(entry *donburi.Entry) {
		factory.ApplyLightSpec(entry, spec.Light)
	})

	if reloaded == 0 {
		return fmt.Errorf("no shapes built from %s", name)
	}
	log.Printf("Reloaded %s (%d triangles)", name, mesh.TriangleCount())
	return nil
}
