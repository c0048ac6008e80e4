package factory

import (
	"github.com/automoto/schematic/archetypes"
	"github.com/automoto/schematic/camerarig"
	"github.com/automoto/schematic/components"
	cfg "github.com/automoto/schematic/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the schematic camera. The returned entry's entity is
// the handle the camera rig controls.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	var camera *donburi.Entry
	if cfg.Bloom.Enabled {
		camera = archetypes.Camera.Spawn(ecs, components.Bloom)
		components.Bloom.SetValue(camera, components.BloomData{
			Intensity: cfg.Bloom.Intensity,
			Threshold: cfg.Bloom.Threshold,
			Passes:    cfg.Bloom.Passes,
		})
	} else {
		camera = archetypes.Camera.Spawn(ecs)
	}

	components.Camera.SetValue(camera, components.CameraData{
		Rig: camerarig.State{
			Position: cfg.Camera.Position,
			Yaw:      cfg.Camera.Yaw,
			Scale:    camerarig.ClampScale(cfg.Camera.Scale),
		},
		HDR: cfg.Camera.HDR,
	})
	return camera
}
