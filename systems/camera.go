package systems

import (
	"github.com/automoto/schematic/camerarig"
	"github.com/automoto/schematic/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CameraRig pans and zooms one camera from the queued pointer and wheel
// events. It is the only writer of that camera's rig state.
type CameraRig struct {
	Camera donburi.Entity
}

func NewCameraRig(camera donburi.Entity) *CameraRig {
	return &CameraRig{Camera: camera}
}

// Update applies every event queued since the last frame, in arrival order.
// Events are consumed even when the camera is gone.
func (r *CameraRig) Update(e *ecs.ECS) {
	frame := drainInput(getOrCreateInput(e))

	if !e.World.Valid(r.Camera) {
		return
	}
	entry := e.World.Entry(r.Camera)
	if !entry.HasComponent(components.Camera) {
		return
	}

	camera := components.Camera.Get(entry)
	camerarig.Apply(&camera.Rig, frame)
}
