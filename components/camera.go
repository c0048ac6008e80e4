package components

import (
	"github.com/automoto/schematic/camerarig"
	"github.com/yohamta/donburi"
)

// CameraData is the orthographic schematic camera. Rig is written only by
// the camera rig system.
type CameraData struct {
	Rig camerarig.State
	HDR bool
}

var Camera = donburi.NewComponentType[CameraData]()
