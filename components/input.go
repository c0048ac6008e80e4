package components

import (
	"github.com/automoto/schematic/camerarig"
	cfg "github.com/automoto/schematic/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions, plus the pointer and wheel events queued since the camera rig
// last drained them.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	Pending camerarig.FrameInput

	// Last cursor position, used to turn absolute positions into deltas.
	CursorX, CursorY int
	HasCursor        bool
}

var Input = donburi.NewComponentType[InputData]()
