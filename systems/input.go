package systems

import (
	"github.com/automoto/schematic/camerarig"
	"github.com/automoto/schematic/components"
	cfg "github.com/automoto/schematic/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw input, updates action state and queues pointer and
// wheel events for the camera rig.
// Must run BEFORE the camera rig in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
	}

	x, y := ebiten.CursorPosition()
	queueCursor(input, x, y)
	_, wy := ebiten.Wheel()
	queueWheel(input, wy)
	input.Pending.MiddleButtonHeld = input.Current[cfg.ActionPan]
}

// queueCursor records a pointer-move event when the cursor left its last
// known position. The first sample only seeds the position.
func queueCursor(input *components.InputData, x, y int) {
	if input.HasCursor && (x != input.CursorX || y != input.CursorY) {
		input.Pending.PointerDeltas = append(input.Pending.PointerDeltas, camerarig.Vec2{
			X: float64(x - input.CursorX),
			Y: float64(y - input.CursorY),
		})
	}
	input.CursorX, input.CursorY = x, y
	input.HasCursor = true
}

func queueWheel(input *components.InputData, dy float64) {
	if dy != 0 {
		input.Pending.ScrollDeltas = append(input.Pending.ScrollDeltas, dy)
	}
}

// drainInput hands over the queued events and empties the queue, keeping
// its storage for the next frame.
func drainInput(input *components.InputData) camerarig.FrameInput {
	frame := input.Pending
	input.Pending.PointerDeltas = input.Pending.PointerDeltas[:0]
	input.Pending.ScrollDeltas = input.Pending.ScrollDeltas[:0]
	return frame
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (nothing pressed, nothing queued)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
