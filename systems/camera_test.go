package systems

import (
	"testing"

	"github.com/automoto/schematic/camerarig"
	"github.com/automoto/schematic/components"
	"github.com/automoto/schematic/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestCameraRigAppliesQueuedInput(t *testing.T) {
	e := newTestECS()
	camera := factory.CreateCamera(e)
	rig := NewCameraRig(camera.Entity())

	input := getOrCreateInput(e)
	input.Pending.MiddleButtonHeld = true
	input.Pending.PointerDeltas = append(input.Pending.PointerDeltas, camerarig.Vec2{X: 10, Y: -4})
	input.Pending.ScrollDeltas = append(input.Pending.ScrollDeltas, 1)

	rig.Update(e)

	got := components.Camera.Get(camera).Rig
	want := camerarig.Step(camerarig.NewState(), camerarig.FrameInput{
		PointerDeltas:    []camerarig.Vec2{{X: 10, Y: -4}},
		ScrollDeltas:     []float64{1},
		MiddleButtonHeld: true,
	})
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if len(input.Pending.PointerDeltas) != 0 || len(input.Pending.ScrollDeltas) != 0 {
		t.Fatalf("expected queue to be drained, got %+v", input.Pending)
	}

	// A frame with nothing queued leaves the camera alone.
	rig.Update(e)
	if again := components.Camera.Get(camera).Rig; again != got {
		t.Fatalf("idle frame moved camera: %+v -> %+v", got, again)
	}
}

func TestCameraRigWithoutCamera(t *testing.T) {
	e := newTestECS()
	camera := factory.CreateCamera(e)
	rig := NewCameraRig(camera.Entity())
	e.World.Remove(camera.Entity())

	input := getOrCreateInput(e)
	input.Pending.ScrollDeltas = append(input.Pending.ScrollDeltas, 1, 1)

	rig.Update(e)

	if len(input.Pending.ScrollDeltas) != 0 {
		t.Fatalf("expected events to be consumed, got %v", input.Pending.ScrollDeltas)
	}
}

func TestCameraRigOnlyTouchesItsCamera(t *testing.T) {
	e := newTestECS()
	first := factory.CreateCamera(e)
	second := factory.CreateCamera(e)
	rig := NewCameraRig(first.Entity())

	input := getOrCreateInput(e)
	input.Pending.ScrollDeltas = append(input.Pending.ScrollDeltas, -2)
	rig.Update(e)

	if components.Camera.Get(first).Rig.Scale == camerarig.InitialScale {
		t.Fatal("expected controlled camera to zoom")
	}
	if s := components.Camera.Get(second).Rig; s != camerarig.NewState() {
		t.Fatalf("other camera changed: %+v", s)
	}
}

func TestQueueCursor(t *testing.T) {
	var input components.InputData

	queueCursor(&input, 100, 100)
	if len(input.Pending.PointerDeltas) != 0 {
		t.Fatalf("first sample should only seed, got %v", input.Pending.PointerDeltas)
	}

	queueCursor(&input, 100, 100)
	queueCursor(&input, 103, 96)
	queueCursor(&input, 101, 96)

	want := []camerarig.Vec2{{X: 3, Y: -4}, {X: -2, Y: 0}}
	if len(input.Pending.PointerDeltas) != len(want) {
		t.Fatalf("expected %v, got %v", want, input.Pending.PointerDeltas)
	}
	for i := range want {
		if input.Pending.PointerDeltas[i] != want[i] {
			t.Fatalf("delta %d: expected %v, got %v", i, want[i], input.Pending.PointerDeltas[i])
		}
	}
}

func TestQueueWheel(t *testing.T) {
	var input components.InputData
	for _, dy := range []float64{0, 1, 0, -0.5} {
		queueWheel(&input, dy)
	}
	if len(input.Pending.ScrollDeltas) != 2 || input.Pending.ScrollDeltas[0] != 1 || input.Pending.ScrollDeltas[1] != -0.5 {
		t.Fatalf("unexpected scroll queue %v", input.Pending.ScrollDeltas)
	}
}
