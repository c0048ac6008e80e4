// Package camerarig implements mouse-driven pan and zoom for an orthographic
// camera. It has no engine dependencies so it can be stepped from tests
// without a window.
package camerarig

import "math"

const (
	MinScale = 0.001
	MaxScale = 1.0

	// InitialScale and InitialPosition describe the camera as it is spawned.
	InitialScale = 0.1

	// zoomDivisor converts one wheel notch into a fractional scale change.
	zoomDivisor = 5.0
)

var InitialPosition = Vec3{X: 0, Y: 0, Z: -2}

// InitialYaw turns the camera half a revolution about the vertical axis so it
// faces the XY plane from negative Z.
const InitialYaw = math.Pi

type Vec2 struct {
	X, Y float64
}

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// State is the camera transform plus its orthographic zoom scale.
// Yaw is set once at creation; Step never writes it.
type State struct {
	Position Vec3
	Yaw      float64
	Scale    float64
}

// NewState returns the camera state the program starts with.
func NewState() State {
	return State{
		Position: InitialPosition,
		Yaw:      InitialYaw,
		Scale:    InitialScale,
	}
}

// FrameInput is every input event accumulated since the previous frame, in
// arrival order.
type FrameInput struct {
	PointerDeltas    []Vec2
	ScrollDeltas     []float64
	MiddleButtonHeld bool
}

// Empty reports whether the batch carries no events at all.
func (in FrameInput) Empty() bool {
	return len(in.PointerDeltas) == 0 && len(in.ScrollDeltas) == 0
}

// Step applies one frame of input to s and returns the result.
func Step(s State, in FrameInput) State {
	Apply(&s, in)
	return s
}

// Apply folds one frame of input into s in place.
//
// Pointer deltas pan only while the middle button is held; the summed pan is
// multiplied by the scale in effect before this frame's scroll events. Each
// scroll event is applied and clamped one after another, so several wheel
// ticks in the same frame compound.
func Apply(s *State, in FrameInput) {
	if in.MiddleButtonHeld {
		var pan Vec3
		for _, d := range in.PointerDeltas {
			pan.X += d.X
			pan.Y += d.Y
		}
		s.Position = s.Position.Add(pan.Scale(s.Scale))
	}

	for _, d := range in.ScrollDeltas {
		s.Scale = ClampScale(s.Scale * (1 - d/zoomDivisor))
	}
}

// ClampScale bounds a zoom scale to [MinScale, MaxScale]. NaN maps to
// MinScale.
func ClampScale(scale float64) float64 {
	if math.IsNaN(scale) || scale < MinScale {
		return MinScale
	}
	if scale > MaxScale {
		return MaxScale
	}
	return scale
}
