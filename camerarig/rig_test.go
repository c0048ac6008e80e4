package camerarig

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearVec(a, b Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestNewState(t *testing.T) {
	s := NewState()
	if s.Scale != 0.1 {
		t.Fatalf("expected initial scale 0.1, got %v", s.Scale)
	}
	if s.Position != (Vec3{0, 0, -2}) {
		t.Fatalf("expected initial position (0,0,-2), got %+v", s.Position)
	}
	if s.Yaw != math.Pi {
		t.Fatalf("expected yaw pi, got %v", s.Yaw)
	}
}

func TestScrollScenarios(t *testing.T) {
	cases := []struct {
		name   string
		start  float64
		deltas []float64
		want   float64
	}{
		{"zoom_in_to_floor", 0.1, []float64{5.0}, 0.001},
		{"zoom_out_doubles", 0.1, []float64{-5.0}, 0.2},
		{"no_events", 0.1, nil, 0.1},
		{"huge_positive", 0.1, []float64{1000}, MinScale},
		{"huge_negative", 0.1, []float64{-1000}, MaxScale},
		{"one_notch_in", 0.5, []float64{1}, 0.4},
		{"ceiling_then_back", 0.9, []float64{-5, 1}, 0.8},
		{"floor_then_back", 0.1, []float64{10, -5}, 0.002},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewState()
			s.Scale = c.start
			got := Step(s, FrameInput{ScrollDeltas: c.deltas})
			if !near(got.Scale, c.want) {
				t.Fatalf("expected scale %v, got %v", c.want, got.Scale)
			}
		})
	}
}

func TestScrollIsSequentialNotBatched(t *testing.T) {
	deltas := []float64{-5, -5, -5, 4.5, 2, -1}
	s := NewState()

	want := s.Scale
	for _, d := range deltas {
		want = ClampScale(want * (1 - d/5))
	}

	got := Step(s, FrameInput{ScrollDeltas: deltas})
	if !near(got.Scale, want) {
		t.Fatalf("expected %v, got %v", want, got.Scale)
	}

	// Summing first would have landed somewhere else entirely.
	var sum float64
	for _, d := range deltas {
		sum += d
	}
	batched := ClampScale(s.Scale * (1 - sum/5))
	if near(got.Scale, batched) {
		t.Fatalf("scroll events were batched: %v", got.Scale)
	}
}

func TestScaleAlwaysInBounds(t *testing.T) {
	inputs := [][]float64{
		{1000},
		{-1000},
		{1e300, -1e300},
		{math.Inf(1)},
		{math.Inf(-1)},
		{math.NaN()},
		{4.99999, 4.99999, 4.99999},
		{-3, -3, -3, -3, -3, -3},
	}
	for _, deltas := range inputs {
		s := Step(NewState(), FrameInput{ScrollDeltas: deltas})
		if s.Scale < MinScale || s.Scale > MaxScale || math.IsNaN(s.Scale) {
			t.Fatalf("scale %v out of bounds for %v", s.Scale, deltas)
		}
	}
}

func TestPan(t *testing.T) {
	cases := []struct {
		name   string
		held   bool
		deltas []Vec2
		want   Vec3
	}{
		{"held_two_moves", true, []Vec2{{10, 0}, {0, 5}}, Vec3{1, 0.5, -2}},
		{"released_ignores_moves", false, []Vec2{{10, 0}, {0, 5}}, Vec3{0, 0, -2}},
		{"held_no_moves", true, nil, Vec3{0, 0, -2}},
		{"held_moves_cancel", true, []Vec2{{3, -4}, {-3, 4}}, Vec3{0, 0, -2}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Step(NewState(), FrameInput{PointerDeltas: c.deltas, MiddleButtonHeld: c.held})
			if !nearVec(got.Position, c.want) {
				t.Fatalf("expected position %+v, got %+v", c.want, got.Position)
			}
		})
	}
}

func TestPanUsesScaleBeforeScroll(t *testing.T) {
	in := FrameInput{
		PointerDeltas:    []Vec2{{10, 10}},
		ScrollDeltas:     []float64{-5},
		MiddleButtonHeld: true,
	}
	got := Step(NewState(), in)
	if !nearVec(got.Position, Vec3{1, 1, -2}) {
		t.Fatalf("expected pan at scale 0.1, got %+v", got.Position)
	}
	if !near(got.Scale, 0.2) {
		t.Fatalf("expected scale 0.2, got %v", got.Scale)
	}
}

func TestStepLeavesYawAlone(t *testing.T) {
	s := NewState()
	got := Step(s, FrameInput{
		PointerDeltas:    []Vec2{{100, -50}},
		ScrollDeltas:     []float64{2, -1},
		MiddleButtonHeld: true,
	})
	if got.Yaw != s.Yaw {
		t.Fatalf("yaw changed from %v to %v", s.Yaw, got.Yaw)
	}
}

func TestStepDoesNotMutateArgument(t *testing.T) {
	s := NewState()
	_ = Step(s, FrameInput{ScrollDeltas: []float64{1}, PointerDeltas: []Vec2{{1, 1}}, MiddleButtonHeld: true})
	if s != NewState() {
		t.Fatalf("Step mutated its argument: %+v", s)
	}
}

func TestFrameInputEmpty(t *testing.T) {
	if !(FrameInput{MiddleButtonHeld: true}).Empty() {
		t.Fatal("held button alone should count as empty")
	}
	if (FrameInput{ScrollDeltas: []float64{0}}).Empty() {
		t.Fatal("a zero scroll event is still an event")
	}
}
