package camerarig

import "math"

// WorldToScreen projects a world-space point through the orthographic camera
// onto a viewport of the given size. One world unit covers 1/Scale pixels and
// screen Y grows downwards.
func (s State) WorldToScreen(p Vec3, viewW, viewH float64) (float64, float64) {
	sin, cos := math.Sincos(s.Yaw)
	dx := p.X - s.Position.X
	dy := p.Y - s.Position.Y
	dz := p.Z - s.Position.Z

	// Inverse yaw brings the point into view space.
	vx := dx*cos - dz*sin
	vy := dy

	return viewW/2 + vx/s.Scale, viewH/2 - vy/s.Scale
}

// ScreenToWorld maps a viewport pixel back onto the world plane Z = 0.
func (s State) ScreenToWorld(sx, sy, viewW, viewH float64) Vec3 {
	sin, cos := math.Sincos(s.Yaw)
	vx := (sx - viewW/2) * s.Scale
	vy := -(sy - viewH/2) * s.Scale

	var vz float64
	if math.Abs(cos) > 1e-9 {
		vz = (vx*sin - s.Position.Z) / cos
	}

	return Vec3{
		X: s.Position.X + vx*cos + vz*sin,
		Y: s.Position.Y + vy,
		Z: s.Position.Z - vx*sin + vz*cos,
	}
}
