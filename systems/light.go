package systems

import (
	"image/color"
	"math"

	"github.com/automoto/schematic/camerarig"
	"github.com/automoto/schematic/components"
	cfg "github.com/automoto/schematic/config"
	"github.com/automoto/schematic/tags"
	"github.com/yohamta/donburi"
)

// pointLight is a point light flattened for per-vertex shading.
type pointLight struct {
	pos     camerarig.Vec3
	r, g, b float64
	power   float64 // intensity relative to cfg.Light.ReferenceLumens
	rng     float64
}

// Reused across frames to avoid allocations
var lightScratch []pointLight

func collectLights(w donburi.World) []pointLight {
	lightScratch = lightScratch[:0]
	tags.Light.Each(w, func(e *donburi.Entry) {
		l := components.PointLight.Get(e)
		t := components.Transform.Get(e)
		r, g, b := unitRGB(l.Color)
		lightScratch = append(lightScratch, pointLight{
			pos:   t.Position,
			r:     r,
			g:     g,
			b:     b,
			power: l.Intensity / cfg.Light.ReferenceLumens,
			rng:   l.Range,
		})
	})
	return lightScratch
}

// shade returns the per-channel light reaching p: the ambient floor plus the
// windowed inverse-square falloff of each light, cut off at its range.
// Channels are capped at 1.
func shade(p camerarig.Vec3, lights []pointLight, ambient float64) (float64, float64, float64) {
	r, g, b := ambient, ambient, ambient
	for _, l := range lights {
		if l.rng <= 0 {
			continue
		}
		dx, dy, dz := p.X-l.pos.X, p.Y-l.pos.Y, p.Z-l.pos.Z
		d := math.Sqrt(dx*dx + dy*dy + dz*dz)
		if d >= l.rng {
			continue
		}
		window := 1 - (d/l.rng)*(d/l.rng)
		f := window * window * l.power
		r += f * l.r
		g += f * l.g
		b += f * l.b
	}
	return math.Min(r, 1), math.Min(g, 1), math.Min(b, 1)
}

// unitRGB returns the straight (non-premultiplied) channels of c in [0, 1].
func unitRGB(c color.Color) (float64, float64, float64) {
	if c == nil {
		return 1, 1, 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float64(n.R) / 255, float64(n.G) / 255, float64(n.B) / 255
}
