package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/automoto/schematic/camerarig"
)

func TestShade(t *testing.T) {
	white := pointLight{r: 1, g: 1, b: 1, power: 1, rng: 10}
	cases := []struct {
		name   string
		p      camerarig.Vec3
		lights []pointLight
		want   float64
	}{
		{"ambient_only", camerarig.Vec3{}, nil, 0.25},
		{"at_light", camerarig.Vec3{}, []pointLight{white}, 1},
		{"half_range", camerarig.Vec3{X: 5}, []pointLight{white}, 0.25 + 0.75*0.75},
		{"past_range", camerarig.Vec3{Z: 10}, []pointLight{white}, 0.25},
		{"zero_range", camerarig.Vec3{}, []pointLight{{r: 1, g: 1, b: 1, power: 1}}, 0.25},
		{"dim", camerarig.Vec3{}, []pointLight{{r: 1, g: 1, b: 1, power: 0.5, rng: 10}}, 0.75},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, g, b := shade(c.p, c.lights, 0.25)
			for _, v := range []float64{r, g, b} {
				if math.Abs(v-c.want) > 1e-9 {
					t.Fatalf("expected %v, got %v %v %v", c.want, r, g, b)
				}
			}
		})
	}
}

func TestShadeTintsByLightColor(t *testing.T) {
	red := pointLight{r: 1, power: 1, rng: 10}
	r, g, b := shade(camerarig.Vec3{}, []pointLight{red}, 0)
	if r != 1 || g != 0 || b != 0 {
		t.Fatalf("expected pure red, got %v %v %v", r, g, b)
	}
}

func TestUnitRGB(t *testing.T) {
	r, g, b := unitRGB(color.RGBA{R: 255, G: 0, B: 51, A: 255})
	if r != 1 || g != 0 || math.Abs(b-0.2) > 1e-9 {
		t.Fatalf("unexpected channels %v %v %v", r, g, b)
	}
	if r, g, b := unitRGB(nil); r != 1 || g != 1 || b != 1 {
		t.Fatalf("nil color should be white, got %v %v %v", r, g, b)
	}
}
