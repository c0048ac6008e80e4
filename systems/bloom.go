package systems

import (
	"github.com/automoto/schematic/assets"
	"github.com/automoto/schematic/components"
	"github.com/automoto/schematic/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Offscreen targets, reallocated only when the screen size changes
var (
	bloomScene  *ebiten.Image
	bloomBright *ebiten.Image
	bloomLevels []*ebiten.Image

	bloomShaderOp = &ebiten.DrawRectShaderOptions{}
	bloomDrawOp   = &ebiten.DrawImageOptions{}
)

// DrawBloom adds a glow around bright pixels: a bright pass, a chain of
// half-resolution downsamples, and an additive upsample back onto the screen.
// Runs after the scene renderers.
func DrawBloom(ecs *ecs.ECS, screen *ebiten.Image) {
	if assets.BloomShader == nil {
		return
	}
	cameraEntry, ok := tags.SchematicCamera.First(ecs.World)
	if !ok || !cameraEntry.HasComponent(components.Bloom) {
		return
	}
	bloom := components.Bloom.Get(cameraEntry)
	if bloom.Intensity <= 0 {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	bloomScene = ensureImage(bloomScene, w, h)
	bloomBright = ensureImage(bloomBright, w, h)

	bloomScene.Clear()
	bloomScene.DrawImage(screen, nil)

	bloomBright.Clear()
	bloomShaderOp.Images[0] = bloomScene
	bloomShaderOp.Uniforms = map[string]any{
		"Threshold": float32(bloom.Threshold),
	}
	bloomBright.DrawRectShader(w, h, assets.BloomShader, bloomShaderOp)

	src := bloomBright
	for i, size := range bloomLevelSizes(w, h, bloom.Passes) {
		if len(bloomLevels) <= i {
			bloomLevels = append(bloomLevels, nil)
		}
		bloomLevels[i] = ensureImage(bloomLevels[i], size.X, size.Y)
		dst := bloomLevels[i]
		dst.Clear()

		bloomDrawOp.GeoM.Reset()
		bloomDrawOp.ColorScale.Reset()
		bloomDrawOp.Blend = ebiten.Blend{}
		bloomDrawOp.Filter = ebiten.FilterLinear
		bloomDrawOp.GeoM.Scale(
			float64(size.X)/float64(src.Bounds().Dx()),
			float64(size.Y)/float64(src.Bounds().Dy()),
		)
		dst.DrawImage(src, bloomDrawOp)
		src = dst
	}

	k := float32(bloom.Intensity)
	bloomDrawOp.GeoM.Reset()
	bloomDrawOp.ColorScale.Reset()
	bloomDrawOp.ColorScale.Scale(k, k, k, k)
	bloomDrawOp.Blend = ebiten.BlendLighter
	bloomDrawOp.Filter = ebiten.FilterLinear
	bloomDrawOp.GeoM.Scale(
		float64(w)/float64(src.Bounds().Dx()),
		float64(h)/float64(src.Bounds().Dy()),
	)
	screen.DrawImage(src, bloomDrawOp)
}

type size struct {
	X, Y int
}

// bloomLevelSizes halves the resolution once per pass, never going below a
// single pixel.
func bloomLevelSizes(w, h, passes int) []size {
	sizes := make([]size, 0, passes)
	for i := 0; i < passes; i++ {
		w, h = max(1, w/2), max(1, h/2)
		sizes = append(sizes, size{X: w, Y: h})
	}
	return sizes
}

func ensureImage(img *ebiten.Image, w, h int) *ebiten.Image {
	if img != nil {
		b := img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return img
		}
		img.Deallocate()
	}
	return ebiten.NewImage(w, h)
}
