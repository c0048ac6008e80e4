package systems

import (
	"image"
	"image/color"

	"github.com/automoto/schematic/components"
	cfg "github.com/automoto/schematic/config"
	"github.com/automoto/schematic/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	meshVertices []ebiten.Vertex
	meshDrawOp   = &ebiten.DrawTrianglesOptions{AntiAlias: true, ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawMeshes renders every shape through the schematic camera, shading each
// vertex by the point lights in the world.
func DrawMeshes(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := tags.SchematicCamera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	lights := collectLights(ecs.World)

	tags.Shape.Each(ecs.World, func(e *donburi.Entry) {
		mesh := components.Mesh.Get(e)
		if mesh.Mesh == nil || len(mesh.Mesh.Indices) == 0 {
			return
		}
		material := components.Material.Get(e)
		origin := components.Transform.Get(e).Position

		r, g, b := unitRGB(material.BaseColor)
		a := 1.0
		if material.BaseColor != nil {
			_, _, _, a16 := material.BaseColor.RGBA()
			a = float64(a16) / 0xffff
		}

		meshVertices = meshVertices[:0]
		for _, v := range mesh.Mesh.Vertices {
			world := origin
			world.X += float64(v.X)
			world.Y += float64(v.Y)
			world.Z += float64(v.Z)

			sx, sy := camera.Rig.WorldToScreen(world, width, height)
			lr, lg, lb := shade(world, lights, cfg.Light.Ambient)

			// Vertex colors are premultiplied.
			meshVertices = append(meshVertices, ebiten.Vertex{
				DstX:   float32(sx),
				DstY:   float32(sy),
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(r * lr * a),
				ColorG: float32(g * lg * a),
				ColorB: float32(b * lb * a),
				ColorA: float32(a),
			})
		}
		screen.DrawTriangles(meshVertices, mesh.Mesh.Indices, whiteSubImage, meshDrawOp)
	})
}
