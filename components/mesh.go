package components

import (
	"image/color"

	"github.com/automoto/schematic/camerarig"
	"github.com/automoto/schematic/shapes"
	"github.com/yohamta/donburi"
)

type MeshData struct {
	Mesh   *shapes.Mesh
	Prefab string // prefab file the mesh was built from, for hot reload
}

var Mesh = donburi.NewComponentType[MeshData]()

// MaterialData is an unlit base color that lights modulate.
type MaterialData struct {
	BaseColor color.Color
}

var Material = donburi.NewComponentType[MaterialData]()

type TransformData struct {
	Position camerarig.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()
