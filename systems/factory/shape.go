package factory

import (
	"github.com/automoto/schematic/archetypes"
	"github.com/automoto/schematic/camerarig"
	"github.com/automoto/schematic/components"
	cfg "github.com/automoto/schematic/config"
	"github.com/automoto/schematic/prefabs"
	"github.com/automoto/schematic/shapes"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateShape tessellates the shape described by spec and spawns it.
// Nothing is spawned when tessellation fails.
func CreateShape(ecs *ecs.ECS, spec prefabs.ShapeSpec, prefab string) (*donburi.Entry, error) {
	mesh, err := spec.Tessellate()
	if err != nil {
		return nil, err
	}

	shape := archetypes.Shape.Spawn(ecs)
	ApplyShapeSpec(shape, spec, prefab, mesh)
	return shape, nil
}

// ApplyShapeSpec replaces the mesh, material and transform of a shape.
func ApplyShapeSpec(shape *donburi.Entry, spec prefabs.ShapeSpec, prefab string, mesh *shapes.Mesh) {
	components.Mesh.SetValue(shape, components.MeshData{
		Mesh:   mesh,
		Prefab: prefab,
	})
	components.Material.SetValue(shape, components.MaterialData{
		BaseColor: spec.ColorOr(cfg.Red),
	})
	components.Transform.SetValue(shape, components.TransformData{
		Position: vec3(spec.Position),
	})
}

func vec3(v [3]float64) camerarig.Vec3 {
	return camerarig.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
