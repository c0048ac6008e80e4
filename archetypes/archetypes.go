package archetypes

import (
	"github.com/automoto/schematic/components"
	cfg "github.com/automoto/schematic/config"
	"github.com/automoto/schematic/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		tags.SchematicCamera,
		components.Camera,
	)
	Shape = newArchetype(
		tags.Shape,
		components.Mesh,
		components.Material,
		components.Transform,
	)
	Light = newArchetype(
		tags.Light,
		components.PointLight,
		components.Transform,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
