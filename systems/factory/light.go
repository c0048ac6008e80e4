package factory

import (
	"github.com/automoto/schematic/archetypes"
	"github.com/automoto/schematic/components"
	cfg "github.com/automoto/schematic/config"
	"github.com/automoto/schematic/prefabs"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLight spawns a point light. Fields the prefab leaves at zero fall
// back to config.Light.
func CreateLight(ecs *ecs.ECS, spec prefabs.LightSpec) *donburi.Entry {
	light := archetypes.Light.Spawn(ecs)
	ApplyLightSpec(light, spec)
	return light
}

// ApplyLightSpec overwrites an existing light with the values in spec.
func ApplyLightSpec(light *donburi.Entry, spec prefabs.LightSpec) {
	data := components.PointLightData{
		Color:           cfg.White,
		Intensity:       cfg.Light.Intensity,
		Range:           cfg.Light.Range,
		ShadowsEnabled:  spec.Shadows,
		ShadowDepthBias: spec.ShadowDepthBias,
	}
	if spec.Color != nil && spec.Color.Color != nil {
		data.Color = spec.Color.Color
	}
	if spec.Intensity > 0 {
		data.Intensity = spec.Intensity
	}
	if spec.Range > 0 {
		data.Range = spec.Range
	}
	components.PointLight.SetValue(light, data)

	pos := cfg.Light.Position
	if spec.Position != ([3]float64{}) {
		pos = vec3(spec.Position)
	}
	components.Transform.SetValue(light, components.TransformData{Position: pos})
}
