package factory

import (
	"github.com/automoto/schematic/archetypes"
	"github.com/automoto/schematic/components"
	cfg "github.com/automoto/schematic/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSettings(ecs *ecs.ECS) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{
		Debug: cfg.Debug.Overlay,
	})
	return settings
}
