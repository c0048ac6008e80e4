package systems

import (
	"github.com/automoto/schematic/components"
	cfg "github.com/automoto/schematic/config"
	"github.com/automoto/schematic/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies viewer toggles. Must run after UpdateInput.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
	if GetAction(input, cfg.ActionQuit).JustPressed {
		settings.Quit = true
	}
}

func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = factory.CreateSettings(ecs)
	}
	return components.Settings.Get(entry)
}
