package components

import "github.com/yohamta/donburi"

// SettingsData holds viewer toggles that change at runtime
type SettingsData struct {
	Debug bool // draw the camera HUD and light gizmo
	Quit  bool // set once the user asked to leave
}

var Settings = donburi.NewComponentType[SettingsData]()
