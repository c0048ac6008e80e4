package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPan
	ActionToggleDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and mouse buttons bound to an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionPan: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonMiddle},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
