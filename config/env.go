package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env lists the settings that can be overridden from the environment.
// Zero values leave the defaults from init untouched.
type Env struct {
	Width       int    `env:"SCHEMATIC_WIDTH"`
	Height      int    `env:"SCHEMATIC_HEIGHT"`
	Title       string `env:"SCHEMATIC_TITLE"`
	Debug       bool   `env:"SCHEMATIC_DEBUG"`
	RestoreView bool   `env:"SCHEMATIC_RESTORE_VIEW"`
	Watch       bool   `env:"SCHEMATIC_WATCH"`
	PrefabsDir  string `env:"SCHEMATIC_PREFABS_DIR"`
	NoBloom     bool   `env:"SCHEMATIC_NO_BLOOM"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv reads Env and applies it over the global configuration.
func LoadEnv() error {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return err
	}
	e.Apply()
	return nil
}

// Apply copies every non-zero field onto the global configuration.
func (e Env) Apply() {
	if e.Width > 0 {
		C.Width = e.Width
	}
	if e.Height > 0 {
		C.Height = e.Height
	}
	if e.Title != "" {
		C.Title = e.Title
	}
	if e.PrefabsDir != "" {
		Debug.PrefabsDir = e.PrefabsDir
	}
	Debug.Overlay = Debug.Overlay || e.Debug
	Debug.RestoreView = Debug.RestoreView || e.RestoreView
	Debug.Watch = Debug.Watch || e.Watch
	if e.NoBloom {
		Bloom.Enabled = false
	}
}
