package config

import (
	"image/color"

	"github.com/automoto/schematic/camerarig"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; renderers run in registration order.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// CameraConfig contains the spawn values of the schematic camera
type CameraConfig struct {
	Position camerarig.Vec3 // world-space translation
	Yaw      float64        // radians about the vertical axis, fixed after spawn
	Scale    float64        // initial orthographic zoom scale
	HDR      bool
}

// LightConfig contains point light defaults used when the prefab omits them
type LightConfig struct {
	Position        camerarig.Vec3
	Intensity       float64 // lumens
	Range           float64 // world units past which the light contributes nothing
	ShadowsEnabled  bool
	ShadowDepthBias float64
	Ambient         float64 // brightness floor applied to every vertex (0.0-1.0)
	ReferenceLumens float64 // intensity that maps to full brightness at distance zero
}

// BloomConfig contains bloom post-processing configuration
type BloomConfig struct {
	Enabled   bool
	Intensity float64 // additive strength of the blurred highlights
	Threshold float64 // luminance below which pixels do not bloom
	Passes    int     // number of half-resolution downsample steps
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay     bool   // Show the camera HUD from the first frame
	RestoreView bool   // Load the last saved camera view at startup
	Watch       bool   // Reload prefabs from disk when they change
	PrefabsDir  string // Directory searched before the embedded prefabs
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HUDMargin     float64
	HUDLineHeight float64
	HUDTextColor  color.RGBA
	HUDBgColor    color.RGBA
	GizmoRadius   float32
	GizmoColor    color.RGBA
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var Light LightConfig
var Bloom BloomConfig
var Debug DebugConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Background   = color.RGBA{R: 20, G: 20, B: 24, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "schematic",
	}

	Camera = CameraConfig{
		Position: camerarig.InitialPosition,
		Yaw:      camerarig.InitialYaw,
		Scale:    camerarig.InitialScale,
		HDR:      true, // bloom needs HDR
	}

	Light = LightConfig{
		Position:        camerarig.Vec3{X: 8, Y: 16, Z: 8},
		Intensity:       10_000_000,
		Range:           100,
		ShadowsEnabled:  true,
		ShadowDepthBias: 0.2,
		Ambient:         0.35,
		ReferenceLumens: 10_000_000,
	}

	// Mirrors the "natural" bloom preset.
	Bloom = BloomConfig{
		Enabled:   true,
		Intensity: 0.15,
		Threshold: 0.6,
		Passes:    3,
	}

	Debug = DebugConfig{
		PrefabsDir: "prefabs",
	}

	UI = UIConfig{
		HUDMargin:     10,
		HUDLineHeight: 18,
		HUDTextColor:  White,
		HUDBgColor:    BlackOverlay,
		GizmoRadius:   6,
		GizmoColor:    Yellow,
	}
}
