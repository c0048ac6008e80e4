package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// PointLightData emits in all directions from the entity's Transform.
// Shadow fields are carried for parity with the scene prefab; the 2D
// renderer does not cast shadows.
type PointLightData struct {
	Color           color.Color
	Intensity       float64 // lumens
	Range           float64
	ShadowsEnabled  bool
	ShadowDepthBias float64
}

var PointLight = donburi.NewComponentType[PointLightData]()
