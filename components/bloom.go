package components

import "github.com/yohamta/donburi"

// BloomData configures the bloom pass of the camera it is attached to.
type BloomData struct {
	Intensity float64
	Threshold float64
	Passes    int
}

var Bloom = donburi.NewComponentType[BloomData]()
