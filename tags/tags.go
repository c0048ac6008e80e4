package tags

import "github.com/yohamta/donburi"

var (
	SchematicCamera = donburi.NewTag().SetName("SchematicCamera")
	Shape           = donburi.NewTag().SetName("Shape")
	Light           = donburi.NewTag().SetName("Light")
)
