package shapes

import "github.com/yohamta/donburi/ecs"

// StartupRegistrar is implemented by scenes that run one-shot systems while
// they assemble their world.
type StartupRegistrar interface {
	AddStartupSystem(system ecs.System)
}

// Plugin wires the shapes library into a scene.
type Plugin struct{}

func (Plugin) Build(r StartupRegistrar) {
	r.AddStartupSystem(setup)
}

// setup has nothing to do yet: scenes spawn their own meshes.
func setup(*ecs.ECS) {}
