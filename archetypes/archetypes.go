package archetypes

import (
	"github.com/automoto/devmenu/components"
	cfg "github.com/automoto/devmenu/config"
	"github.com/automoto/devmenu/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	DevMenu = newArchetype(
		components.DevMenu,
		components.Tuning,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
