package factory

import (
	"github.com/automoto/devmenu/archetypes"
	"github.com/automoto/devmenu/components"
	"github.com/automoto/devmenu/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// CreateBounds surrounds a width x height arena with four walls of the given thickness
func CreateBounds(ecs *ecs.ECS, width, height, thickness float64) {
	CreateWall(ecs, 0, 0, width, thickness)
	CreateWall(ecs, 0, height-thickness, width, thickness)
	CreateWall(ecs, 0, thickness, thickness, height-2*thickness)
	CreateWall(ecs, width-thickness, thickness, thickness, height-2*thickness)
}
