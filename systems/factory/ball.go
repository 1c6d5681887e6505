package factory

import (
	"github.com/automoto/devmenu/archetypes"
	"github.com/automoto/devmenu/components"
	"github.com/automoto/devmenu/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBall spawns the ball centered on (cx, cy)
func CreateBall(ecs *ecs.ECS, cx, cy, radius, speedX float64) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	size := radius * 2
	obj := resolv.NewObject(cx-radius, cy-radius, size, size, tags.ResolvBall)
	obj.Data = ball

	components.Object.SetValue(ball, components.ObjectData{Object: obj})
	components.Ball.SetValue(ball, components.BallData{SpeedX: speedX})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return ball
}
