package tags

import "github.com/yohamta/donburi"

var (
	Wall = donburi.NewTag().SetName("Wall")
	Ball = donburi.NewTag().SetName("Ball")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvBall  = "ball"
)
