package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BallData holds the velocity of the bouncing demo ball
type BallData struct {
	SpeedX   float64
	SpeedY   float64
	OnGround *resolv.Object
}

var Ball = donburi.NewComponentType[BallData]()
