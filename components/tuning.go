package components

import "github.com/yohamta/donburi"

// TuningData is the live settings object edited through the dev menu
type TuningData struct {
	Gravity    float64
	Bounce     float64
	Friction   float64
	BallRadius float64
	TimeScale  float64

	Paused       bool
	ShowHitboxes bool
	// Set by the "Reset ball" action, consumed by the ball system
	ResetRequested bool
}

var Tuning = donburi.NewComponentType[TuningData]()
