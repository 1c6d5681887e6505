package config

import "github.com/automoto/devmenu/menu"

// SliderConfig describes one tunable value exposed in the dev menu
type SliderConfig struct {
	Label   string
	Default float64
	Min     float64
	Max     float64
	Step    float64
}

// Range is the interval the slider clamps to
func (s SliderConfig) Range() menu.Range {
	return menu.Range{Min: s.Min, Max: s.Max}
}

// InitialValue is the default clamped into the slider's range
func (s SliderConfig) InitialValue() float64 {
	return s.Range().Clamp(s.Default)
}

// TuningConfig contains the defaults and ranges of the demo settings object
type TuningConfig struct {
	Gravity    SliderConfig // Pixels per tick squared
	Bounce     SliderConfig // Fraction of speed kept on impact
	Friction   SliderConfig // Horizontal speed lost per tick on the floor
	BallRadius SliderConfig
	TimeScale  SliderConfig
	KickSpeed  float64 // Horizontal speed given by "Reset ball"
}

// Tuning is the global tuning configuration
var Tuning TuningConfig

func init() {
	Tuning = TuningConfig{
		Gravity:    SliderConfig{Label: "Gravity", Default: 0.4, Min: 0, Max: 2, Step: 0.05},
		Bounce:     SliderConfig{Label: "Bounce", Default: 0.75, Min: 0, Max: 1, Step: 0.01},
		Friction:   SliderConfig{Label: "Friction", Default: 0.02, Min: 0, Max: 0.5, Step: 0.01},
		BallRadius: SliderConfig{Label: "Radius", Default: 8, Min: 2, Max: 40, Step: 1},
		TimeScale:  SliderConfig{Label: "Time scale", Default: 1, Min: 0.1, Max: 3, Step: 0.05},
		KickSpeed:  4,
	}
}
