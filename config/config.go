package config

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the demo uses
const Default ecs.LayerID = 0

// Config contains window-level configuration values
type Config struct {
	Width  int
	Height int
	TPS    int // Ticks per second of the update loop
}

// OverlayConfig contains dev menu overlay configuration values
type OverlayConfig struct {
	BackgroundColor color.RGBA
	FooterColor     color.RGBA
	ErrorColor      color.RGBA
	PanelWidth      float64
	PanelPadding    float64
	SlideDuration   float32 // Seconds for the open/close slide
	FontSize        float64
	ToggleKeys      []ebiten.Key
	Title           string
	KeyboardHint    string // Footer hint after a key was last used
	GamepadHint     string // Footer hint after a gamepad was last used
}

// WorldConfig contains demo world configuration values
type WorldConfig struct {
	BackgroundColor color.RGBA
	WallColor       color.RGBA
	BallColor       color.RGBA
	WallThickness   float64
	CellSize        int // Collision grid cell size
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	StartOpen bool   // Open the dev menu on the first frame
	LogLevel  string // debug, info, warn, error
}

// Global configuration instances
var C *Config
var Overlay OverlayConfig
var World WorldConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Overlay = OverlayConfig{
		BackgroundColor: BlackOverlay,
		FooterColor:     Grey,
		ErrorColor:      LightRed,
		PanelWidth:      220,
		PanelPadding:    10,
		SlideDuration:   0.2,
		FontSize:        10,
		ToggleKeys:      []ebiten.Key{ebiten.KeyF1, ebiten.KeyBackquote},
		Title:           "F1: dev menu",
		KeyboardHint:    "Arrows: move  Space: fire",
		GamepadHint:     "D-pad: move  A: fire",
	}

	World = WorldConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		WallColor:       Grey,
		BallColor:       BrightOrange,
		WallThickness:   16,
		CellSize:        8,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		StartOpen: false,
		LogLevel:  "info",
	}
}
