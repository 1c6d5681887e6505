package components

import (
	"github.com/automoto/devmenu/menu"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of a button
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all menu buttons.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [menu.ButtonCount]bool // Current frame's Pressed state
	Previous        [menu.ButtonCount]bool // Previous frame's Pressed state
	ToggleCurrent   bool                   // Overlay toggle key held this frame
	TogglePrevious  bool
	LastInputMethod InputMethod // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()
