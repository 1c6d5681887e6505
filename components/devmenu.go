package components

import (
	"github.com/automoto/devmenu/menu"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DevMenuData stores the dev menu and its overlay state
type DevMenuData struct {
	Menu   *menu.Menu[TuningData]
	IsOpen bool

	// Slide animation of the panel; nil when settled
	Slide  *gween.Tween
	Offset float32 // Horizontal panel offset in pixels, 0 = fully shown

	LastError string // Last error returned by a menu callback
}

// DevMenu is the component type for the dev menu overlay
var DevMenu = donburi.NewComponentType[DevMenuData]()
