package factory

import (
	"github.com/automoto/devmenu/archetypes"
	"github.com/automoto/devmenu/components"
	cfg "github.com/automoto/devmenu/config"
	"github.com/automoto/devmenu/menu"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDevMenu spawns the dev menu together with the settings object it edits
func CreateDevMenu(ecs *ecs.ECS, m *menu.Menu[components.TuningData], tuning components.TuningData, open bool) *donburi.Entry {
	entry := archetypes.DevMenu.Spawn(ecs)

	offset := float32(-cfg.Overlay.PanelWidth)
	if open {
		offset = 0
	}
	components.DevMenu.SetValue(entry, components.DevMenuData{
		Menu:   m,
		IsOpen: open,
		Offset: offset,
	})
	components.Tuning.SetValue(entry, tuning)

	return entry
}
