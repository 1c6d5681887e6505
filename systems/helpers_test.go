package systems_test

import (
	"testing"

	"github.com/automoto/devmenu/components"
	"github.com/automoto/devmenu/menu"
	"github.com/automoto/devmenu/systems"
	"github.com/automoto/devmenu/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type world struct {
	ecs    *ecs.ECS
	menu   *systems.TuningMenu
	dm     *components.DevMenuData
	tuning *components.TuningData
	input  *components.InputData
}

func newWorld(t *testing.T, m *systems.TuningMenu, open bool) *world {
	t.Helper()
	if m == nil {
		var err error
		m, err = systems.NewTuningMenu()
		require.NoError(t, err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	entry := factory.CreateDevMenu(e, m, systems.DefaultTuning(), open)
	inputEntry := e.World.Entry(e.World.Create(components.Input))

	return &world{
		ecs:    e,
		menu:   m,
		dm:     components.DevMenu.Get(entry),
		tuning: components.Tuning.Get(entry),
		input:  components.Input.Get(inputEntry),
	}
}

// frame simulates one update with the given buttons held, the way UpdateInput swaps buffers
func (w *world) frame(toggle bool, held ...menu.Button) {
	w.input.Previous = w.input.Current
	w.input.Current = [menu.ButtonCount]bool{}
	for _, b := range held {
		w.input.Current[b] = true
	}
	w.input.TogglePrevious = w.input.ToggleCurrent
	w.input.ToggleCurrent = toggle
	systems.UpdateDevMenu(w.ecs)
}

// tap presses and releases b over two frames
func (w *world) tap(b menu.Button) {
	w.frame(false, b)
	w.frame(false)
}

func (w *world) slider(i int) *menu.Slider[components.TuningData] {
	return w.menu.Items()[i].(*menu.Slider[components.TuningData])
}
