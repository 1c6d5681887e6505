package systems_test

import (
	"errors"
	"testing"

	"github.com/automoto/devmenu/components"
	cfg "github.com/automoto/devmenu/config"
	"github.com/automoto/devmenu/menu"
	"github.com/automoto/devmenu/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTuningMenu(t *testing.T) {
	m, err := systems.NewTuningMenu()
	require.NoError(t, err)

	var labels []string
	for _, item := range m.Items() {
		labels = append(labels, item.Label())
	}
	assert.Equal(t, []string{
		"Gravity", "Bounce", "Friction", "Radius", "Time scale",
		"Pause / Resume", "Reset ball", "Toggle hitboxes", "Restore defaults",
	}, labels)
}

func TestNewTuningMenuRejectsBadConfig(t *testing.T) {
	saved := cfg.Tuning
	t.Cleanup(func() { cfg.Tuning = saved })
	cfg.Tuning.Bounce.Step = 0

	_, err := systems.NewTuningMenu()
	assert.ErrorIs(t, err, menu.ErrInvalidStep)
}

func TestDefaultTuningClampsIntoRange(t *testing.T) {
	saved := cfg.Tuning
	t.Cleanup(func() { cfg.Tuning = saved })
	cfg.Tuning.Gravity.Default = 5
	cfg.Tuning.BallRadius.Default = 0

	tuning := systems.DefaultTuning()
	assert.Equal(t, cfg.Tuning.Gravity.Max, tuning.Gravity)
	assert.Equal(t, cfg.Tuning.BallRadius.Min, tuning.BallRadius)
	assert.Equal(t, cfg.Tuning.Bounce.Default, tuning.Bounce)
}

func TestDevMenuClosedIgnoresInput(t *testing.T) {
	w := newWorld(t, nil, false)

	w.frame(false, menu.ButtonRight)
	w.frame(false, menu.ButtonRight)
	w.tap(menu.ButtonDown)

	assert.Equal(t, cfg.Tuning.Gravity.Default, w.tuning.Gravity)
	assert.Equal(t, 0, w.menu.Selected())
	assert.False(t, systems.IsDevMenuOpen(w.ecs))
}

func TestDevMenuToggle(t *testing.T) {
	w := newWorld(t, nil, false)
	assert.Equal(t, float32(-cfg.Overlay.PanelWidth), w.dm.Offset)

	w.frame(true)
	assert.True(t, w.dm.IsOpen)
	assert.NotNil(t, w.dm.Slide)

	// Holding the toggle key does not close it again
	for i := 0; i < cfg.C.TPS; i++ {
		w.frame(true)
	}
	assert.True(t, w.dm.IsOpen)
	assert.Nil(t, w.dm.Slide)
	assert.Equal(t, float32(0), w.dm.Offset)

	w.frame(false)
	w.frame(true)
	assert.False(t, w.dm.IsOpen)
	for i := 0; i < cfg.C.TPS; i++ {
		w.frame(false)
	}
	assert.Nil(t, w.dm.Slide)
	assert.Equal(t, float32(-cfg.Overlay.PanelWidth), w.dm.Offset)
}

func TestDevMenuHoldRightIncreasesSlider(t *testing.T) {
	w := newWorld(t, nil, true)
	start := w.tuning.Gravity
	step := cfg.Tuning.Gravity.Step

	// Press and tick arrive in the same frame, so the first frame already moves
	w.frame(false, menu.ButtonRight)
	assert.InDelta(t, start+step, w.tuning.Gravity, 1e-9)

	w.frame(false, menu.ButtonRight)
	w.frame(false, menu.ButtonRight)
	assert.InDelta(t, start+3*step, w.tuning.Gravity, 1e-9)

	w.frame(false)
	w.frame(false)
	assert.InDelta(t, start+3*step, w.tuning.Gravity, 1e-9)
	assert.Equal(t, menu.SliderDefault, w.slider(0).State())
}

func TestDevMenuSliderClamps(t *testing.T) {
	w := newWorld(t, nil, true)
	for i := 0; i < 200; i++ {
		w.frame(false, menu.ButtonLeft)
	}
	assert.Equal(t, cfg.Tuning.Gravity.Min, w.tuning.Gravity)
}

func TestDevMenuActions(t *testing.T) {
	w := newWorld(t, nil, true)

	// Down five times lands on "Pause / Resume"
	for i := 0; i < 5; i++ {
		w.tap(menu.ButtonDown)
	}
	require.Equal(t, 5, w.menu.Selected())

	w.tap(menu.ButtonSpace)
	assert.True(t, w.tuning.Paused)
	w.tap(menu.ButtonRight)
	assert.False(t, w.tuning.Paused)

	w.tap(menu.ButtonDown)
	w.tap(menu.ButtonSpace)
	assert.True(t, w.tuning.ResetRequested)

	w.tap(menu.ButtonDown)
	w.tap(menu.ButtonLeft)
	assert.True(t, w.tuning.ShowHitboxes)
}

func TestDevMenuRestoreDefaults(t *testing.T) {
	w := newWorld(t, nil, true)
	w.tuning.Gravity = 1.5
	w.tuning.TimeScale = 2
	w.tuning.Paused = true
	w.tuning.ShowHitboxes = true

	// Up from the first item wraps to "Restore defaults"
	w.tap(menu.ButtonUp)
	require.Equal(t, 8, w.menu.Selected())
	w.tap(menu.ButtonSpace)

	want := systems.DefaultTuning()
	want.Paused = true
	want.ShowHitboxes = true
	assert.Equal(t, want, *w.tuning)
}

func TestDevMenuCloseReleasesHeldButtons(t *testing.T) {
	w := newWorld(t, nil, true)

	w.frame(false, menu.ButtonRight)
	require.Equal(t, menu.SliderIncreasing, w.slider(0).State())

	w.frame(true, menu.ButtonRight)
	assert.False(t, w.dm.IsOpen)
	assert.Equal(t, menu.SliderDefault, w.slider(0).State())

	// Reopening with Right still down must not resume the slide
	w.frame(false, menu.ButtonRight)
	w.frame(true, menu.ButtonRight)
	value := w.tuning.Gravity
	w.frame(false, menu.ButtonRight)
	w.frame(false, menu.ButtonRight)
	assert.Equal(t, value, w.tuning.Gravity)
}

func TestDevMenuCloseOnReleaseFrame(t *testing.T) {
	w := newWorld(t, nil, true)

	w.frame(false, menu.ButtonRight)
	require.Equal(t, menu.SliderIncreasing, w.slider(0).State())
	value := w.tuning.Gravity

	// Right goes up on the same frame the toggle closes the overlay
	w.frame(true)
	assert.False(t, w.dm.IsOpen)
	assert.Equal(t, menu.SliderDefault, w.slider(0).State())

	w.frame(false)
	w.frame(true)
	w.frame(true)
	assert.True(t, w.dm.IsOpen)
	assert.Equal(t, menu.SliderDefault, w.slider(0).State())
	assert.Equal(t, value, w.tuning.Gravity)
}

func TestDevMenuCallbackError(t *testing.T) {
	m := menu.New[components.TuningData]().
		Add(menu.NewAction("Explode", func(*components.TuningData) error {
			return errors.New("boom")
		}))
	w := newWorld(t, m, true)

	w.tap(menu.ButtonSpace)
	assert.Equal(t, "Explode: boom", w.dm.LastError)

	// Reopening clears the message
	w.frame(true)
	w.frame(false)
	w.frame(true)
	assert.Empty(t, w.dm.LastError)
}

func TestDevMenuWithoutEntity(t *testing.T) {
	w := newWorld(t, nil, true)
	w.ecs.World.Remove(components.DevMenu.MustFirst(w.ecs.World).Entity())

	assert.NotPanics(t, func() { systems.UpdateDevMenu(w.ecs) })
	assert.False(t, systems.IsDevMenuOpen(w.ecs))
}
