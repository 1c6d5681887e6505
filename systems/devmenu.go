package systems

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/automoto/devmenu/components"
	cfg "github.com/automoto/devmenu/config"
	"github.com/automoto/devmenu/fonts"
	"github.com/automoto/devmenu/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// DefaultTuning returns the settings object with every value at its default
func DefaultTuning() components.TuningData {
	return components.TuningData{
		Gravity:    cfg.Tuning.Gravity.InitialValue(),
		Bounce:     cfg.Tuning.Bounce.InitialValue(),
		Friction:   cfg.Tuning.Friction.InitialValue(),
		BallRadius: cfg.Tuning.BallRadius.InitialValue(),
		TimeScale:  cfg.Tuning.TimeScale.InitialValue(),
	}
}

// TuningMenu is the dev menu editing the demo settings object
type TuningMenu = menu.Menu[components.TuningData]

// NewTuningMenu builds the dev menu for the demo settings object
func NewTuningMenu() (*TuningMenu, error) {
	m := menu.New[components.TuningData]()

	sliders := []struct {
		conf  cfg.SliderConfig
		field func(*components.TuningData) *float64
	}{
		{cfg.Tuning.Gravity, func(t *components.TuningData) *float64 { return &t.Gravity }},
		{cfg.Tuning.Bounce, func(t *components.TuningData) *float64 { return &t.Bounce }},
		{cfg.Tuning.Friction, func(t *components.TuningData) *float64 { return &t.Friction }},
		{cfg.Tuning.BallRadius, func(t *components.TuningData) *float64 { return &t.BallRadius }},
		{cfg.Tuning.TimeScale, func(t *components.TuningData) *float64 { return &t.TimeScale }},
	}
	for _, s := range sliders {
		slider, err := menu.NewSlider(s.conf.Label,
			s.conf.Range(),
			s.conf.Step,
			menu.BindField(s.field))
		if err != nil {
			return nil, fmt.Errorf("slider %q: %w", s.conf.Label, err)
		}
		m.Add(slider.SetFormat(stepFormat(s.conf.Step)))
	}

	m.Add(menu.NewAction("Pause / Resume", func(t *components.TuningData) error {
		t.Paused = !t.Paused
		return nil
	}))
	m.Add(menu.NewAction("Reset ball", func(t *components.TuningData) error {
		t.ResetRequested = true
		return nil
	}))
	m.Add(menu.NewAction("Toggle hitboxes", func(t *components.TuningData) error {
		t.ShowHitboxes = !t.ShowHitboxes
		return nil
	}))
	m.Add(menu.NewAction("Restore defaults", func(t *components.TuningData) error {
		paused, hitboxes := t.Paused, t.ShowHitboxes
		*t = DefaultTuning()
		t.Paused, t.ShowHitboxes = paused, hitboxes
		return nil
	}))

	return m, nil
}

// stepFormat prints values with as many decimals as the step has, so
// accumulated float error never shows up in the overlay
func stepFormat(step float64) func(float64) string {
	decimals := 0
	for decimals < 6 {
		scaled := step * math.Pow10(decimals)
		if math.Abs(scaled-math.Round(scaled)) < 1e-9 {
			break
		}
		decimals++
	}
	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}
}

// tickSeconds is the duration of one update at the configured TPS
func tickSeconds() float64 {
	return 1 / float64(cfg.C.TPS)
}

// UpdateDevMenu toggles the overlay and forwards input to the menu while it is open.
func UpdateDevMenu(e *ecs.ECS) {
	entry, ok := components.DevMenu.First(e.World)
	if !ok {
		return
	}
	dm := components.DevMenu.Get(entry)
	tuning := components.Tuning.Get(entry)
	input := getOrCreateInput(e)
	dt := tickSeconds()

	if input.ToggleCurrent && !input.TogglePrevious {
		if dm.IsOpen {
			CloseDevMenu(dm, input, tuning)
		} else {
			OpenDevMenu(dm)
		}
	}

	updateSlide(dm, dt)

	if !dm.IsOpen {
		return
	}

	for _, ev := range MenuEvents(input, dt) {
		forwardEvent(dm, ev, tuning)
	}
}

func forwardEvent(dm *components.DevMenuData, ev menu.Event, tuning *components.TuningData) {
	if err := dm.Menu.Event(ev, tuning); err != nil {
		label := ""
		if item := dm.Menu.SelectedItem(); item != nil {
			label = item.Label()
		}
		slog.Error("Dev menu callback failed", "item", label, "event", ev.String(), "error", err)
		dm.LastError = fmt.Sprintf("%s: %v", label, err)
	}
}

// OpenDevMenu shows the overlay and starts the slide-in
func OpenDevMenu(dm *components.DevMenuData) {
	dm.IsOpen = true
	dm.LastError = ""
	dm.Slide = gween.New(dm.Offset, 0, cfg.Overlay.SlideDuration, ease.OutQuad)
	slog.Debug("Dev menu opened", "selected", dm.Menu.Selected())
}

// CloseDevMenu hides the overlay. Buttons held this frame or let go on it are
// released first, since the menu sees no input while closed.
func CloseDevMenu(dm *components.DevMenuData, input *components.InputData, tuning *components.TuningData) {
	for b := menu.ButtonNone + 1; b < menu.ButtonCount; b++ {
		if input.Current[b] || input.Previous[b] {
			forwardEvent(dm, menu.Release(b), tuning)
		}
	}
	dm.IsOpen = false
	dm.Slide = gween.New(dm.Offset, float32(-cfg.Overlay.PanelWidth), cfg.Overlay.SlideDuration, ease.InQuad)
	slog.Debug("Dev menu closed")
}

func updateSlide(dm *components.DevMenuData, dt float64) {
	if dm.Slide == nil {
		return
	}
	offset, finished := dm.Slide.Update(float32(dt))
	dm.Offset = offset
	if finished {
		dm.Slide = nil
	}
}

// IsDevMenuOpen returns true if the dev menu overlay is open
func IsDevMenuOpen(e *ecs.ECS) bool {
	entry, ok := components.DevMenu.First(e.World)
	if !ok {
		return false
	}
	return components.DevMenu.Get(entry).IsOpen
}

// screenRenderer draws menu text onto an ebiten image, shifted by the panel offset
type screenRenderer struct {
	screen  *ebiten.Image
	face    text.Face
	offsetX float64
}

func (r *screenRenderer) DrawText(s string, pos menu.Position, c menu.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(pos.X)+r.offsetX, float64(pos.Y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(r.screen, s, r.face, op)
}

var overlayFace, overlaySmallFace text.Face

// controlsHint picks the footer hint for the device that was used last
func controlsHint(e *ecs.ECS) string {
	entry, ok := components.Input.First(e.World)
	if ok && components.Input.Get(entry).LastInputMethod == components.InputGamepad {
		return cfg.Overlay.GamepadHint
	}
	return cfg.Overlay.KeyboardHint
}

// DrawDevMenu renders the dev menu panel while it is open or sliding.
func DrawDevMenu(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.DevMenu.First(e.World)
	if !ok {
		return
	}
	dm := components.DevMenu.Get(entry)
	if !dm.IsOpen && dm.Slide == nil {
		return
	}
	tuning := components.Tuning.Get(entry)

	if overlayFace == nil {
		overlayFace = fonts.Overlay.TextFace()
		overlaySmallFace = fonts.OverlaySmall.TextFace()
	}

	height := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(
		screen,
		dm.Offset, 0,
		float32(cfg.Overlay.PanelWidth), height,
		cfg.Overlay.BackgroundColor,
		false,
	)

	r := &screenRenderer{screen: screen, face: overlayFace, offsetX: float64(dm.Offset)}
	dm.Menu.Draw(tuning, r)

	pad := cfg.Overlay.PanelPadding
	footer := &text.DrawOptions{}
	footer.GeoM.Translate(float64(dm.Offset)+pad, float64(height)-pad-12)
	footer.ColorScale.ScaleWithColor(cfg.Overlay.FooterColor)
	text.Draw(screen, cfg.Overlay.Title, overlaySmallFace, footer)

	hint := &text.DrawOptions{}
	hint.GeoM.Translate(float64(dm.Offset)+pad, float64(height)-pad-26)
	hint.ColorScale.ScaleWithColor(cfg.Overlay.FooterColor)
	text.Draw(screen, controlsHint(e), overlaySmallFace, hint)

	if dm.LastError != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(dm.Offset)+pad, float64(height)-pad-40)
		op.ColorScale.ScaleWithColor(cfg.Overlay.ErrorColor)
		text.Draw(screen, dm.LastError, overlaySmallFace, op)
	}
}
