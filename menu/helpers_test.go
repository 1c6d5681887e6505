package menu_test

import "github.com/automoto/devmenu/menu"

type settings struct {
	Counter int
	Volume  float64
	Speed   float64
}

type drawCall struct {
	Text  string
	Pos   menu.Position
	Color menu.Color
}

type recorder struct {
	calls []drawCall
}

func (r *recorder) DrawText(text string, pos menu.Position, c menu.Color) {
	r.calls = append(r.calls, drawCall{Text: text, Pos: pos, Color: c})
}

func counterAction(label string) *menu.Action[settings] {
	return menu.NewAction(label, func(s *settings) error {
		s.Counter++
		return nil
	})
}

func volumeSlider(lo, hi, step float64) *menu.Slider[settings] {
	s, err := menu.NewSlider("Volume", menu.Range{Min: lo, Max: hi}, step,
		menu.BindField(func(s *settings) *float64 { return &s.Volume }))
	if err != nil {
		panic(err)
	}
	return s
}
