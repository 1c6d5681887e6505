package menu

import (
	"errors"
	"math"
	"strconv"
)

var (
	ErrInvalidRange = errors.New("menu: slider range min is greater than max")
	ErrInvalidStep  = errors.New("menu: slider step must be positive")
)

// SliderState is the direction a slider moves on each tick
type SliderState int

const (
	SliderDefault SliderState = iota
	SliderIncreasing
	SliderDecreasing
)

func (s SliderState) String() string {
	switch s {
	case SliderIncreasing:
		return "Increasing"
	case SliderDecreasing:
		return "Decreasing"
	}
	return "Default"
}

// Range is the closed interval a slider clamps its writes to
type Range struct {
	Min, Max float64
}

// Clamp limits v to the range
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Slider steps a bound value up or down on every tick while Right or Left is held
type Slider[T any] struct {
	label   string
	rng     Range
	step    float64
	binding Binding[T]
	format  func(float64) string
	state   SliderState
}

// NewSlider creates a slider item moving the bound value by step per tick
func NewSlider[T any](label string, rng Range, step float64, binding Binding[T]) (*Slider[T], error) {
	if math.IsNaN(rng.Min) || math.IsNaN(rng.Max) || rng.Min > rng.Max {
		return nil, ErrInvalidRange
	}
	if math.IsNaN(step) || step <= 0 {
		return nil, ErrInvalidStep
	}
	return &Slider[T]{
		label:   label,
		rng:     rng,
		step:    step,
		binding: binding,
		format:  formatValue,
	}, nil
}

// formatValue prints the shortest representation, so 1.0 shows as "1"
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SetFormat replaces how the value is printed next to the label
func (s *Slider[T]) SetFormat(format func(float64) string) *Slider[T] {
	if format == nil {
		format = formatValue
	}
	s.format = format
	return s
}

func (s *Slider[T]) Label() string {
	return s.label
}

func (s *Slider[T]) Range() Range {
	return s.rng
}

func (s *Slider[T]) Step() float64 {
	return s.step
}

func (s *Slider[T]) State() SliderState {
	return s.state
}

func (s *Slider[T]) Draw(settings *T, r Renderer, pos Position, selected bool) {
	value := s.binding.Get(settings)
	r.DrawText(s.label+" "+s.format(value), pos, itemColor(selected))
}

// Event applies the current direction on a tick, then updates the direction
// from presses and releases. A press only takes effect from the next tick.
func (s *Slider[T]) Event(e Event, settings *T) error {
	if e.IsTick() {
		s.tick(settings)
	}

	switch {
	case e.IsPress(ButtonRight):
		s.state = SliderIncreasing
	case e.IsPress(ButtonLeft):
		s.state = SliderDecreasing
	case e.IsRelease(ButtonRight), e.IsRelease(ButtonLeft):
		// Either key clears the direction, even if the other is still held
		s.state = SliderDefault
	}
	return nil
}

func (s *Slider[T]) tick(settings *T) {
	switch s.state {
	case SliderIncreasing:
		current := s.binding.Get(settings)
		s.binding.Set(settings, math.Min(s.rng.Max, current+s.step))
	case SliderDecreasing:
		current := s.binding.Get(settings)
		s.binding.Set(settings, math.Max(s.rng.Min, current-s.step))
	}
}
