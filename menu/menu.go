// Package menu implements an embeddable developer menu: a vertical list of
// actions and sliders bound to an externally owned settings object.
//
// A Menu is not safe for concurrent use. Hosts call Event and Draw from their
// own update loop.
package menu

import (
	"errors"
	"fmt"
)

// Layout of the vertical item stack, in pixels
const (
	LeftMargin  = 10
	TopMargin   = 10
	ItemSpacing = 20
)

var ErrIndexOutOfRange = errors.New("menu: item index out of range")

// Menu is an ordered list of items with a single selection cursor
type Menu[T any] struct {
	items    []Item[T]
	selected int
}

// New creates an empty menu
func New[T any]() *Menu[T] {
	return &Menu[T]{}
}

// Add appends an item. The selection is left unchanged.
func (m *Menu[T]) Add(item Item[T]) *Menu[T] {
	m.items = append(m.items, item)
	return m
}

func (m *Menu[T]) Len() int {
	return len(m.items)
}

// Selected returns the index under the cursor
func (m *Menu[T]) Selected() int {
	return m.selected
}

// SelectedItem returns the item under the cursor, or nil for an empty menu
func (m *Menu[T]) SelectedItem() Item[T] {
	if len(m.items) == 0 {
		return nil
	}
	return m.items[m.selected]
}

// Items returns a copy of the items in display order
func (m *Menu[T]) Items() []Item[T] {
	out := make([]Item[T], len(m.items))
	copy(out, m.items)
	return out
}

// Select moves the cursor to index i
func (m *Menu[T]) Select(i int) error {
	if i < 0 || i >= len(m.items) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(m.items))
	}
	m.selected = i
	return nil
}

// ItemPosition returns where the item at index i is drawn
func ItemPosition(i int) Position {
	return Position{X: LeftMargin, Y: TopMargin + ItemSpacing*i}
}

// Draw renders every item in order. It never mutates the menu or settings.
func (m *Menu[T]) Draw(settings *T, r Renderer) {
	for i, item := range m.items {
		item.Draw(settings, r, ItemPosition(i), i == m.selected)
	}
}

// Event moves the cursor on Up/Down presses, then forwards e to the selected
// item and returns the item's error unchanged. An empty menu ignores events.
func (m *Menu[T]) Event(e Event, settings *T) error {
	n := len(m.items)
	if n == 0 {
		return nil
	}

	switch {
	case e.IsPress(ButtonUp):
		m.selected = (m.selected - 1 + n) % n
	case e.IsPress(ButtonDown):
		m.selected = (m.selected + 1) % n
	}

	return m.items[m.selected].Event(e, settings)
}
