package menu

// Action runs a callback once per press of Space, Left or Right
type Action[T any] struct {
	label  string
	action func(*T) error
}

// NewAction creates an action item. The callback gets exclusive access to settings.
func NewAction[T any](label string, action func(*T) error) *Action[T] {
	return &Action[T]{label: label, action: action}
}

func (a *Action[T]) Label() string {
	return a.label
}

func (a *Action[T]) Draw(_ *T, r Renderer, pos Position, selected bool) {
	r.DrawText(a.label, pos, itemColor(selected))
}

// Event fires the callback on a qualifying press and returns its error unchanged
func (a *Action[T]) Event(e Event, settings *T) error {
	if e.Kind != EventPress {
		return nil
	}
	switch e.Button {
	case ButtonSpace, ButtonLeft, ButtonRight:
		return a.action(settings)
	}
	return nil
}
