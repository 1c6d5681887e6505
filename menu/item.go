package menu

// Item is one interactive row of a Menu
type Item[T any] interface {
	Label() string
	// Draw renders the item at pos. It must not mutate the item or settings.
	Draw(settings *T, r Renderer, pos Position, selected bool)
	// Event reacts to e while the item is selected
	Event(e Event, settings *T) error
}
