package menu

import "fmt"

// EventKind tells which fact an Event carries
type EventKind int

const (
	EventPress EventKind = iota
	EventRelease
	EventTick
)

// Event is a single input or update fact delivered to the menu.
// Button is only meaningful for presses and releases, Dt only for ticks.
type Event struct {
	Kind   EventKind
	Button Button
	Dt     float64 // seconds since the previous tick
}

// Press returns a press event for b
func Press(b Button) Event {
	return Event{Kind: EventPress, Button: b}
}

// Release returns a release event for b
func Release(b Button) Event {
	return Event{Kind: EventRelease, Button: b}
}

// Tick returns an update event carrying the elapsed time
func Tick(dt float64) Event {
	return Event{Kind: EventTick, Dt: dt}
}

// IsPress reports whether e is a press of b
func (e Event) IsPress(b Button) bool {
	return e.Kind == EventPress && e.Button == b
}

// IsRelease reports whether e is a release of b
func (e Event) IsRelease(b Button) bool {
	return e.Kind == EventRelease && e.Button == b
}

// IsTick reports whether e is an update tick
func (e Event) IsTick() bool {
	return e.Kind == EventTick
}

func (e Event) String() string {
	switch e.Kind {
	case EventPress:
		return fmt.Sprintf("Press(%s)", e.Button)
	case EventRelease:
		return fmt.Sprintf("Release(%s)", e.Button)
	case EventTick:
		return fmt.Sprintf("Tick(%g)", e.Dt)
	}
	return "Event(?)"
}
