package menu

// Button is a logical keyboard button the menu reacts to
type Button int

const (
	ButtonNone Button = iota
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonSpace
	ButtonCount // Must be last - used for array sizing
)

var buttonNames = [ButtonCount]string{
	ButtonNone:  "None",
	ButtonUp:    "Up",
	ButtonDown:  "Down",
	ButtonLeft:  "Left",
	ButtonRight: "Right",
	ButtonSpace: "Space",
}

func (b Button) String() string {
	if b < 0 || b >= ButtonCount {
		return "Unknown"
	}
	return buttonNames[b]
}
