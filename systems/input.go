package systems

import (
	"github.com/automoto/devmenu/components"
	cfg "github.com/automoto/devmenu/config"
	"github.com/automoto/devmenu/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateDevMenu in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [menu.ButtonCount]bool{}
	input.TogglePrevious = input.ToggleCurrent
	input.ToggleCurrent = false

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	for button, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[button] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[button] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge analog stick into directional buttons
	left, right, up, down := getAnalogStickState(gamepadIDs)
	if left {
		input.Current[menu.ButtonLeft] = true
	}
	if right {
		input.Current[menu.ButtonRight] = true
	}
	if up {
		input.Current[menu.ButtonUp] = true
	}
	if down {
		input.Current[menu.ButtonDown] = true
	}
	if left || right || up || down {
		gamepadUsed = true
	}

	for _, key := range cfg.Overlay.ToggleKeys {
		if ebiten.IsKeyPressed(key) {
			input.ToggleCurrent = true
			keyboardUsed = true
		}
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for a button.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, b menu.Button) components.ActionState {
	curr := input.Current[b]
	prev := input.Previous[b]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// MenuEvents turns this frame's button edges into menu events: all releases,
// then all presses, then a single tick of dt seconds.
func MenuEvents(input *components.InputData, dt float64) []menu.Event {
	var events []menu.Event
	for b := menu.ButtonNone + 1; b < menu.ButtonCount; b++ {
		if GetAction(input, b).JustReleased {
			events = append(events, menu.Release(b))
		}
	}
	for b := menu.ButtonNone + 1; b < menu.ButtonCount; b++ {
		if GetAction(input, b).JustPressed {
			events = append(events, menu.Press(b))
		}
	}
	return append(events, menu.Tick(dt))
}
