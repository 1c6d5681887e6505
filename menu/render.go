package menu

// Position is a screen position in pixels, origin at the top left
type Position struct {
	X, Y int
}

// Color is an RGBA color with normalized 0-1 components.
// It satisfies image/color.Color so renderers can pass it straight through.
type Color struct {
	R, G, B, A float32
}

// RGBA implements color.Color with alpha-premultiplied 16-bit components
func (c Color) RGBA() (r, g, b, a uint32) {
	a = channel(c.A)
	r = channel(c.R) * a / 0xffff
	g = channel(c.G) * a / 0xffff
	b = channel(c.B) * a / 0xffff
	return
}

func channel(v float32) uint32 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xffff
	}
	return uint32(v*0xffff + 0.5)
}

var (
	// SelectedColor is used for the item under the selection cursor
	SelectedColor = Color{R: 1.0, G: 0.5, B: 0.5, A: 1.0}
	// NormalColor is used for every other item
	NormalColor = Color{R: 0.5, G: 0.5, B: 0.5, A: 1.0}
)

func itemColor(selected bool) Color {
	if selected {
		return SelectedColor
	}
	return NormalColor
}

// Renderer paints text for the menu. Implementations are pure sinks.
type Renderer interface {
	DrawText(text string, pos Position, c Color)
}
