package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Overlay      FontName = "overlay"
	OverlaySmall FontName = "overlay-small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// TextFace returns the font wrapped for ebiten's text/v2 package
func (f FontName) TextFace() text.Face {
	return text.NewGoXFace(getFont(f))
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefault loads the Go regular font under name
func LoadDefault(name FontName, size float64) error {
	return LoadFontWithSize(name, goregular.TTF, size)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parsing font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// Loaded reports whether name has been loaded
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
