package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const HUD FontName = "hud"

// Get returns the face as an ebiten text face.
func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]text.Face{}
)

// LoadDefaults registers the HUD face from the bundled Go Regular font.
func LoadDefaults() error {
	return LoadFontWithSize(HUD, goregular.TTF, 14)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	var face font.Face = truetype.NewFace(fontData, &truetype.Options{Size: size})
	fonts[name] = text.NewGoXFace(face)
	return nil
}

func getFont(name FontName) text.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

// Loaded reports whether name has been registered.
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}
