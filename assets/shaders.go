package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// BloomShader extracts the bright parts of an image for the bloom pass
	BloomShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	bloomSrc, err := shaderFS.ReadFile("shaders/bloom.kage")
	if err != nil {
		return fmt.Errorf("read bloom shader: %w", err)
	}
	BloomShader, err = ebiten.NewShader(bloomSrc)
	if err != nil {
		return fmt.Errorf("compile bloom shader: %w", err)
	}
	return nil
}
