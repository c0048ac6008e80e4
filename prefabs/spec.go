package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/automoto/schematic/shapes"
	"gopkg.in/yaml.v3"
)

// SceneFile is the prefab describing the shapes and lights of the scene.
const SceneFile = "scene.yaml"

type SceneSpec struct {
	Name  string    `yaml:"name"`
	Shape ShapeSpec `yaml:"shape"`
	Light LightSpec `yaml:"light"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](SceneFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ShapeSpec struct {
	Name      string      `yaml:"name"`
	Box       BoxSpec     `yaml:"box"`
	Radii     RadiiSpec   `yaml:"radii"`
	Winding   WindingSpec `yaml:"winding"`
	Tolerance float32     `yaml:"tolerance"`
	Color     *YAMLColor  `yaml:"color"`
	Position  [3]float64  `yaml:"position"`
}

// Tessellate builds the mesh described by the spec.
func (s ShapeSpec) Tessellate() (*shapes.Mesh, error) {
	box := shapes.Box2D{
		Min: shapes.Point{X: s.Box.Min[0], Y: s.Box.Min[1]},
		Max: shapes.Point{X: s.Box.Max[0], Y: s.Box.Max[1]},
	}
	radii := shapes.BorderRadii{
		TopLeft:     s.Radii.TopLeft,
		TopRight:    s.Radii.TopRight,
		BottomLeft:  s.Radii.BottomLeft,
		BottomRight: s.Radii.BottomRight,
	}
	m, err := shapes.RoundedRectangle(box, radii, s.Winding.Winding, shapes.FillTolerance(s.Tolerance))
	if err != nil {
		return nil, fmt.Errorf("prefabs: tessellate %s: %w", s.Name, err)
	}
	return m, nil
}

// ColorOr returns the spec color, or fallback when none was given.
func (s ShapeSpec) ColorOr(fallback color.Color) color.Color {
	if s.Color == nil || s.Color.Color == nil {
		return fallback
	}
	return s.Color.Color
}

type BoxSpec struct {
	Min [2]float32 `yaml:"min"`
	Max [2]float32 `yaml:"max"`
}

type RadiiSpec struct {
	TopLeft     float32 `yaml:"top_left"`
	TopRight    float32 `yaml:"top_right"`
	BottomLeft  float32 `yaml:"bottom_left"`
	BottomRight float32 `yaml:"bottom_right"`
}

type LightSpec struct {
	Position        [3]float64 `yaml:"position"`
	Intensity       float64    `yaml:"intensity"`
	Range           float64    `yaml:"range"`
	Shadows         bool       `yaml:"shadows"`
	ShadowDepthBias float64    `yaml:"shadow_depth_bias"`
	Color           *YAMLColor `yaml:"color"`
}

type WindingSpec struct {
	shapes.Winding
}

func (w *WindingSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("winding must be a string")
	}
	switch strings.ToLower(value.Value) {
	case "", "positive":
		w.Winding = shapes.WindingPositive
	case "negative":
		w.Winding = shapes.WindingNegative
	default:
		return fmt.Errorf("invalid winding: %s", value.Value)
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
