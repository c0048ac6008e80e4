// Package shapes turns vector shapes into triangle meshes that the renderer
// can draw. Path flattening and triangulation are delegated to ebiten's
// vector package.
package shapes

import (
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	ErrInvalidTolerance = errors.New("shapes: tolerance must be positive")
	ErrEmptyBox         = errors.New("shapes: box has no area")
	ErrTooManyVertices  = errors.New("shapes: mesh exceeds 16-bit index range")
)

// flatness is how far, in path units, ebiten's curve flattener lets a
// segment stray from the curve. Paths are scaled so that this distance maps
// onto the requested tolerance.
const flatness = 0.5

type Point struct {
	X, Y float32
}

// Box2D is an axis-aligned rectangle. Min is the top-left corner.
type Box2D struct {
	Min, Max Point
}

func (b Box2D) Width() float32  { return b.Max.X - b.Min.X }
func (b Box2D) Height() float32 { return b.Max.Y - b.Min.Y }

type BorderRadii struct {
	TopLeft     float32
	TopRight    float32
	BottomLeft  float32
	BottomRight float32
}

// Winding selects the orientation of the emitted triangles.
type Winding int

const (
	WindingPositive Winding = iota
	WindingNegative
)

type FillOptions struct {
	// Tolerance is the maximum distance between the flattened outline and
	// the true curve.
	Tolerance float32
}

// FillTolerance returns fill options with the given tolerance.
func FillTolerance(t float32) FillOptions {
	return FillOptions{Tolerance: t}
}

// Vertex is a mesh position. Tessellated shapes lie on Z = 0.
type Vertex struct {
	X, Y, Z float32
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// SignedArea sums the signed area of every triangle. Positive winding gives a
// positive result.
func (m *Mesh) SignedArea() float64 {
	var area float64
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]]
		b := m.Vertices[m.Indices[i+1]]
		c := m.Vertices[m.Indices[i+2]]
		area += (float64(b.X-a.X)*float64(c.Y-a.Y) - float64(c.X-a.X)*float64(b.Y-a.Y)) / 2
	}
	return area
}

// Bounds returns the smallest box containing every vertex.
func (m *Mesh) Bounds() Box2D {
	if len(m.Vertices) == 0 {
		return Box2D{}
	}
	b := Box2D{
		Min: Point{X: m.Vertices[0].X, Y: m.Vertices[0].Y},
		Max: Point{X: m.Vertices[0].X, Y: m.Vertices[0].Y},
	}
	for _, v := range m.Vertices[1:] {
		b.Min.X = min(b.Min.X, v.X)
		b.Min.Y = min(b.Min.Y, v.Y)
		b.Max.X = max(b.Max.X, v.X)
		b.Max.Y = max(b.Max.Y, v.Y)
	}
	return b
}

// RoundedRectangle tessellates a rectangle whose corners are rounded by the
// given radii. Radii larger than half the shorter side are clamped and
// negative radii are treated as square corners.
func RoundedRectangle(box Box2D, radii BorderRadii, winding Winding, opts FillOptions) (*Mesh, error) {
	if !(opts.Tolerance > 0) || math.IsInf(float64(opts.Tolerance), 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTolerance, opts.Tolerance)
	}
	if !(box.Width() > 0) || !(box.Height() > 0) {
		return nil, fmt.Errorf("%w: %vx%v", ErrEmptyBox, box.Width(), box.Height())
	}

	k := flatness / opts.Tolerance
	path := roundedRectPath(box, clampRadii(box, radii), k)

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	if len(vs) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d vertices", ErrTooManyVertices, len(vs))
	}

	m := &Mesh{
		Vertices: make([]Vertex, len(vs)),
		Indices:  is,
	}
	for i, v := range vs {
		m.Vertices[i] = Vertex{X: v.DstX / k, Y: v.DstY / k}
	}
	if winding == WindingNegative {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			m.Indices[i+1], m.Indices[i+2] = m.Indices[i+2], m.Indices[i+1]
		}
	}
	return m, nil
}

func clampRadii(box Box2D, r BorderRadii) BorderRadii {
	limit := min(box.Width(), box.Height()) / 2
	c := func(v float32) float32 {
		return max(0, min(v, limit))
	}
	return BorderRadii{
		TopLeft:     c(r.TopLeft),
		TopRight:    c(r.TopRight),
		BottomLeft:  c(r.BottomLeft),
		BottomRight: c(r.BottomRight),
	}
}

// roundedRectPath walks top-left, top-right, bottom-right, bottom-left with
// every coordinate multiplied by k.
func roundedRectPath(box Box2D, r BorderRadii, k float32) *vector.Path {
	x0, y0 := box.Min.X*k, box.Min.Y*k
	x1, y1 := box.Max.X*k, box.Max.Y*k
	tl, tr, bl, br := r.TopLeft*k, r.TopRight*k, r.BottomLeft*k, r.BottomRight*k

	var p vector.Path
	p.MoveTo(x0+tl, y0)
	p.LineTo(x1-tr, y0)
	corner(&p, x1, y0, x1, y0+tr, tr)
	p.LineTo(x1, y1-br)
	corner(&p, x1, y1, x1-br, y1, br)
	p.LineTo(x0+bl, y1)
	corner(&p, x0, y1, x0, y1-bl, bl)
	p.LineTo(x0, y0+tl)
	corner(&p, x0, y0, x0+tl, y0, tl)
	p.Close()
	return &p
}

func corner(p *vector.Path, cx, cy, nx, ny, radius float32) {
	if radius <= 0 {
		p.LineTo(cx, cy)
		return
	}
	p.ArcTo(cx, cy, nx, ny, radius)
}
