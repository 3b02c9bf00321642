package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Handle identifies a drawn shape on a Canvas.
type Handle int

// ShapeKind selects how a Canvas draws a Shape.
type ShapeKind uint8

const (
	ShapePolygon ShapeKind = iota // Closed outline through Points
	ShapeCircle                   // Ring of Radius around Origin
	ShapeDot                      // Single glyph at Origin
)

// Shape describes what to draw. Points are relative to Origin.
type Shape struct {
	Kind    ShapeKind
	Origin  core.Vec2
	Points  []core.Vec2
	Radius  float64
	Outline core.Color
	Fill    core.Color
	Glyph   rune
}

// Bounds returns the shape's points in world coordinates, for deriving a collider.
func (s Shape) Bounds() []core.Vec2 {
	if s.Kind == ShapeCircle {
		return []core.Vec2{
			s.Origin.Add(core.V(-s.Radius, -s.Radius)),
			s.Origin.Add(core.V(s.Radius, s.Radius)),
		}
	}
	if len(s.Points) == 0 {
		return []core.Vec2{s.Origin}
	}
	out := make([]core.Vec2, len(s.Points))
	for i, p := range s.Points {
		out[i] = s.Origin.Add(p)
	}
	return out
}

// clone returns a copy that shares no point storage with s.
func (s Shape) clone() Shape {
	s.Points = append([]core.Vec2(nil), s.Points...)
	return s
}

// Canvas is the drawing surface the simulation renders through.
// Coordinates are world units; rotation is about the shape's origin.
type Canvas interface {
	Create(shape Shape) Handle
	Destroy(h Handle)
	Move(h Handle, dx, dy float64)
	Rotate(h Handle, deg float64)
	Configure(h Handle, option string, value core.Color)
	Extents() (w, h float64)
}

// HUD displays player stats.
type HUD interface {
	SetScore(score int)
	SetLives(lives int)
	SetBanner(text string)
}

// Visual options accepted by Configure.
const (
	OptionFill    = "fill"
	OptionOutline = "outline"
)

// Visual is an entity's shape on a Canvas. It tracks whether the shape is drawn
// and rejects operations that do not match that state.
type Visual struct {
	canvas Canvas
	shape  Shape
	handle Handle
	drawn  bool
}

// NewVisual prepares a shape for drawing on canvas. Nothing is drawn yet.
func NewVisual(canvas Canvas, shape Shape) *Visual {
	return &Visual{canvas: canvas, shape: shape.clone()}
}

func (v *Visual) Drawn() bool    { return v.drawn }
func (v *Visual) Handle() Handle { return v.handle }
func (v *Visual) Shape() Shape   { return v.shape.clone() }

// Draw puts the shape on the canvas.
func (v *Visual) Draw() error {
	if v.drawn {
		return ErrAlreadyDrawn
	}
	v.handle = v.canvas.Create(v.shape.clone())
	v.drawn = true
	return nil
}

// Undraw removes the shape from the canvas.
func (v *Visual) Undraw() error {
	if !v.drawn {
		return ErrNotDrawn
	}
	v.canvas.Destroy(v.handle)
	v.drawn = false
	return nil
}

// Move translates the drawn shape.
func (v *Visual) Move(d core.Vec2) error {
	if !v.drawn {
		return ErrNotDrawn
	}
	v.shape.Origin = v.shape.Origin.Add(d)
	v.canvas.Move(v.handle, d.X, d.Y)
	return nil
}

// Rotate turns the drawn shape about its origin. It has no effect on collisions.
func (v *Visual) Rotate(deg float64) error {
	if !v.drawn {
		return ErrNotDrawn
	}
	for i, p := range v.shape.Points {
		v.shape.Points[i] = p.Rotate(deg)
	}
	v.canvas.Rotate(v.handle, deg)
	return nil
}

// Configure changes a color option. Undrawn visuals apply it when drawn.
func (v *Visual) Configure(option string, value core.Color) error {
	switch option {
	case OptionFill:
		v.shape.Fill = value
	case OptionOutline:
		v.shape.Outline = value
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOption, option)
	}
	if v.drawn {
		v.canvas.Configure(v.handle, option, value)
	}
	return nil
}
