package asteroids

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// Visual characters for rendering
const (
	PolygonChar = '*'
	CircleChar  = 'o'
	FillChar    = '░'
	DotChar     = '.'
	LifeChar    = '▲'
)

// hudRows is the number of screen rows above the arena.
const hudRows = 1

// circleSegments is how many chords approximate a circle outline.
const circleSegments = 16

// Scene is the terminal drawing surface for the simulation.
// It keeps every shape in world units and rasterizes them onto a core.Screen on Render.
type Scene struct {
	cols, rows int
	cellW      float64
	cellH      float64

	next   sim.Handle
	shapes map[sim.Handle]*sim.Shape

	score  int
	lives  int
	banner string
}

// NewScene creates a scene for a screen of cols x rows cells. The top row holds the HUD.
func NewScene(cols, rows int, arena config.AsteroidsArena) *Scene {
	return &Scene{
		cols:   cols,
		rows:   max(rows-hudRows, 1),
		cellW:  arena.CellWidth,
		cellH:  arena.CellHeight,
		shapes: make(map[sim.Handle]*sim.Shape),
	}
}

// Extents returns the arena size in world units.
func (sc *Scene) Extents() (float64, float64) {
	return float64(sc.cols) * sc.cellW, float64(sc.rows) * sc.cellH
}

// Create stores a shape and returns its handle.
func (sc *Scene) Create(shape sim.Shape) sim.Handle {
	sc.next++
	sc.shapes[sc.next] = &shape
	return sc.next
}

// Destroy forgets a shape.
func (sc *Scene) Destroy(h sim.Handle) {
	delete(sc.shapes, h)
}

// Move translates a shape.
func (sc *Scene) Move(h sim.Handle, dx, dy float64) {
	if s, ok := sc.shapes[h]; ok {
		s.Origin = s.Origin.Add(core.V(dx, dy))
	}
}

// Rotate turns a shape about its origin.
func (sc *Scene) Rotate(h sim.Handle, deg float64) {
	s, ok := sc.shapes[h]
	if !ok {
		return
	}
	for i, p := range s.Points {
		s.Points[i] = p.Rotate(deg)
	}
}

// Configure recolors a shape.
func (sc *Scene) Configure(h sim.Handle, option string, value core.Color) {
	s, ok := sc.shapes[h]
	if !ok {
		return
	}
	switch option {
	case sim.OptionFill:
		s.Fill = value
	case sim.OptionOutline:
		s.Outline = value
	}
}

func (sc *Scene) SetScore(score int)    { sc.score = score }
func (sc *Scene) SetLives(lives int)    { sc.lives = lives }
func (sc *Scene) SetBanner(text string) { sc.banner = text }

// Len returns the number of shapes on the scene.
func (sc *Scene) Len() int {
	return len(sc.shapes)
}

// Render draws the HUD and every shape, oldest first.
func (sc *Scene) Render(dst *core.Screen) {
	dst.Clear()

	for _, h := range slices.Sorted(maps.Keys(sc.shapes)) {
		sc.drawShape(dst, sc.shapes[h])
	}

	sc.drawHUD(dst)
}

func (sc *Scene) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" SCORE %d", sc.score)
	dst.DrawText(0, 0, left)

	lives := "LIVES " + strings.Repeat(string(LifeChar), max(sc.lives, 0)) + " "
	dst.DrawTextColored(dst.Width()-len([]rune(lives)), 0, lives, core.ColorBrightCyan)

	if sc.banner != "" {
		n := len([]rune(sc.banner))
		x := (dst.Width() - n) / 2
		y := hudRows + sc.rows/2
		frame := core.NewRect(x-2, y-1, n+4, 3)
		dst.DrawRect(frame, ' ')
		dst.DrawBox(frame)
		dst.DrawTextColored(x, y, sc.banner, core.ColorBrightRed)
	}
}

func (sc *Scene) drawShape(dst *core.Screen, s *sim.Shape) {
	color := s.Outline
	if color == core.ColorDefault {
		color = core.ColorWhite
	}

	switch s.Kind {
	case sim.ShapeDot:
		glyph := s.Glyph
		if glyph == 0 {
			glyph = DotChar
		}
		x, y := sc.cell(s.Origin)
		dst.SetColored(x, y, glyph, color)

	case sim.ShapeCircle:
		if s.Fill != core.ColorDefault {
			sc.fillCircle(dst, s)
		}
		points := make([]core.Vec2, circleSegments)
		for i := range points {
			points[i] = core.Polar(s.Radius, float64(i)*360/circleSegments)
		}
		sc.outline(dst, s.Origin, points, glyphOr(s.Glyph, CircleChar), color)

	default:
		sc.outline(dst, s.Origin, s.Points, glyphOr(s.Glyph, PolygonChar), color)
	}
}

// outline draws a closed polyline through origin+points.
func (sc *Scene) outline(dst *core.Screen, origin core.Vec2, points []core.Vec2, glyph rune, color core.Color) {
	if len(points) == 0 {
		x, y := sc.cell(origin)
		dst.SetColored(x, y, glyph, color)
		return
	}
	for i, p := range points {
		q := points[(i+1)%len(points)]
		x0, y0 := sc.cell(origin.Add(p))
		x1, y1 := sc.cell(origin.Add(q))
		dst.DrawLine(x0, y0, x1, y1, glyph, color)
	}
}

// fillCircle shades every cell whose centre lies inside the circle.
func (sc *Scene) fillCircle(dst *core.Screen, s *sim.Shape) {
	x0, y0 := sc.cell(s.Origin.Sub(core.V(s.Radius, s.Radius)))
	x1, y1 := sc.cell(s.Origin.Add(core.V(s.Radius, s.Radius)))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			centre := core.V((float64(x)+0.5)*sc.cellW, (float64(y-hudRows)+0.5)*sc.cellH)
			if centre.Dist(s.Origin) <= s.Radius {
				dst.SetColored(x, y, FillChar, s.Fill)
			}
		}
	}
}

// cell maps a world position to a screen cell below the HUD.
func (sc *Scene) cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X / sc.cellW)), int(math.Floor(p.Y/sc.cellH)) + hudRows
}

func glyphOr(r, fallback rune) rune {
	if r == 0 {
		return fallback
	}
	return r
}
