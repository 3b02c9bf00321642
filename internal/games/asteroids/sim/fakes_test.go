package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

type fakeCanvas struct {
	w, h       float64
	next       Handle
	shapes     map[Handle]Shape
	moves      int
	rotations  int
	configured map[Handle]core.Color
}

func newFakeCanvas(w, h float64) *fakeCanvas {
	return &fakeCanvas{
		w:          w,
		h:          h,
		shapes:     make(map[Handle]Shape),
		configured: make(map[Handle]core.Color),
	}
}

func (c *fakeCanvas) Create(shape Shape) Handle {
	c.next++
	c.shapes[c.next] = shape
	return c.next
}

func (c *fakeCanvas) Destroy(h Handle) {
	delete(c.shapes, h)
}

func (c *fakeCanvas) Move(h Handle, dx, dy float64) {
	shape := c.shapes[h]
	shape.Origin = shape.Origin.Add(core.V(dx, dy))
	c.shapes[h] = shape
	c.moves++
}

func (c *fakeCanvas) Rotate(Handle, float64) {
	c.rotations++
}

func (c *fakeCanvas) Configure(h Handle, _ string, value core.Color) {
	c.configured[h] = value
}

func (c *fakeCanvas) Extents() (float64, float64) {
	return c.w, c.h
}

type fakeHUD struct {
	score, lives int
	banner       string
}

func (h *fakeHUD) SetScore(score int)    { h.score = score }
func (h *fakeHUD) SetLives(lives int)    { h.lives = lives }
func (h *fakeHUD) SetBanner(text string) { h.banner = text }

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// quietConfig turns the spawners off so tests control the whole population.
func quietConfig() config.AsteroidsConfig {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Asteroids.MaxCount = 0
	cfg.Wells.MaxCount = 0
	cfg.Difficulty.Enabled = false
	return cfg
}

type harness struct {
	sim    *Sim
	canvas *fakeCanvas
	hud    *fakeHUD
	clock  *fakeClock
}

func newHarness(t *testing.T, cfg config.AsteroidsConfig) *harness {
	t.Helper()
	h := &harness{
		canvas: newFakeCanvas(800, 480),
		hud:    &fakeHUD{},
		clock:  &fakeClock{now: time.Unix(1_700_000_000, 0)},
	}
	s, err := New(Options{
		Config: cfg,
		Canvas: h.canvas,
		HUD:    h.hud,
		Clock:  h.clock.Now,
		Seed:   42,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h.sim = s
	return h
}

// place promotes entities immediately, bypassing the tick.
func (h *harness) place(entities ...*Entity) {
	for _, e := range entities {
		h.sim.Spawn(e)
	}
	h.sim.pop.commitAdds(h.sim.admit)
}

func (h *harness) asteroid(pos core.Vec2, size, angle, speed float64, breakable bool) *Entity {
	return h.sim.newAsteroid(pos, size, angle, speed, breakable)
}

func (h *harness) shot(pos core.Vec2) *Entity {
	shape := Shape{Kind: ShapeDot, Origin: pos, Points: []core.Vec2{{X: -1, Y: -1}, {X: 1, Y: 1}}}
	return h.sim.newEntity(KindShot, pos, 0, shape, true, shotBehavior{reach: h.sim.cfg.Ship.ShotRange})
}

func (h *harness) pending(kind Kind) []*Entity {
	var out []*Entity
	for _, e := range h.sim.pop.pendingAdd {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func (h *harness) live(kind Kind) []*Entity {
	var out []*Entity
	for _, e := range h.sim.Entities() {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
