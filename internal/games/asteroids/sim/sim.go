// Package sim is the asteroids simulation engine: kinematics, box collisions,
// entity behaviors, spawning and the fixed-step loop that keeps the entity
// population consistent while it is iterated.
//
// The engine draws through the Canvas and HUD interfaces and reads player input
// from Controls. It never blocks and is not safe for concurrent use.
package sim

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Mode is the loop state.
type Mode uint8

const (
	ModeRunning Mode = iota
	ModeGameOver
)

func (m Mode) String() string {
	if m == ModeGameOver {
		return "game over"
	}
	return "running"
}

// Options configures a Sim.
type Options struct {
	Config config.AsteroidsConfig
	Canvas Canvas
	HUD    HUD              // optional
	Logger *log.Logger      // nil discards
	Clock  func() time.Time // nil means time.Now; drives particle lifetimes
	Seed   int64
}

// State is a read-only summary of the loop.
type State struct {
	Score     int
	Lives     int
	Mode      Mode
	Paused    bool
	Tick      int
	ResetIn   int
	Asteroids int
	Shots     int
	Wells     int
	Particles int
}

// Sim owns the entity population and advances it one tick at a time.
type Sim struct {
	cfg        config.AsteroidsConfig
	canvas     Canvas
	hud        HUD
	logger     *log.Logger
	clock      func() time.Time
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	pop      *population
	ship     *Entity
	controls Controls
	nextID   EntityID

	score   int
	lives   int
	mode    Mode
	paused  bool
	tick    int
	resetIn int

	lastAsteroid int
	lastWell     int
}

// New creates a simulation with a live ship at the arena centre.
func New(opts Options) (*Sim, error) {
	if opts.Canvas == nil {
		return nil, errors.New("sim: canvas is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	s := &Sim{
		cfg:        opts.Config,
		canvas:     opts.Canvas,
		hud:        opts.HUD,
		logger:     opts.Logger,
		clock:      opts.Clock,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
		pop:        newPopulation(),
	}
	if s.hud == nil {
		s.hud = nopHUD{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.clock == nil {
		s.clock = time.Now
	}

	s.reset()
	return s, nil
}

// Controls returns the intent flags the loop polls each tick.
func (s *Sim) Controls() *Controls {
	return &s.controls
}

// Ship returns the current ship, which may still be pending, or nil during game over.
func (s *Sim) Ship() *Entity {
	return s.ship
}

// Entities returns the live population in promotion order.
func (s *Sim) Entities() []*Entity {
	return append([]*Entity(nil), s.pop.live...)
}

// State summarizes the loop.
func (s *Sim) State() State {
	return State{
		Score:     s.score,
		Lives:     s.lives,
		Mode:      s.mode,
		Paused:    s.paused,
		Tick:      s.tick,
		ResetIn:   s.resetIn,
		Asteroids: s.pop.count(KindAsteroid),
		Shots:     s.pop.count(KindShot),
		Wells:     s.pop.count(KindBlackHole),
		Particles: s.pop.count(KindParticle),
	}
}

// Pause toggles pause. Paused ticks change nothing.
func (s *Sim) Pause() {
	s.paused = !s.paused
	if s.paused {
		s.hud.SetBanner("PAUSED")
	} else {
		s.hud.SetBanner(s.banner())
	}
}

// Restart starts a new game immediately, without waiting for the reset delay.
func (s *Sim) Restart() {
	s.reset()
}

// Spawn queues e for promotion at the next commit point.
func (s *Sim) Spawn(e *Entity) {
	s.pop.queueAdd(e)
}

// Remove marks e for removal at the next commit point.
// It returns false if e was already marked.
func (s *Sim) Remove(e *Entity) bool {
	return s.pop.queueRemove(e)
}

// Tick advances the simulation by one fixed step.
func (s *Sim) Tick() {
	if s.paused {
		return
	}
	s.tick++

	s.steer()
	s.detect()
	s.pop.commitRemoves(s.release)
	s.pop.commitAdds(s.admit)
	s.integrate()
	s.spawnAsteroid()
	s.spawnWell()
	s.updateHUD()

	if s.mode == ModeGameOver {
		s.resetIn--
		if s.resetIn <= 0 {
			s.reset()
		}
	}
}

// detect tests every ordered pair of a snapshot of the live collidables and
// dispatches each hit to the first entity's behavior.
func (s *Sim) detect() {
	snap := s.pop.snapshot()
	for _, a := range snap {
		for _, b := range snap {
			if a == b {
				continue
			}
			hit, err := a.CheckCollide(b)
			if err != nil {
				panic(err)
			}
			if hit {
				a.handleCollision(s, b)
			}
		}
	}
}

// integrate moves every live entity that is not marked for removal and wraps it
// around the arena.
func (s *Sim) integrate() {
	w, h := s.canvas.Extents()
	dt := s.cfg.Physics.TimeStep

	for _, e := range s.pop.live {
		if e.removed {
			continue
		}
		e.update(s, dt)
		s.wrap(e, w, h)
	}
}

// wrap moves an entity that left the arena to the opposite edge.
func (s *Sim) wrap(e *Entity, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}

	pos := e.Body.Position()
	var d core.Vec2
	switch {
	case pos.X < 0:
		d.X = w
	case pos.X > w:
		d.X = -w
	}
	switch {
	case pos.Y < 0:
		d.Y = h
	case pos.Y > h:
		d.Y = -h
	}
	if d != (core.Vec2{}) {
		e.translate(s, d)
	}
}

// reset tears down every entity and starts over with a single live ship.
func (s *Sim) reset() {
	s.pop.clear(s.release)
	s.controls.reset()

	s.score = 0
	s.lives = s.cfg.Ship.Lives
	s.mode = ModeRunning
	s.paused = false
	s.tick = 0
	s.resetIn = 0
	s.lastAsteroid = 0
	s.lastWell = 0

	s.ship = s.newShip(s.center())
	s.Spawn(s.ship)
	s.pop.commitAdds(s.admit)

	s.hud.SetBanner("")
	s.updateHUD()
	s.logger.Info("new game", "lives", s.lives)
}

func (s *Sim) updateHUD() {
	s.hud.SetScore(s.score)
	s.hud.SetLives(max(s.lives, 0))
}

func (s *Sim) banner() string {
	if s.mode == ModeGameOver {
		return "GAME OVER"
	}
	return ""
}

func (s *Sim) center() core.Vec2 {
	w, h := s.canvas.Extents()
	return core.V(w/2, h/2)
}

// newEntity builds an entity whose collider, when it has one, is the box around
// shape centred exactly on pos.
func (s *Sim) newEntity(kind Kind, pos core.Vec2, angle float64, shape Shape, collidable bool, b Behavior) *Entity {
	s.nextID++
	e := &Entity{
		ID:       s.nextID,
		Kind:     kind,
		Body:     NewBody(pos, angle, s.clock()),
		Visual:   NewVisual(s.canvas, shape),
		Behavior: b,
	}
	if collidable {
		hw, hh := NewBox(shape.Bounds()).HalfExtents()
		e.Collider = NewBoxAt(pos, hw, hh)
	}
	return e
}

func (s *Sim) admit(e *Entity) {
	s.must(e, e.Visual.Draw())
}

func (s *Sim) release(e *Entity) {
	s.must(e, e.Visual.Undraw())
}

// must panics on an invariant violation. These are programmer errors, not
// conditions the running game recovers from.
func (s *Sim) must(e *Entity, err error) {
	if err != nil {
		panic(fmt.Errorf("%s: %w", e, err))
	}
}

// recenter shifts points so their bounding box is centred on the origin.
func recenter(points []core.Vec2) []core.Vec2 {
	c := NewBox(points).Center()
	out := make([]core.Vec2, len(points))
	for i, p := range points {
		out[i] = p.Sub(c)
	}
	return out
}

type nopHUD struct{}

func (nopHUD) SetScore(int)     {}
func (nopHUD) SetLives(int)     {}
func (nopHUD) SetBanner(string) {}
