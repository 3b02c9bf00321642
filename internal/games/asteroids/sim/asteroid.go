package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

const (
	asteroidVertices = 9
	fragmentCount    = 3
)

type asteroidBehavior struct {
	size      float64
	breakable bool
	spin      float64
}

// OnCollide destroys the asteroid on contact with a ship, a shot or another asteroid.
// Only a shot scores.
func (b *asteroidBehavior) OnCollide(s *Sim, self, other *Entity) {
	switch other.Kind {
	case KindShip, KindAsteroid, KindShot:
		s.destroyAsteroid(self, b, other.Kind == KindShot)
	}
}

func (b *asteroidBehavior) OnTick(s *Sim, self *Entity) {
	if b.spin != 0 {
		s.must(self, self.Visual.Rotate(b.spin))
	}
}

// AsteroidInfo returns the generated size and breakability of an asteroid entity.
func AsteroidInfo(e *Entity) (size float64, breakable bool, ok bool) {
	b, ok := e.Behavior.(*asteroidBehavior)
	if !ok {
		return 0, false, false
	}
	return b.size, b.breakable, true
}

func (s *Sim) newAsteroid(pos core.Vec2, size, angle, speed float64, breakable bool) *Entity {
	points := make([]core.Vec2, asteroidVertices)
	for i := range points {
		r := size * (0.75 + 0.25*s.rng.Float64())
		points[i] = core.Polar(r, float64(i)*360/asteroidVertices)
	}

	shape := Shape{
		Kind:    ShapePolygon,
		Origin:  pos,
		Points:  recenter(points),
		Outline: core.ColorWhite,
	}
	b := &asteroidBehavior{size: size, breakable: breakable, spin: s.cfg.Asteroids.SpinSpeed}
	e := s.newEntity(KindAsteroid, pos, angle, shape, true, b)
	e.Body.SetVelocity(core.Polar(speed, angle))
	return e
}

// destroyAsteroid removes an asteroid once, scoring it when a shot did the work and
// splitting it when it is breakable.
func (s *Sim) destroyAsteroid(e *Entity, b *asteroidBehavior, byShot bool) {
	if !s.Remove(e) {
		return
	}
	if byShot {
		s.score += s.cfg.Asteroids.Points
	}
	s.emitDebris(e.Body.Position(), core.ColorGray)

	if !b.breakable {
		return
	}
	s.breakup(e, b)
}

// breakup queues three non-breakable fragments at equal 120 degree offsets around the
// parent's last position, each heading outward at the parent's speed.
func (s *Sim) breakup(e *Entity, b *asteroidBehavior) {
	origin := e.Body.Position()
	speed := e.Body.Speed()
	half := b.size / 2

	for k := range fragmentCount {
		angle := e.Body.Angle() + float64(k)*360/fragmentCount
		pos := origin.Add(core.Polar(b.size, angle))
		child := s.newAsteroid(pos, half, angle, speed, false)
		s.must(child, child.Visual.Configure(OptionOutline, core.ColorGray))
		s.Spawn(child)
	}
	s.logger.Debug("asteroid broke up", "id", e.ID, "size", math.Round(b.size))
}
