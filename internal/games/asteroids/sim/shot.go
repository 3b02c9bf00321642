package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

type shotBehavior struct {
	reach float64
}

func (shotBehavior) OnCollide(s *Sim, self, other *Entity) {
	if other.Kind == KindAsteroid {
		s.Remove(self)
	}
}

// OnTick expires the shot on the tick its traveled distance passes the range.
func (b shotBehavior) OnTick(s *Sim, self *Entity) {
	if self.Body.Distance() > b.reach {
		s.Remove(self)
	}
}

// newShot fires from the ship's nose, inheriting the ship's velocity.
func (s *Sim) newShot(ship *Entity) *Entity {
	heading := ship.Body.Heading()
	pos := ship.Body.Position().Add(heading.Scale(shipNose))

	shape := Shape{
		Kind:    ShapeDot,
		Origin:  pos,
		Points:  []core.Vec2{{X: -1, Y: -1}, {X: 1, Y: 1}},
		Outline: core.ColorBrightYellow,
		Glyph:   '•',
	}
	e := s.newEntity(KindShot, pos, ship.Body.Angle(), shape, true, shotBehavior{reach: s.cfg.Ship.ShotRange})
	e.Body.SetVelocity(ship.Body.Velocity().Add(heading.Scale(s.cfg.Ship.ShotSpeed)))
	return e
}
