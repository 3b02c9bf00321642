package sim

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// blackHoleBehavior pulls anything overlapping its box toward its centre and lets go
// once the victim leaves the box.
type blackHoleBehavior struct {
	attraction float64
	spin       float64
	victims    *intmap.Set[EntityID]
}

// OnCollide points the victim's gravity away from the hole. Integration subtracts
// gravity from velocity, so the victim accelerates toward the centre.
func (b *blackHoleBehavior) OnCollide(_ *Sim, self, other *Entity) {
	other.Body.SetGravity(b.pull(self, other))
	b.victims.Add(other.ID)
}

func (b *blackHoleBehavior) pull(self, victim *Entity) core.Vec2 {
	return victim.Body.Position().Sub(self.Body.Position()).Unit().Scale(b.attraction)
}

func (b *blackHoleBehavior) OnTick(s *Sim, self *Entity) {
	var released []EntityID
	b.victims.ForEach(func(id EntityID) bool {
		victim, ok := s.pop.get(id)
		if !ok || victim.removed {
			released = append(released, id)
			return true
		}
		hit, err := self.CheckCollide(victim)
		if err != nil {
			panic(err)
		}
		if !hit {
			victim.Body.SetGravity(s.heldPull(self, victim))
			released = append(released, id)
		}
		return true
	})
	for _, id := range released {
		b.victims.Del(id)
	}

	if b.spin != 0 {
		s.must(self, self.Visual.Rotate(b.spin))
	}
}

// heldPull returns the pull of another black hole that still holds victim, or zero
// when none does.
func (s *Sim) heldPull(leaving, victim *Entity) core.Vec2 {
	for _, e := range s.pop.live {
		if e == leaving || e.removed || e.Kind != KindBlackHole {
			continue
		}
		b, ok := e.Behavior.(*blackHoleBehavior)
		if !ok || !b.victims.Has(victim.ID) {
			continue
		}
		hit, err := e.CheckCollide(victim)
		if err != nil {
			panic(err)
		}
		if hit {
			return b.pull(e, victim)
		}
	}
	return core.Vec2{}
}

// Victims returns how many entities a black hole is currently holding.
func Victims(e *Entity) int {
	if b, ok := e.Behavior.(*blackHoleBehavior); ok {
		return b.victims.Len()
	}
	return 0
}

func (s *Sim) newBlackHole(pos core.Vec2, radius, angle, speed float64) *Entity {
	shape := Shape{
		Kind:    ShapeCircle,
		Origin:  pos,
		Radius:  radius,
		Outline: core.ColorMagenta,
		Fill:    core.ColorBlue,
		Glyph:   '@',
	}
	b := &blackHoleBehavior{
		attraction: s.cfg.Physics.Attraction,
		spin:       s.cfg.Wells.SpinSpeed,
		victims:    intmap.NewSet[EntityID](8),
	}
	e := s.newEntity(KindBlackHole, pos, angle, shape, true, b)
	e.Body.SetVelocity(core.Polar(speed, angle))
	return e
}
