package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

type particleBehavior struct{}

func (particleBehavior) OnCollide(*Sim, *Entity, *Entity) {}

func (particleBehavior) OnTick(s *Sim, self *Entity) {
	if self.Body.Expired() {
		s.Remove(self)
	}
}

func (s *Sim) newParticle(pos core.Vec2, color core.Color) *Entity {
	cfg := s.cfg.Particles
	angle := s.rng.Float64() * 360

	shape := Shape{Kind: ShapeDot, Origin: pos, Outline: color, Glyph: '.'}
	e := s.newEntity(KindParticle, pos, angle, shape, false, particleBehavior{})
	e.Body.SetVelocity(core.Polar(s.uniform(cfg.MinSpeed, cfg.MaxSpeed), angle))
	e.Body.SetMaxLifetime(cfg.Lifetime)
	return e
}

// emitDebris scatters decorative particles from pos.
func (s *Sim) emitDebris(pos core.Vec2, color core.Color) {
	if s.cfg.Particles.Lifetime <= 0 {
		return
	}
	for range s.cfg.Asteroids.DebrisCount {
		s.Spawn(s.newParticle(pos, color))
	}
}
