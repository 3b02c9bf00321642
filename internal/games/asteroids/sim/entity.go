package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// EntityID identifies an entity for the lifetime of a Sim.
type EntityID uint32

// Kind tags the entity variant.
type Kind uint8

const (
	KindShip Kind = iota
	KindAsteroid
	KindShot
	KindBlackHole
	KindParticle
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindAsteroid:
		return "asteroid"
	case KindShot:
		return "shot"
	case KindBlackHole:
		return "blackhole"
	case KindParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// Behavior is the variant-specific part of an entity.
//
// Both hooks run inside Sim.Tick. They may queue entities through Sim.Spawn and
// removals through Sim.Remove but never touch the live population directly.
type Behavior interface {
	// OnCollide resolves self's side of a collision with other.
	OnCollide(s *Sim, self, other *Entity)
	// OnTick runs after self has been integrated.
	OnTick(s *Sim, self *Entity)
}

// Entity couples a body, a visual and an optional collider with a behavior.
type Entity struct {
	ID       EntityID
	Kind     Kind
	Body     *Body
	Visual   *Visual
	Collider Collider // nil for decorative entities
	Behavior Behavior

	collided bool
	removed  bool
}

func (e *Entity) String() string {
	return fmt.Sprintf("entity %d (%s)", e.ID, e.Kind)
}

// Collidable reports whether the entity takes part in collision detection.
func (e *Entity) Collidable() bool {
	return e.Collider != nil
}

// Collided reports whether the entity has resolved at least one collision.
func (e *Entity) Collided() bool {
	return e.collided
}

// Removed reports whether the entity is queued for removal or already gone.
func (e *Entity) Removed() bool {
	return e.removed
}

// CheckCollide tests e against other.
func (e *Entity) CheckCollide(other *Entity) (bool, error) {
	if e.Collider == nil || other.Collider == nil {
		return false, fmt.Errorf("%s vs %s: %w", e, other, ErrIncompatibleCollider)
	}
	hit, err := e.Collider.Overlap(other.Collider)
	if err != nil {
		return false, fmt.Errorf("%s vs %s: %w", e, other, err)
	}
	return hit, nil
}

// handleCollision flags e and lets its behavior resolve the hit.
func (e *Entity) handleCollision(s *Sim, other *Entity) {
	e.collided = true
	if e.Behavior != nil {
		e.Behavior.OnCollide(s, e, other)
	}
}

// update integrates the body, carries the visual and collider along, then runs
// the behavior's tick hook.
func (e *Entity) update(s *Sim, dt float64) {
	delta := e.Body.Integrate(dt, s.clock())
	e.follow(s, delta)
	if e.Behavior != nil {
		e.Behavior.OnTick(s, e)
	}
}

// translate moves the whole entity without counting toward distance traveled.
func (e *Entity) translate(s *Sim, d core.Vec2) {
	e.Body.translate(d)
	e.follow(s, d)
}

// follow moves the visual and collider by d so they track the body.
func (e *Entity) follow(s *Sim, d core.Vec2) {
	if e.Collider != nil {
		e.Collider.Move(d)
	}
	if e.Visual != nil {
		s.must(e, e.Visual.Move(d))
	}
}
