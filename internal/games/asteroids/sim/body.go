package sim

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Body is the kinematic state of one entity.
//
// Position and velocity are in world units, the heading in degrees within [0, 360).
// Distance and lifetime only ever grow.
type Body struct {
	pos     core.Vec2
	vel     core.Vec2
	angle   float64
	gravity core.Vec2

	distance    float64
	lifetime    float64 // seconds of real time
	maxLifetime float64 // zero means the body never expires
	last        time.Time
}

// NewBody creates a body at pos facing angle, with its lifetime clock starting at now.
func NewBody(pos core.Vec2, angle float64, now time.Time) *Body {
	return &Body{
		pos:   pos,
		angle: core.WrapAngle(angle),
		last:  now,
	}
}

// Integrate advances the body by dt simulated seconds and returns the displacement.
//
// Gravity is subtracted from velocity, and the position moves by the mean of the old
// and new velocities. Lifetime accumulates the real time elapsed since the previous call.
func (b *Body) Integrate(dt float64, now time.Time) core.Vec2 {
	next := b.vel.Sub(b.gravity.Scale(dt))
	delta := b.vel.Add(next).Scale(dt / 2)

	b.vel = next
	b.pos = b.pos.Add(delta)
	b.distance += delta.Len()

	if elapsed := now.Sub(b.last); elapsed > 0 {
		b.lifetime += elapsed.Seconds()
	}
	b.last = now

	return delta
}

func (b *Body) Position() core.Vec2 { return b.pos }
func (b *Body) Velocity() core.Vec2 { return b.vel }
func (b *Body) Angle() float64      { return b.angle }
func (b *Body) Gravity() core.Vec2  { return b.gravity }
func (b *Body) Distance() float64   { return b.distance }
func (b *Body) Lifetime() float64   { return b.lifetime }

// Speed returns the velocity magnitude.
func (b *Body) Speed() float64 {
	return b.vel.Len()
}

// Heading returns the unit vector the body faces.
func (b *Body) Heading() core.Vec2 {
	return core.Polar(1, b.angle)
}

// SetVelocity replaces the velocity.
func (b *Body) SetVelocity(v core.Vec2) {
	b.vel = v
}

// AddVelocity pushes the body by amount along its heading.
// A positive maxSpeed caps the resulting speed.
func (b *Body) AddVelocity(amount, maxSpeed float64) {
	b.vel = b.vel.Add(core.Polar(amount, b.angle))
	if speed := b.vel.Len(); maxSpeed > 0 && speed > maxSpeed {
		b.vel = b.vel.Scale(maxSpeed / speed)
	}
}

// SetAngle sets the heading, wrapped into [0, 360).
func (b *Body) SetAngle(deg float64) {
	b.angle = core.WrapAngle(deg)
}

// AddAngle turns the heading by deg degrees.
func (b *Body) AddAngle(deg float64) {
	b.angle = core.WrapAngle(b.angle + deg)
}

// SetGravity overwrites the force vector.
func (b *Body) SetGravity(g core.Vec2) {
	b.gravity = g
}

// AddGravity accumulates onto the force vector.
func (b *Body) AddGravity(g core.Vec2) {
	b.gravity = b.gravity.Add(g)
}

// SetMaxLifetime sets the expiry age in seconds. Zero disables expiry.
func (b *Body) SetMaxLifetime(seconds float64) {
	b.maxLifetime = math.Max(seconds, 0)
}

// Expired reports whether the body has outlived its maximum lifetime.
func (b *Body) Expired() bool {
	return b.maxLifetime > 0 && b.lifetime >= b.maxLifetime
}

// translate moves the body without counting toward distance traveled.
func (b *Body) translate(d core.Vec2) {
	b.pos = b.pos.Add(d)
}
