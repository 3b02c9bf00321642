package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Collider is an overlap volume attached to an entity.
type Collider interface {
	Center() core.Vec2
	Move(d core.Vec2)
	Overlap(other Collider) (bool, error)
}

// Box is an axis-aligned bounding box.
// Its size is fixed at construction; only the center moves.
type Box struct {
	center core.Vec2
	halfW  float64
	halfH  float64
}

// NewBox derives the smallest box around points.
func NewBox(points []core.Vec2) *Box {
	if len(points) == 0 {
		return &Box{}
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}

	return &Box{
		center: core.V((lo.X+hi.X)/2, (lo.Y+hi.Y)/2),
		halfW:  (hi.X - lo.X) / 2,
		halfH:  (hi.Y - lo.Y) / 2,
	}
}

// NewBoxAt creates a box from its center and half extents.
func NewBoxAt(center core.Vec2, halfW, halfH float64) *Box {
	return &Box{center: center, halfW: halfW, halfH: halfH}
}

func (b *Box) Center() core.Vec2 { return b.center }
func (b *Box) Min() core.Vec2    { return core.V(b.center.X-b.halfW, b.center.Y-b.halfH) }
func (b *Box) Max() core.Vec2    { return core.V(b.center.X+b.halfW, b.center.Y+b.halfH) }

// HalfExtents returns the half width and half height.
func (b *Box) HalfExtents() (float64, float64) {
	return b.halfW, b.halfH
}

// Move translates the center.
func (b *Box) Move(d core.Vec2) {
	b.center = b.center.Add(d)
}

// Overlap reports whether the boxes intersect. Touching edges count.
func (b *Box) Overlap(other Collider) (bool, error) {
	o, ok := other.(*Box)
	if !ok || o == nil {
		return false, ErrIncompatibleCollider
	}
	return b.crosses(o) || o.crosses(b) || b.within(o) || o.within(b), nil
}

// crosses reports whether any edge of b straddles o.
func (b *Box) crosses(o *Box) bool {
	bl, bh := b.Min(), b.Max()
	ol, oh := o.Min(), o.Max()

	spanX := bl.X <= oh.X && bh.X >= ol.X
	spanY := bl.Y <= oh.Y && bh.Y >= ol.Y

	top := between(bl.Y, ol.Y, oh.Y) && spanX
	bottom := between(bh.Y, ol.Y, oh.Y) && spanX
	left := between(bl.X, ol.X, oh.X) && spanY
	right := between(bh.X, ol.X, oh.X) && spanY

	return top || bottom || left || right
}

// within reports whether b lies entirely inside o.
func (b *Box) within(o *Box) bool {
	bl, bh := b.Min(), b.Max()
	ol, oh := o.Min(), o.Max()
	return bl.X >= ol.X && bh.X <= oh.X && bl.Y >= ol.Y && bh.Y <= oh.Y
}

func between(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
