package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Edge entry headings, in degrees, that point into the arena from each side.
// y grows downward, so the top edge aims between 20 and 160.
var entryHeadings = [4][2]float64{
	{20, 160},  // top
	{200, 340}, // bottom
	{-70, 70},  // left
	{110, 250}, // right
}

// spawnAsteroid tries to bring one asteroid in from an arena edge.
func (s *Sim) spawnAsteroid() {
	cfg := s.cfg.Asteroids
	if cfg.MaxCount <= 0 {
		return
	}

	interval := s.difficulty.SpawnInterval(cfg.SpawnInterval, s.score, s.tick)
	if s.tick-s.lastAsteroid < interval {
		return
	}
	limit := s.difficulty.MaxCount(cfg.MaxCount, s.score, s.tick)
	if s.pop.count(KindAsteroid)+s.pop.pending(KindAsteroid) >= limit {
		return
	}
	s.lastAsteroid = s.tick

	w, h := s.canvas.Extents()
	pos, angle := s.edgeEntry(w, h)
	size := s.uniform(cfg.MinSize, cfg.MaxSize)
	speed := s.difficulty.Speed(s.uniform(cfg.MinSpeed, cfg.MaxSpeed), s.score, s.tick)

	a := s.newAsteroid(pos, size, angle, speed, size > cfg.BreakableSize)
	if s.blocked(a) {
		s.logger.Debug("asteroid spawn rejected", "x", pos.X, "y", pos.Y, "size", size)
		return
	}
	s.Spawn(a)
}

// spawnWell tries to place one gravity well somewhere inside the arena.
func (s *Sim) spawnWell() {
	cfg := s.cfg.Wells
	if cfg.MaxCount <= 0 || s.tick-s.lastWell < cfg.SpawnInterval {
		return
	}
	if s.pop.count(KindBlackHole)+s.pop.pending(KindBlackHole) >= cfg.MaxCount {
		return
	}
	s.lastWell = s.tick

	w, h := s.canvas.Extents()
	pos := core.V(s.rng.Float64()*w, s.rng.Float64()*h)
	radius := s.uniform(cfg.MinRadius, cfg.MaxRadius)
	speed := s.uniform(cfg.MinSpeed, cfg.MaxSpeed)

	s.Spawn(s.newBlackHole(pos, radius, s.rng.Float64()*360, speed))
	s.logger.Debug("gravity well spawned", "x", pos.X, "y", pos.Y, "radius", radius)
}

// edgeEntry picks an axis, then a side, then a point on that edge and an inbound heading.
func (s *Sim) edgeEntry(w, h float64) (core.Vec2, float64) {
	axis := s.rng.Intn(2)
	side := s.rng.Intn(2)
	edge := axis*2 + side

	var pos core.Vec2
	switch edge {
	case 0:
		pos = core.V(s.rng.Float64()*w, 0)
	case 1:
		pos = core.V(s.rng.Float64()*w, h)
	case 2:
		pos = core.V(0, s.rng.Float64()*h)
	default:
		pos = core.V(w, s.rng.Float64()*h)
	}

	r := entryHeadings[edge]
	return pos, core.WrapAngle(s.uniform(r[0], r[1]))
}

// blocked reports whether e would overlap a live collidable entity.
func (s *Sim) blocked(e *Entity) bool {
	for _, other := range s.pop.snapshot() {
		hit, err := e.CheckCollide(other)
		if err != nil {
			panic(err)
		}
		if hit {
			return true
		}
	}
	return false
}

func (s *Sim) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}
