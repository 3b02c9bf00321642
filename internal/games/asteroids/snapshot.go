package asteroids

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// Snapshot contains the observable simulation state.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick   int
	Score  int
	Lives  int
	Mode   int // 0=Running, 1=GameOver
	Paused bool

	Entities []EntitySnapshot
}

// EntitySnapshot is one live entity.
type EntitySnapshot struct {
	ID    uint32
	Kind  int
	X, Y  float64
	VX    float64
	VY    float64
	Angle float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.sim.State()
	snap := Snapshot{
		Tick:   st.Tick,
		Score:  st.Score,
		Lives:  st.Lives,
		Mode:   int(st.Mode),
		Paused: st.Paused,
	}

	for _, e := range g.sim.Entities() {
		pos, vel := e.Body.Position(), e.Body.Velocity()
		snap.Entities = append(snap.Entities, EntitySnapshot{
			ID:    uint32(e.ID),
			Kind:  int(e.Kind),
			X:     pos.X,
			Y:     pos.Y,
			VX:    vel.X,
			VY:    vel.Y,
			Angle: e.Body.Angle(),
		})
	}
	return snap
}

// Count returns how many entities of kind the snapshot holds.
func (s Snapshot) Count(kind sim.Kind) int {
	n := 0
	for _, e := range s.Entities {
		if e.Kind == int(kind) {
			n++
		}
	}
	return n
}

// Hash digests the snapshot. Equal states hash equally.
func (s Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte

	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	putInt(s.Tick)
	putInt(s.Score)
	putInt(s.Lives)
	putInt(s.Mode)
	if s.Paused {
		putInt(1)
	} else {
		putInt(0)
	}

	putInt(len(s.Entities))
	for _, e := range s.Entities {
		putInt(int(e.ID))
		putInt(e.Kind)
		putFloat(e.X)
		putFloat(e.Y)
		putFloat(e.VX)
		putFloat(e.VY)
		putFloat(e.Angle)
	}
	return d.Sum64()
}
