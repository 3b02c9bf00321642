package sim

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestNewStartsWithOneShip(t *testing.T) {
	h := newHarness(t, quietConfig())

	ship := h.sim.Ship()
	require.NotNil(t, ship)
	assert.True(t, ship.Visual.Drawn())
	assert.Equal(t, core.V(400, 240), ship.Body.Position())
	assert.Equal(t, core.V(400, 240), ship.Collider.Center())
	assert.Len(t, h.sim.Entities(), 1)
	assert.Len(t, h.canvas.shapes, 1)

	st := h.sim.State()
	assert.Equal(t, 3, st.Lives)
	assert.Equal(t, ModeRunning, st.Mode)
	assert.Equal(t, 3, h.hud.lives)
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := New(Options{Config: config.DefaultAsteroidsConfig()})
	assert.Error(t, err)

	cfg := config.DefaultAsteroidsConfig()
	cfg.Physics.TimeStep = 0
	_, err = New(Options{Config: cfg, Canvas: newFakeCanvas(10, 10)})
	assert.Error(t, err)
}

func TestThrustMovesAlongHeading(t *testing.T) {
	h := newHarness(t, quietConfig())
	ship := h.sim.Ship()
	start := ship.Body.Position()

	h.sim.Controls().Press(IntentThrust)
	for range 10 {
		h.sim.Tick()
	}

	inc := h.sim.cfg.Ship.AccelIncrement
	assert.InDelta(t, 10*inc, ship.Body.Speed(), 1e-9)

	// Speed k on tick k, for 0.1s each: 0.1 * (1 + 2 + ... + 10).
	pos := ship.Body.Position()
	assert.InDelta(t, start.X+5.5*inc, pos.X, 1e-9)
	assert.InDelta(t, start.Y, pos.Y, 1e-9)
	assert.Greater(t, pos.X, start.X)
	assert.Equal(t, pos, ship.Collider.Center())
	assert.Equal(t, pos, ship.Visual.Shape().Origin)

	h.sim.Controls().Release(IntentThrust)
	h.sim.Tick()
	assert.InDelta(t, 10*inc, ship.Body.Speed(), 1e-9, "released thrust keeps coasting")
}

func TestReverseAndRotate(t *testing.T) {
	h := newHarness(t, quietConfig())
	ship := h.sim.Ship()
	c := h.sim.Controls()

	c.Press(IntentRotateLeft)
	for range 3 {
		h.sim.Tick()
	}
	c.Release(IntentRotateLeft)
	assert.InDelta(t, 342, ship.Body.Angle(), 1e-9)

	c.Press(IntentRotateLeft)
	c.Press(IntentRotateRight)
	h.sim.Tick()
	assert.InDelta(t, 342, ship.Body.Angle(), 1e-9, "opposite turns cancel")
	c.Release(IntentRotateLeft)
	c.Release(IntentRotateRight)

	c.Press(IntentReverse)
	h.sim.Tick()
	assert.InDelta(t, 1, ship.Body.Speed(), 1e-9)
	assert.Less(t, ship.Body.Velocity().X, 0.0)
}

func TestFireQueuesOneShotPerTrigger(t *testing.T) {
	h := newHarness(t, quietConfig())
	ship := h.sim.Ship()
	ship.Body.SetVelocity(core.V(2, 0))

	c := h.sim.Controls()
	c.Press(IntentFire)
	c.Press(IntentFire)
	assert.True(t, c.FireQueued())
	h.sim.Tick()
	assert.False(t, c.FireQueued())

	shots := h.live(KindShot)
	require.Len(t, shots, 1)
	assert.InDelta(t, 82, shots[0].Body.Velocity().X, 1e-9)
	assert.InDelta(t, 0, shots[0].Body.Velocity().Y, 1e-9)
	assert.False(t, ship.Removed(), "shots ignore the ship")

	h.sim.Tick()
	assert.Len(t, h.live(KindShot), 1)
}

func TestShotExpiresOnTheTickItOutranges(t *testing.T) {
	h := newHarness(t, quietConfig())
	h.sim.Controls().Press(IntentFire)
	h.sim.Tick()

	shots := h.live(KindShot)
	require.Len(t, shots, 1)
	shot := shots[0]
	reach := h.sim.cfg.Ship.ShotRange

	expired := false
	for range 200 {
		if shot.Body.Distance() > reach {
			assert.True(t, shot.Removed(), "queued on the tick it passed the range")
			expired = true
			break
		}
		assert.False(t, shot.Removed(), "queued before passing the range at %v", shot.Body.Distance())
		h.sim.Tick()
	}
	require.True(t, expired)

	h.sim.Tick()
	assert.Empty(t, h.live(KindShot))
	assert.Equal(t, 0, h.sim.State().Shots)
}

func TestPendingAddSkipsDetectionUntilNextTick(t *testing.T) {
	h := newHarness(t, quietConfig())
	ship := h.sim.Ship()
	rock := h.asteroid(ship.Body.Position(), 15, 0, 0, false)

	h.sim.Spawn(rock)
	h.sim.Tick()
	assert.False(t, rock.Collided())
	assert.Equal(t, 3, h.sim.State().Lives)
	assert.Equal(t, 1, h.sim.State().Asteroids)

	h.sim.Tick()
	assert.True(t, rock.Collided())
	assert.True(t, ship.Removed())
	assert.Equal(t, 2, h.sim.State().Lives)
}

func TestRemovedEntitiesSkipIntegration(t *testing.T) {
	h := newHarness(t, quietConfig())
	a := h.asteroid(core.V(100, 100), 15, 0, 10, false)
	b := h.asteroid(core.V(105, 100), 15, 180, 10, false)
	h.place(a, b)

	posA, posB := a.Body.Position(), b.Body.Position()
	h.sim.Tick()

	assert.True(t, a.Removed())
	assert.True(t, b.Removed())
	assert.Equal(t, posA, a.Body.Position())
	assert.Equal(t, posB, b.Body.Position())
	assert.Equal(t, 0, h.sim.State().Asteroids)
	assert.False(t, a.Visual.Drawn())
	assert.False(t, b.Visual.Drawn())
}

func TestAsteroidContactDoesNotScore(t *testing.T) {
	h := newHarness(t, quietConfig())
	a := h.asteroid(core.V(100, 100), 40, 0, 0, true)
	b := h.asteroid(core.V(110, 100), 40, 0, 0, true)
	h.place(a, b)

	h.sim.detect()

	assert.True(t, a.Removed())
	assert.True(t, b.Removed())
	assert.Equal(t, 0, h.sim.State().Score)
	assert.Len(t, h.pending(KindAsteroid), 6, "both break up")
}

func TestShotScoresOnce(t *testing.T) {
	cfg := quietConfig()
	h := newHarness(t, cfg)
	rock := h.asteroid(core.V(100, 100), 20, 0, 0, false)
	s1 := h.shot(core.V(100, 100))
	s2 := h.shot(core.V(102, 100))
	h.place(rock, s1, s2)

	h.sim.detect()

	assert.True(t, rock.Removed())
	assert.True(t, s1.Removed())
	assert.True(t, s2.Removed())
	assert.Equal(t, cfg.Asteroids.Points, h.sim.State().Score)
	assert.Empty(t, h.pending(KindAsteroid), "fragments are not breakable")
	assert.Len(t, h.pending(KindParticle), cfg.Asteroids.DebrisCount)

	h.sim.Tick()
	assert.Equal(t, cfg.Asteroids.Points, h.hud.score)
}

func TestBreakupFragments(t *testing.T) {
	h := newHarness(t, quietConfig())
	parent := h.asteroid(core.V(300, 100), 40, 30, 10, true)
	h.place(parent, h.shot(core.V(300, 100)))

	h.sim.detect()

	children := h.pending(KindAsteroid)
	require.Len(t, children, 3)
	for k, child := range children {
		size, breakable, ok := AsteroidInfo(child)
		require.True(t, ok)
		assert.False(t, breakable)
		assert.Equal(t, 20.0, size)

		assert.InDelta(t, 40, child.Body.Position().Dist(core.V(300, 100)), 1e-9)
		assert.InDelta(t, core.WrapAngle(30+float64(k)*120), child.Body.Angle(), 1e-9)
		assert.InDelta(t, 10, child.Body.Speed(), 1e-9)
		assert.Equal(t, child.Body.Position(), child.Collider.Center())
		assert.False(t, child.Visual.Drawn(), "pending entities are not drawn")
	}
	assert.Equal(t, 1, h.sim.State().Asteroids, "the parent counts until removals commit")

	h.sim.pop.commitRemoves(h.sim.release)
	h.sim.pop.commitAdds(h.sim.admit)
	assert.Equal(t, 3, h.sim.State().Asteroids)
	for _, child := range children {
		assert.Equal(t, core.ColorGray, child.Visual.Shape().Outline)
	}
}

func TestShipLossRespawnsAtCentre(t *testing.T) {
	h := newHarness(t, quietConfig())
	old := h.sim.Ship()
	old.Body.AddAngle(45)
	old.translate(h.sim, core.V(-200, 0))
	h.place(h.asteroid(old.Body.Position(), 15, 0, 0, false))

	h.sim.Tick()

	assert.True(t, old.Removed())
	assert.False(t, old.Visual.Drawn())
	ship := h.sim.Ship()
	require.NotNil(t, ship)
	assert.NotSame(t, old, ship)
	assert.Equal(t, core.V(400, 240), ship.Body.Position())
	assert.Zero(t, ship.Body.Angle())
	assert.Equal(t, 2, h.sim.State().Lives)
	assert.Len(t, h.live(KindShip), 1)
	assert.Equal(t, 0, h.sim.State().Score)
}

func TestGameOverThenReset(t *testing.T) {
	cfg := quietConfig()
	cfg.Ship.Lives = 1
	cfg.Gameplay.ResetDelay = 5
	h := newHarness(t, cfg)

	for h.sim.State().Mode == ModeRunning {
		ship := h.sim.Ship()
		require.NotNil(t, ship)
		h.place(h.asteroid(ship.Body.Position(), 15, 0, 0, false))
		h.sim.Tick()
	}

	st := h.sim.State()
	assert.Equal(t, ModeGameOver, st.Mode)
	assert.Equal(t, -1, st.Lives)
	assert.Nil(t, h.sim.Ship())
	assert.Equal(t, "GAME OVER", h.hud.banner)

	for range cfg.Gameplay.ResetDelay {
		h.sim.Tick()
		if h.sim.State().Mode == ModeRunning {
			break
		}
	}

	st = h.sim.State()
	assert.Equal(t, ModeRunning, st.Mode)
	assert.Equal(t, cfg.Ship.Lives, st.Lives)
	assert.Equal(t, 0, st.Score)
	assert.Equal(t, 0, st.Asteroids)
	assert.Equal(t, 0, st.Shots)
	assert.Equal(t, 0, st.Particles)
	assert.Len(t, h.sim.Entities(), 1)
	assert.Len(t, h.live(KindShip), 1)
	assert.Len(t, h.canvas.shapes, 1, "every other visual was torn down")
	assert.Empty(t, h.hud.banner)
}

func TestLogsGameEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	cfg := quietConfig()
	cfg.Ship.Lives = 0
	canvas := newFakeCanvas(800, 480)
	s, err := New(Options{Config: cfg, Canvas: canvas, Logger: logger, Seed: 1})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "new game")

	h := &harness{sim: s, canvas: canvas, hud: &fakeHUD{}}
	h.place(h.asteroid(s.Ship().Body.Position(), 15, 0, 0, false))
	s.Tick()

	assert.Contains(t, buf.String(), "ship lost")
	assert.Contains(t, buf.String(), "game over")
}

func TestGameOverIgnoresControls(t *testing.T) {
	cfg := quietConfig()
	cfg.Ship.Lives = 0
	h := newHarness(t, cfg)
	h.place(h.asteroid(h.sim.Ship().Body.Position(), 15, 0, 0, false))
	h.sim.Tick()
	require.Equal(t, ModeGameOver, h.sim.State().Mode)

	h.sim.Controls().Press(IntentFire)
	h.sim.Tick()
	assert.Empty(t, h.live(KindShot))
}

func TestRestart(t *testing.T) {
	h := newHarness(t, quietConfig())
	h.place(h.shot(core.V(100, 100)), h.asteroid(core.V(100, 100), 10, 0, 0, false))
	h.sim.Tick()
	require.Equal(t, 10, h.sim.State().Score)

	h.sim.Restart()

	st := h.sim.State()
	assert.Equal(t, 0, st.Score)
	assert.Equal(t, 3, st.Lives)
	assert.Equal(t, 0, st.Tick)
	assert.Len(t, h.sim.Entities(), 1)
	assert.Len(t, h.canvas.shapes, 1)
}

func TestPause(t *testing.T) {
	h := newHarness(t, quietConfig())
	ship := h.sim.Ship()
	start := ship.Body.Position()

	h.sim.Pause()
	assert.True(t, h.sim.State().Paused)
	assert.Equal(t, "PAUSED", h.hud.banner)

	h.sim.Controls().Press(IntentThrust)
	h.sim.Tick()
	assert.Equal(t, start, ship.Body.Position())
	assert.Equal(t, 0, h.sim.State().Tick)

	h.sim.Pause()
	assert.Empty(t, h.hud.banner)
	h.sim.Tick()
	assert.Equal(t, 1, h.sim.State().Tick)
	assert.NotEqual(t, start, ship.Body.Position())
}

func TestWrapAround(t *testing.T) {
	h := newHarness(t, quietConfig())
	ship := h.sim.Ship()
	ship.translate(h.sim, core.V(399, 0))
	ship.Body.SetVelocity(core.V(50, 0))

	h.sim.Tick()

	pos := ship.Body.Position()
	assert.InDelta(t, 4, pos.X, 1e-9)
	assert.InDelta(t, 240, pos.Y, 1e-9)
	assert.InDelta(t, 5, ship.Body.Distance(), 1e-9, "wrapping is not travel")
	assert.Equal(t, pos, ship.Collider.Center())
	assert.Equal(t, pos, h.canvas.shapes[ship.Visual.Handle()].Origin)
}

func TestWrapAroundVertical(t *testing.T) {
	h := newHarness(t, quietConfig())
	ship := h.sim.Ship()
	ship.translate(h.sim, core.V(0, -239))
	ship.Body.SetVelocity(core.V(0, -30))

	h.sim.Tick()

	assert.InDelta(t, 478, ship.Body.Position().Y, 1e-9)
}

func TestParticlesExpire(t *testing.T) {
	cfg := quietConfig()
	h := newHarness(t, cfg)
	h.place(h.shot(core.V(100, 100)), h.asteroid(core.V(100, 100), 10, 0, 0, false))

	h.sim.Tick()
	assert.Equal(t, cfg.Asteroids.DebrisCount, h.sim.State().Particles)

	h.clock.Advance(time.Second)
	h.sim.Tick()
	h.sim.Tick()
	assert.Equal(t, 0, h.sim.State().Particles)
}

func TestBlackHolePullsAndReleases(t *testing.T) {
	h := newHarness(t, quietConfig())
	hole := h.sim.newBlackHole(core.V(400, 100), 30, 0, 0)
	rock := h.asteroid(core.V(410, 100), 5, 0, 0, false)
	h.place(hole, rock)

	h.sim.detect()

	attraction := h.sim.cfg.Physics.Attraction
	assert.InDelta(t, attraction, rock.Body.Gravity().X, 1e-9)
	assert.InDelta(t, 0, rock.Body.Gravity().Y, 1e-9)
	assert.Equal(t, 1, Victims(hole))
	assert.False(t, rock.Removed(), "black holes do not destroy")
	assert.False(t, hole.Removed())

	// Gravity points away from the hole, so integration pulls the victim inward.
	rock.Body.Integrate(0.1, h.clock.Now())
	assert.Less(t, rock.Body.Velocity().X, 0.0)

	rock.translate(h.sim, core.V(200, 0))
	hole.Behavior.OnTick(h.sim, hole)
	assert.Equal(t, core.Vec2{}, rock.Body.Gravity())
	assert.Equal(t, 0, Victims(hole))
}

func TestBlackHoleReleasesRemovedVictims(t *testing.T) {
	h := newHarness(t, quietConfig())
	hole := h.sim.newBlackHole(core.V(400, 100), 30, 0, 0)
	rock := h.asteroid(core.V(410, 100), 5, 0, 0, false)
	h.place(hole, rock)

	h.sim.detect()
	require.Equal(t, 1, Victims(hole))

	h.sim.Remove(rock)
	hole.Behavior.OnTick(h.sim, hole)
	assert.Equal(t, 0, Victims(hole))
}

func TestOverlappingBlackHolesKeepPull(t *testing.T) {
	h := newHarness(t, quietConfig())
	left := h.sim.newBlackHole(core.V(400, 100), 20, 0, 0)
	right := h.sim.newBlackHole(core.V(445, 100), 20, 0, 0)
	rock := h.asteroid(core.V(422.5, 100), 8, 0, 0, false)
	h.place(left, right, rock)

	h.sim.detect()
	require.Equal(t, 1, Victims(left))
	require.Equal(t, 1, Victims(right))

	// Out of the left hole, still inside the right one
	rock.translate(h.sim, core.V(30, 0))
	left.Behavior.OnTick(h.sim, left)

	attraction := h.sim.cfg.Physics.Attraction
	assert.Equal(t, 0, Victims(left))
	assert.InDelta(t, attraction, rock.Body.Gravity().X, 1e-9)
	assert.InDelta(t, 0, rock.Body.Gravity().Y, 1e-9)

	rock.translate(h.sim, core.V(100, 0))
	right.Behavior.OnTick(h.sim, right)
	assert.Equal(t, core.Vec2{}, rock.Body.Gravity())
	assert.Equal(t, 0, Victims(right))
}

type foreignCollider struct{ Box }

func TestDetectPanicsOnForeignCollider(t *testing.T) {
	h := newHarness(t, quietConfig())
	odd := h.asteroid(core.V(100, 100), 10, 0, 0, false)
	odd.Collider = &foreignCollider{}
	h.place(odd)

	assert.PanicsWithError(t, "entity 1 (ship) vs entity 2 (asteroid): sim: incompatible collider", func() {
		h.sim.detect()
	})
}

func TestLifecycleMisusePanics(t *testing.T) {
	h := newHarness(t, quietConfig())
	ship := h.sim.Ship()

	assert.Panics(t, func() { h.sim.admit(ship) })
	h.sim.release(ship)
	assert.Panics(t, func() { h.sim.release(ship) })
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() []core.Vec2 {
		cfg := config.DefaultAsteroidsConfig()
		cfg.Asteroids.SpawnInterval = 3
		h := newHarness(t, cfg)
		for range 300 {
			h.sim.Tick()
		}
		var out []core.Vec2
		for _, e := range h.sim.Entities() {
			out = append(out, e.Body.Position())
		}
		return out
	}

	first := run()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, run())
}
