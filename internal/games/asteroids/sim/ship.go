package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

// shipHull is the ship triangle centred on its origin, nose along +x.
var shipHull = recenter([]core.Vec2{{X: 10, Y: 10}, {X: 30, Y: 15}, {X: 10, Y: 20}})

// shipNose is how far ahead of the ship's origin a shot appears.
const shipNose = 12

type shipBehavior struct{}

func (shipBehavior) OnCollide(s *Sim, self, other *Entity) {
	if other.Kind == KindAsteroid {
		s.destroyShip(self)
	}
}

func (shipBehavior) OnTick(*Sim, *Entity) {}

func (s *Sim) newShip(pos core.Vec2) *Entity {
	shape := Shape{
		Kind:    ShapePolygon,
		Origin:  pos,
		Points:  shipHull,
		Outline: core.ColorBrightCyan,
	}
	return s.newEntity(KindShip, pos, 0, shape, true, shipBehavior{})
}

// destroyShip costs a life and either queues a fresh ship at the arena centre or
// ends the game.
func (s *Sim) destroyShip(ship *Entity) {
	if !s.Remove(ship) {
		return
	}
	s.emitDebris(ship.Body.Position(), core.ColorBrightCyan)
	s.lives--
	s.logger.Debug("ship lost", "lives", s.lives, "tick", s.tick)

	if s.lives >= 0 {
		s.ship = s.newShip(s.center())
		s.Spawn(s.ship)
		return
	}

	s.ship = nil
	s.mode = ModeGameOver
	s.resetIn = s.cfg.Gameplay.ResetDelay
	s.hud.SetBanner("GAME OVER")
	s.logger.Info("game over", "score", s.score, "tick", s.tick)
}

// steer applies the held intents and the fire trigger to the live ship.
func (s *Sim) steer() {
	fire := s.controls.takeFire()
	ship := s.ship
	if s.mode != ModeRunning || ship == nil || ship.removed || !s.pop.isLive(ship) {
		return
	}

	cfg := s.cfg.Ship
	if s.controls.Held(IntentThrust) {
		ship.Body.AddVelocity(cfg.AccelIncrement, s.cfg.Physics.MaxSpeed)
	}
	if s.controls.Held(IntentReverse) {
		ship.Body.AddVelocity(-cfg.AccelIncrement, s.cfg.Physics.MaxSpeed)
	}

	var turn float64
	if s.controls.Held(IntentRotateLeft) {
		turn -= cfg.RotateIncrement
	}
	if s.controls.Held(IntentRotateRight) {
		turn += cfg.RotateIncrement
	}
	if turn != 0 {
		ship.Body.AddAngle(turn)
		s.must(ship, ship.Visual.Rotate(turn))
	}

	if fire {
		s.Spawn(s.newShot(ship))
	}
}
