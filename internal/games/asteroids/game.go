// Package asteroids adapts the asteroids simulation to the arcade platform:
// it implements registry.Game, draws the simulation through a terminal Scene
// and maps platform actions onto simulation intents.
package asteroids

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "asteroids"

func init() {
	registry.Register(registry.GameInfo{
		ID:          ID,
		Title:       "Asteroids",
		Description: "Dodge and shoot asteroids in a wrap-around arena with gravity wells",
	}, func() registry.Game {
		return New()
	})
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives simulation events; the CLI points it at a log file
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger handed to new simulations. Nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// heldIntents maps platform level actions to simulation intents.
var heldIntents = map[core.Action]sim.Intent{
	core.ActionThrust:      sim.IntentThrust,
	core.ActionReverse:     sim.IntentReverse,
	core.ActionRotateLeft:  sim.IntentRotateLeft,
	core.ActionRotateRight: sim.IntentRotateRight,
}

// Game implements registry.Game on top of sim.Sim.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.AsteroidsConfig
	scene   *Scene
	sim     *sim.Sim

	// now advances one tick period per Step and is the simulation's clock,
	// so particle lifetimes follow the platform's tick rate.
	now  time.Time
	step time.Duration
}

// New creates a new Asteroids game instance. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset loads configuration and starts a fresh simulation sized to the screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
		cfg = config.DefaultAsteroidsConfig()
	}
	config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.step = time.Second / time.Duration(tickRate)
	g.now = time.Unix(0, 0)

	g.scene = NewScene(runtime.ScreenW, runtime.ScreenH, cfg.Arena)
	s, err := sim.New(sim.Options{
		Config: cfg,
		Canvas: g.scene,
		HUD:    g.scene,
		Logger: logger,
		Clock:  g.clock,
		Seed:   runtime.Seed,
	})
	if err != nil {
		// The config was validated above; a failure here is a bug.
		panic(fmt.Errorf("asteroids: %w", err))
	}
	g.sim = s
}

// Step applies one tick of input and advances the simulation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	wasOver := g.sim.State().Mode == sim.ModeGameOver

	controls := g.sim.Controls()
	for action, intent := range heldIntents {
		if in.Has(action) {
			controls.Press(intent)
		}
		if in.HasReleased(action) {
			controls.Release(intent)
		}
	}
	if in.Has(core.ActionFire) && !g.sim.State().Paused {
		controls.Press(sim.IntentFire)
	}
	if in.Has(core.ActionPause) {
		g.sim.Pause()
	}
	if in.Has(core.ActionRestart) && wasOver {
		g.sim.Restart()
	}

	g.now = g.now.Add(g.step)
	g.sim.Tick()

	state := g.State()
	return core.StepResult{
		State:           state,
		GameOverEntered: state.GameOver && !wasOver,
	}
}

func (g *Game) clock() time.Time {
	return g.now
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	g.scene.Render(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.sim.State()
	return core.GameState{
		Score:    st.Score,
		Lives:    st.Lives,
		GameOver: st.Mode == sim.ModeGameOver,
		Paused:   st.Paused,
	}
}

// Sim exposes the running simulation.
func (g *Game) Sim() *sim.Sim {
	return g.sim
}

// Config returns the effective configuration of the current run.
func (g *Game) Config() config.AsteroidsConfig {
	return g.cfg
}
