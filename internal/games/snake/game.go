// Package snake implements the classic grid snake: a fixed-timestep tick
// engine, a buffered direction queue and wraparound edges.
package snake

import (
	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

const (
	IDClassic = "snake"
	IDFair    = "snake_fair"
)

// Game adapts the tick engine to the platform's registry.Game interface.
type Game struct {
	spawn    SpawnPolicy
	pinned   *config.SnakeConfig // settings fixed by UseSettings, skips loading
	settings config.SnakeConfig
	runtime  core.RuntimeConfig

	rng   *RandSource
	state *State
	clock *Clock

	paused   bool
	tooSmall bool

	// Screen layout
	screenW int
	screenH int
	board   core.Rect // board interior in terminal cells
}

// New creates a classic game where apples may respawn anywhere.
func New() *Game {
	return &Game{spawn: SpawnAnywhere}
}

// NewFair creates a game where apples only respawn on free cells.
func NewFair() *Game {
	return &Game{spawn: SpawnFree}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDFair, func() registry.Game {
		return NewFair()
	})
}

// UseSettings pins the settings used by every following Reset instead of
// loading them from RuntimeConfig.ConfigPath.
func (g *Game) UseSettings(s config.SnakeConfig) {
	g.pinned = &s
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.spawn == SpawnFree {
		return IDFair
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.spawn == SpawnFree {
		return "Snake (Fair Apples)"
	}
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.settings = g.loadSettings(cfg.ConfigPath)

	s := g.settings
	g.rng = NewRandSource(cfg.Seed)
	g.state = NewState(
		Grid{Rows: s.Grid.Rows, Cols: s.Grid.Cols},
		GridPosition{X: s.Start.X, Y: s.Start.Y},
		GridPosition{X: s.Apple.X, Y: s.Apple.Y},
		g.spawn,
	)
	g.clock = NewClock(s.TickInterval())
	g.paused = false

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

func (g *Game) loadSettings(path string) config.SnakeConfig {
	if g.pinned != nil {
		return *g.pinned
	}
	s, err := config.LoadSnake(path)
	if err != nil {
		// The CLI validates the path before starting, so this only
		// happens if the file changed underneath us.
		return config.DefaultSnakeConfig()
	}
	return s
}

// Resize lays the board out for a new screen size without touching game state.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height

	s := g.settings
	boardW := s.Grid.Rows*s.Cell.Width + 2
	boardH := s.Grid.Cols*s.Cell.Height + 2
	if width < boardW || height < hudHeight+boardH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	// Center horizontally, sit right under the HUD
	frame := core.NewRect((width-boardW)/2, hudHeight, boardW, boardH)
	g.board = frame.Inset(1)
}

// Step advances the game by one platform frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.state.Over {
		next := g.runtime
		next.Seed = g.rng.NextSeed()
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.state.Over {
		g.paused = !g.paused
	}

	if g.state.Over || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Every press this frame, in the order it arrived
	for _, a := range in.Sequence() {
		if d := DirectionFor(a); d != DirNone {
			g.state.Snake.Steer(d)
		}
	}

	dt := in.Elapsed
	if dt <= 0 {
		dt = g.runtime.FrameInterval()
	}

	res := core.StepResult{State: g.State()}
	if g.clock.Advance(dt) {
		outcome := Tick(g.state, g.rng)
		res.Ticked = true
		res.State = g.State()
		res.State.GameOver = outcome == Ended
	}

	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Snake.Len(),
		GameOver: g.state.Over,
		Paused:   g.paused,
	}
}
