package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

const tickFrame = 100 * time.Millisecond

func newTestGame(t *testing.T, g *Game, w, h int) *Game {
	t.Helper()
	g.UseSettings(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 42})
	return g
}

// frame builds one platform frame carrying the given presses.
func frame(elapsed time.Duration, actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	in.Elapsed = elapsed
	return in
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{IDClassic, IDFair} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		require.Equal(t, id, g.ID())
	}
	require.Equal(t, "Snake", New().Title())
	require.Equal(t, "Snake (Fair Apples)", NewFair().Title())
}

func TestGameInitialState(t *testing.T) {
	g := newTestGame(t, New(), 120, 40)
	snap := g.Snapshot()

	require.Equal(t, GridPosition{X: 12, Y: 13}, snap.Head)
	require.Equal(t, GridPosition{X: 24, Y: 13}, snap.Apple)
	require.Equal(t, DirNone, snap.Dir)
	require.Empty(t, snap.Body)
	require.Equal(t, StatePlaying, snap.State)
	require.Equal(t, core.GameState{}, g.State())
}

func TestGameEatsFirstApple(t *testing.T) {
	g := newTestGame(t, New(), 120, 40)

	res := g.Step(frame(tickFrame, core.ActionRight))
	require.True(t, res.Ticked)
	for i := 0; i < 11; i++ {
		g.Step(frame(tickFrame))
	}

	snap := g.Snapshot()
	require.Equal(t, GridPosition{X: 24, Y: 13}, snap.Head)
	require.Equal(t, []GridPosition{{X: 23, Y: 13}}, snap.Body)
	require.Equal(t, 1, g.State().Score)
	require.Equal(t, uint64(12), snap.Tick)
}

func TestGameTicksOnFixedInterval(t *testing.T) {
	g := newTestGame(t, New(), 120, 40)
	g.Step(frame(16*time.Millisecond, core.ActionDown))

	for i := 0; i < 4; i++ {
		require.False(t, g.Step(frame(16*time.Millisecond)).Ticked)
	}
	require.Equal(t, GridPosition{X: 12, Y: 13}, g.Snapshot().Head)

	require.True(t, g.Step(frame(16*time.Millisecond)).Ticked)
	require.Equal(t, GridPosition{X: 12, Y: 14}, g.Snapshot().Head)
}

func TestGameZeroElapsedUsesFrameRate(t *testing.T) {
	g := newTestGame(t, New(), 120, 40)
	g.Step(frame(0, core.ActionUp))

	// 60 FPS frames are ~16.7ms, the fifth one crosses 80ms
	frames := 1
	for {
		frames++
		if g.Step(frame(0)).Ticked {
			break
		}
	}
	require.Equal(t, 5, frames)
}

func TestGameAppliesPressesInOrder(t *testing.T) {
	g := newTestGame(t, New(), 120, 40)
	g.Step(frame(tickFrame, core.ActionRight))
	require.Equal(t, GridPosition{X: 13, Y: 13}, g.Snapshot().Head)

	g.Step(frame(10*time.Millisecond, core.ActionUp, core.ActionLeft))
	require.Equal(t, []Direction{DirUp}, g.Snapshot().Pending)

	g.Step(frame(tickFrame))
	require.Equal(t, GridPosition{X: 13, Y: 12}, g.Snapshot().Head)
	g.Step(frame(tickFrame))
	require.Equal(t, GridPosition{X: 12, Y: 12}, g.Snapshot().Head)
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, New(), 120, 40)
	g.Step(frame(tickFrame, core.ActionRight))

	g.Step(frame(tickFrame, core.ActionPause))
	require.True(t, g.State().Paused)
	require.Equal(t, StatePaused, g.Snapshot().State)
	head := g.Snapshot().Head

	for i := 0; i < 5; i++ {
		require.False(t, g.Step(frame(tickFrame, core.ActionDown)).Ticked)
	}
	require.Equal(t, head, g.Snapshot().Head)
	require.Equal(t, DirRight, g.Snapshot().Dir, "input is dropped while paused")

	g.Step(frame(0, core.ActionPause))
	require.False(t, g.State().Paused)
	g.Step(frame(tickFrame))
	require.Equal(t, head.Add(DirRight.Vector()), g.Snapshot().Head)
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t, New(), 120, 40)
	g.Step(frame(tickFrame, core.ActionRight))

	// Restart is ignored while the game is running
	g.Step(frame(tickFrame, core.ActionRestart))
	require.Equal(t, GridPosition{X: 14, Y: 13}, g.Snapshot().Head)

	g.state.Over = true
	require.True(t, g.State().GameOver)
	require.False(t, g.Step(frame(tickFrame, core.ActionUp)).Ticked)
	require.Equal(t, StateGameOver, g.Snapshot().State)

	// Pause does nothing once over
	g.Step(frame(0, core.ActionPause))
	require.False(t, g.State().Paused)

	g.Step(frame(0, core.ActionRestart))
	snap := g.Snapshot()
	require.Equal(t, StatePlaying, snap.State)
	require.Equal(t, GridPosition{X: 12, Y: 13}, snap.Head)
	require.Equal(t, DirNone, snap.Dir)
	require.Zero(t, snap.Tick)
}

func TestGameTooSmall(t *testing.T) {
	g := newTestGame(t, New(), 120, 40)
	g.Step(frame(tickFrame, core.ActionRight))

	g.Resize(60, 20)
	require.Equal(t, StateTooSmall, g.Snapshot().State)
	require.False(t, g.Step(frame(tickFrame)).Ticked)

	screen := core.NewScreen(60, 20)
	g.Render(screen)
	require.Contains(t, screen.String(), "Window too small")
	require.Contains(t, screen.String(), "Need 98x30, have 60x20")

	// Growing the window resumes the same game
	g.Resize(98, 30)
	require.Equal(t, StatePlaying, g.Snapshot().State)
	require.Equal(t, GridPosition{X: 13, Y: 13}, g.Snapshot().Head)
	require.True(t, g.Step(frame(tickFrame)).Ticked)
}

func TestGameDeterministic(t *testing.T) {
	script := []core.Action{
		core.ActionRight, core.ActionNone, core.ActionDown, core.ActionNone,
		core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionNone,
	}
	run := func() Snapshot {
		g := newTestGame(t, NewFair(), 120, 40)
		for i := 0; i < 400; i++ {
			g.Step(frame(tickFrame, script[i%len(script)]))
		}
		return g.Snapshot()
	}
	require.Equal(t, run(), run())
}

func TestSnapshotIsCopy(t *testing.T) {
	g := newTestGame(t, New(), 120, 40)
	g.Step(frame(tickFrame, core.ActionRight))
	for i := 0; i < 11; i++ {
		g.Step(frame(tickFrame))
	}

	snap := g.Snapshot()
	require.Len(t, snap.Body, 1)
	snap.Body[0] = GridPosition{X: 1, Y: 1}
	require.Equal(t, []GridPosition{{X: 23, Y: 13}}, g.Snapshot().Body)
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, New(), 120, 40)
	screen := core.NewScreen(120, 40)
	g.Render(screen)

	require.Contains(t, screen.Row(0), "Snake")
	require.Contains(t, screen.Row(0), "Apples: 0")
	require.Contains(t, screen.Row(0), "Length: 1")

	// Board interior starts at (12,2), each grid cell is 2x1
	for _, x := range []int{36, 37} {
		cell := screen.GetCell(x, 15)
		require.Equal(t, fillChar, cell.Rune)
		require.Equal(t, core.ColorBrightGreen, cell.Color)
	}
	for _, x := range []int{60, 61} {
		cell := screen.GetCell(x, 15)
		require.Equal(t, fillChar, cell.Rune)
		require.Equal(t, core.ColorRed, cell.Color)
	}
	require.Equal(t, ' ', screen.Get(38, 15))

	// Frame corners
	require.NotEqual(t, ' ', screen.Get(11, 1))
	require.NotEqual(t, ' ', screen.Get(108, 29))
}

func TestRenderBody(t *testing.T) {
	g := newTestGame(t, New(), 120, 40)
	g.Step(frame(tickFrame, core.ActionRight))
	for i := 0; i < 11; i++ {
		g.Step(frame(tickFrame))
	}
	g.state.Apple = GridPosition{X: 0, Y: 0}
	g.Step(frame(tickFrame))

	screen := core.NewScreen(120, 40)
	g.Render(screen)
	// Head at (25,13), body at (24,13)
	require.Equal(t, core.ColorBrightGreen, screen.GetCell(12+50, 15).Color)
	require.Equal(t, core.ColorGreen, screen.GetCell(12+48, 15).Color)
	require.Contains(t, screen.Row(0), "Length: 2")
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, New(), 120, 40)
	screen := core.NewScreen(120, 40)

	g.Step(frame(0, core.ActionPause))
	g.Render(screen)
	require.Contains(t, screen.String(), "Paused")

	g.Step(frame(0, core.ActionPause))
	g.state.Over = true
	g.Render(screen)
	out := screen.String()
	require.Contains(t, out, "Game Over")
	require.Contains(t, out, "Press R to restart")
	require.NotContains(t, out, "Paused")
}

func TestRenderUsesConfiguredColors(t *testing.T) {
	s := config.DefaultSnakeConfig()
	s.Colors.Head = "yellow"
	s.Colors.Apple = "cyan"

	g := New()
	g.UseSettings(s)
	g.Reset(core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 60, Seed: 1})

	screen := core.NewScreen(120, 40)
	g.Render(screen)
	require.Equal(t, core.ColorYellow, screen.GetCell(36, 15).Color)
	require.Equal(t, core.ColorCyan, screen.GetCell(60, 15).Color)
}

func TestGameHUDScore(t *testing.T) {
	g := newTestGame(t, New(), 120, 40)
	g.Step(frame(tickFrame, core.ActionRight))
	for i := 0; i < 11; i++ {
		g.Step(frame(tickFrame))
	}
	screen := core.NewScreen(120, 40)
	g.Render(screen)
	require.True(t, strings.Contains(screen.Row(0), "Apples: 1"))
}

func TestStepReportsGameOverOnFatalTick(t *testing.T) {
	g := newTestGame(t, New(), 120, 40)
	g.state = newTestState(defaultGrid, GridPosition{X: 5, Y: 5}, DirRight,
		GridPosition{X: 5, Y: 6},
		GridPosition{X: 6, Y: 6},
		GridPosition{X: 6, Y: 5},
		GridPosition{X: 6, Y: 4},
	)

	res := g.Step(frame(tickFrame))
	require.True(t, res.Ticked)
	require.True(t, res.State.GameOver)
	require.Equal(t, StateGameOver, g.Snapshot().State)

	// Nothing runs once the game is over
	res = g.Step(frame(tickFrame))
	require.False(t, res.Ticked)
	require.True(t, res.State.GameOver)
}
