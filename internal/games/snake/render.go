package snake

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

const (
	hudHeight = 1
	fillChar  = '█'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()
	g.renderHUD(dst, snap)

	if g.tooSmall {
		s := g.settings
		need := fmt.Sprintf("Need %dx%d, have %dx%d",
			s.Grid.Rows*s.Cell.Width+2, s.Grid.Cols*s.Cell.Height+2+hudHeight,
			g.screenW, g.screenH)
		renderOverlay(dst, "Window too small", need)
		return
	}

	dst.DrawBox(g.board.Inset(-1))

	g.drawCell(dst, snap.Apple, g.settings.AppleColor())
	for _, bone := range snap.Body {
		g.drawCell(dst, bone, g.settings.BodyColor())
	}
	g.drawCell(dst, snap.Head, g.settings.HeadColor())

	switch snap.State {
	case StateGameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Apples: %d  Press R to restart", snap.Score))
	case StatePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" %s  Apples: %d  Length: %d", g.Title(), snap.Score, len(snap.Body)+1)
	dst.DrawText(0, 0, hud)
}

// drawCell fills the terminal area covered by one grid cell.
func (g *Game) drawCell(dst *core.Screen, p GridPosition, c core.Color) {
	w, h := g.settings.Cell.Width, g.settings.Cell.Height
	dst.FillRect(core.NewRect(g.board.X+p.X*w, g.board.Y+p.Y*h, w, h), fillChar, c)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
