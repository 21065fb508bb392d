package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func testPalette(profile termenv.Profile) Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	return NewPalette(r)
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "head")
	s.SetColored(2, 1, '█', core.ColorBrightGreen)
	s.SetColored(3, 1, '█', core.ColorRed)
	s.SetColored(4, 1, '█', core.Color(200)) // unknown colors fall back to plain

	out := RenderScreen(s, testPalette(termenv.Ascii))

	if out != s.String() {
		t.Errorf("RenderScreen without colors = %q, expected %q", out, s.String())
	}
	if got := strings.Count(out, "█"); got != 3 {
		t.Errorf("RenderScreen has %d filled cells, expected 3", got)
	}
}

func TestRenderScreenColorsFollowRenderer(t *testing.T) {
	single := func(c core.Color, p Palette) string {
		s := core.NewScreen(1, 1)
		s.SetColored(0, 0, '█', c)
		return RenderScreen(s, p)
	}

	colored := testPalette(termenv.ANSI256)
	head := single(core.ColorBrightGreen, colored)
	apple := single(core.ColorRed, colored)
	if !strings.Contains(head, "\x1b[") {
		t.Errorf("ANSI256 renderer should emit escape codes, got %q", head)
	}
	if head == apple {
		t.Errorf("head and apple render the same: %q", head)
	}

	// A renderer without color support draws plain cells
	plain := testPalette(termenv.Ascii)
	if got := single(core.ColorBrightGreen, plain); got != "█" {
		t.Errorf("Ascii renderer = %q, expected plain cell", got)
	}
}

func TestModelWithRendererKeepsGame(t *testing.T) {
	m, _ := newTestModel(t)
	m = m.WithRenderer(func() *lipgloss.Renderer {
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.ANSI256)
		return r
	}())

	if !strings.Contains(m.View(), "\x1b[") {
		t.Error("View() should use the session renderer's colors")
	}
}
