// Package config provides YAML-based settings loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// ErrInvalid is returned (wrapped) when settings fail validation.
var ErrInvalid = errors.New("invalid settings")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid   GridConfig  `yaml:"grid"`
	Cell   CellConfig  `yaml:"cell"`
	Speed  float64     `yaml:"speed"` // Seconds between simulation ticks
	Start  PointConfig `yaml:"start"` // Initial head position
	Apple  PointConfig `yaml:"apple"` // Initial apple position
	Colors ColorConfig `yaml:"colors"`
}

// GridConfig defines the playfield size in grid cells.
// Rows is the horizontal extent (x range), Cols the vertical extent (y range).
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// CellConfig defines how many terminal characters one grid cell covers.
type CellConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PointConfig is a grid coordinate.
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ColorConfig names the three flat colors used on the board.
type ColorConfig struct {
	Head  string `yaml:"head"`
	Body  string `yaml:"body"`
	Apple string `yaml:"apple"`
}

// TickInterval converts Speed to a duration.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.Speed * float64(time.Second))
}

// Validate reports the first problem found in the settings.
func (c SnakeConfig) Validate() error {
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("config: grid %dx%d must be positive: %w", c.Grid.Rows, c.Grid.Cols, ErrInvalid)
	}
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		return fmt.Errorf("config: cell %dx%d must be positive: %w", c.Cell.Width, c.Cell.Height, ErrInvalid)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("config: speed %v must be positive: %w", c.Speed, ErrInvalid)
	}
	if !c.inGrid(c.Start) {
		return fmt.Errorf("config: start (%d,%d) outside grid: %w", c.Start.X, c.Start.Y, ErrInvalid)
	}
	if !c.inGrid(c.Apple) {
		return fmt.Errorf("config: apple (%d,%d) outside grid: %w", c.Apple.X, c.Apple.Y, ErrInvalid)
	}
	for _, col := range []struct{ field, name string }{
		{"head", c.Colors.Head},
		{"body", c.Colors.Body},
		{"apple", c.Colors.Apple},
	} {
		if _, ok := core.ParseColor(col.name); !ok {
			return fmt.Errorf("config: unknown %s color %q: %w", col.field, col.name, ErrInvalid)
		}
	}
	return nil
}

func (c SnakeConfig) inGrid(p PointConfig) bool {
	return p.X >= 0 && p.X < c.Grid.Rows && p.Y >= 0 && p.Y < c.Grid.Cols
}

// HeadColor returns the parsed head color.
func (c SnakeConfig) HeadColor() core.Color { return parseOr(c.Colors.Head, core.ColorBrightGreen) }

// BodyColor returns the parsed body color.
func (c SnakeConfig) BodyColor() core.Color { return parseOr(c.Colors.Body, core.ColorGreen) }

// AppleColor returns the parsed apple color.
func (c SnakeConfig) AppleColor() core.Color { return parseOr(c.Colors.Apple, core.ColorRed) }

func parseOr(name string, fallback core.Color) core.Color {
	if col, ok := core.ParseColor(name); ok {
		return col
	}
	return fallback
}
