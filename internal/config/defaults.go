package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake settings.
// The start position is a quarter across and halfway down the grid,
// the apple halfway across.
func DefaultSnakeConfig() SnakeConfig {
	const rows, cols = 48, 27
	return SnakeConfig{
		Grid:  GridConfig{Rows: rows, Cols: cols},
		Cell:  CellConfig{Width: 2, Height: 1},
		Speed: 0.08,
		Start: PointConfig{X: rows / 4, Y: cols / 2},
		Apple: PointConfig{X: rows / 2, Y: cols / 2},
		Colors: ColorConfig{
			Head:  "bright_green",
			Body:  "green",
			Apple: "red",
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
