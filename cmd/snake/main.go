// snake is a grid snake game for the terminal.
//
// Usage:
//
//	snake                    - Play the classic variant
//	snake play [variant]     - Play a variant (snake, snake_fair)
//	snake list               - List available variants
//	snake config             - Print the effective settings as YAML
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Settings file (default: ~/.gridsnake/snake.yaml, ./configs/snake.yaml)
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs to a file while playing
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/gridsnake/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Grid snake in your terminal",
	Long: `A snake moves on a fixed grid, grows by eating apples and
dies when it runs into itself. Edges wrap around.

Running without a command starts the classic game.

Available commands:
  play     - Play a variant
  list     - Show all variants
  config   - Print the effective settings
  serve    - Start SSH server for remote play

Examples:
  snake
  snake play snake_fair
  snake --seed 42 --fps 30
  snake config > ~/.gridsnake/snake.yaml
  snake serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runPlay(cmd, nil)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
