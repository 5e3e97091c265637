// glider is a TUI arcade game: steer a craft through gaps in an endless
// stream of obstacle pairs by timing impulses against gravity.
//
// Usage:
//
//	glider play              - Play the game
//	glider best              - Show the high score
//	glider serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible obstacle placement
//	--db <path>     - Set database path (default: ~/.glider/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glider",
	Short: "Gap Glider - thread the gaps in your terminal",
	Long: `Gap Glider is a terminal arcade game. A craft falls under constant
gravity; press Space (or click) to pulse upward and thread the gap in each
oncoming obstacle pair. One point per pair cleared. One mistake ends the run.

Available commands:
  play     - Play the game
  best     - Show the stored high score
  serve    - Start SSH server for remote play

Examples:
  glider play
  glider play --seed 42 --fps 30
  glider best
  glider serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.glider/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(serveCmd)
}
