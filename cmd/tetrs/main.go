// tetrs is a terminal falling-block game with swappable rotation systems,
// wallkick tables and piece randomizers.
//
// Usage:
//
//	tetrs play               - Play a game
//	tetrs replay <file>      - Replay a recorded game
//	tetrs scores             - Show stored results
//	tetrs systems            - List rule variants
//	tetrs serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetrs/results.db)
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
	Use:   "tetrs",
	Short: "A configurable falling-block game for your terminal",
	Long: `tetrs is a terminal falling-block game. Rotation system, wallkick
behaviour and piece randomizer are all swappable, and every game can be
recorded and replayed deterministically.

Available commands:
  play     - Play a game
  replay   - Replay a recorded game
  scores   - View stored results
  systems  - List rule variants
  serve    - Start SSH server for remote play

Examples:
  tetrs play
  tetrs play --config ./my-rules.yaml --record game.rec
  tetrs replay game.rec
  tetrs scores --browse
  tetrs serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (engine updates per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetrs/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(systemsCmd)
	rootCmd.AddCommand(serveCmd)
}
