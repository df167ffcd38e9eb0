package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tiehuis/tetrs/internal/config"
	"github.com/tiehuis/tetrs/internal/platform/tui"
	"github.com/tiehuis/tetrs/internal/storage"
)

var (
	flagConfig string
	flagRecord string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start an interactive game in the terminal.

Controls:
  Left/Right  - Move
  Down        - Soft drop
  Space       - Hard drop
  Z / X       - Rotate left / right
  C           - Hold
  P           - Pause
  R           - Restart (after game over)
  Q           - Quit

Examples:
  tetrs play
  tetrs play --seed 12345
  tetrs play --config ./my-rules.yaml
  tetrs play --record game.rec`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write a replayable recording to this file on game over")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Check the board fits before entering the alt screen.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW := cfg.Field.Width*2 + 2 + 20 // board + borders + side panel
		needH := cfg.Field.Height - cfg.Field.Hidden + 1
		if w < needW || h < needH {
			fmt.Fprintf(os.Stderr, "Error: terminal too small (%dx%d), need at least %dx%d\n",
				w, h, needW, needH)
			os.Exit(1)
		}
	}

	// Results are optional; play continues without a database.
	store, storeErr := storage.Open(flagDBPath)
	if storeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: results database unavailable: %v\n", storeErr)
	} else {
		defer store.Close()
	}

	err = tui.Run(cfg, tui.RunOptions{
		Store:      store,
		Seed:       flagSeed,
		TickRate:   flagFPS,
		RecordPath: flagRecord,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
