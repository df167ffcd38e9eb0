package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tiehuis/tetrs/internal/config"
	"github.com/tiehuis/tetrs/internal/rotation"
	"github.com/tiehuis/tetrs/internal/schema"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Replay a recorded game",
	Long: `Re-run a recording written by 'tetrs play --record' and print the
final board and statistics. Replays are deterministic: the same recording
always produces the same result.

Examples:
  tetrs replay game.rec`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	rec, err := config.LoadRecording(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	eng, err := rec.Replay()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The board is printable unless the final piece overlaps the stack,
	// which happens when the game ended on a blocked spawn.
	if rs, rsErr := rotation.New(rec.Game.Rules.RotationSystem); rsErr == nil {
		if s, schemaErr := schema.FromSnapshot(eng.Snapshot(), rs); schemaErr == nil {
			fmt.Println(s.String())
			fmt.Println()
		}
	}

	stats := eng.Stats()
	fmt.Printf("seed    %d\n", rec.Seed)
	fmt.Printf("ticks   %d\n", eng.Ticks())
	fmt.Printf("pieces  %d\n", stats.Pieces)
	fmt.Printf("lines   %d\n", stats.Lines)
	fmt.Printf("  singles %d\n", stats.Singles)
	fmt.Printf("  doubles %d\n", stats.Doubles)
	fmt.Printf("  triples %d\n", stats.Triples)
	fmt.Printf("  fours   %d\n", stats.Fours)
}
