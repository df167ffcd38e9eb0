package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tiehuis/tetrs/internal/randomizer"
	"github.com/tiehuis/tetrs/internal/rotation"
	"github.com/tiehuis/tetrs/internal/wallkick"
)

var systemsCmd = &cobra.Command{
	Use:   "systems",
	Short: "List rule variants",
	Long: `Show the available rotation systems, wallkick tables and piece
randomizers. Any combination can be selected in a game config YAML.`,
	Args: cobra.NoArgs,
	Run:  runSystems,
}

func runSystems(_ *cobra.Command, _ []string) {
	fmt.Printf("Rotation systems:  %s\n", strings.Join(rotation.Names(), ", "))
	fmt.Printf("Wallkick tables:   %s\n", strings.Join(wallkick.Names(), ", "))
	fmt.Printf("Randomizers:       %s\n", strings.Join(randomizer.Names(), ", "))
	fmt.Println()
	fmt.Println("Set them in a config YAML under 'rules:' and pass it to 'tetrs play --config'.")
}
