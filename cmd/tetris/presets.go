package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/g3ner1c/tetris/internal/engine"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List all available rule presets",
	Long:  `Shows every registered rule preset and what it plays like.`,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	presets := engine.List()

	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return
	}

	fmt.Println("Available presets:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, p := range presets {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, p := range presets {
		fmt.Printf("  %-*s  %s\n", maxNameLen, p.Name, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'tetris play --preset <name>' to play one.")
}
