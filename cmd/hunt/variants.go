package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-hunt/internal/variant"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the built-in hunt variants",
	Long:  `Shows all registered policy presets and how each one hunts.`,
	Run:   runVariants,
}

func runVariants(cmd *cobra.Command, args []string) {
	presets := variant.List()

	if len(presets) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range presets {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Title", "Summary")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "-----", "-------")

	// Print variants
	for _, v := range presets {
		fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, v.ID, v.Title, v.Summary)
	}

	fmt.Println()
	fmt.Println("Run 'hunt watch --variant <id>' to watch one.")
}
