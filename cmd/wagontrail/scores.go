package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tatianab/wagon-trail/internal/scores"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "List finished runs, fastest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := scores.Open(cfg.ScoresDB)
		if err != nil {
			return fmt.Errorf("open scores: %w", err)
		}
		defer store.Close()

		list, err := store.List()
		if err != nil {
			return fmt.Errorf("list scores: %w", err)
		}
		if len(list) == 0 {
			fmt.Println("No finished runs yet.")
			return nil
		}

		fmt.Printf("%-20s %-6s %6s %10s %10s\n", "LEADER", "RESULT", "DAYS", "LANDMARKS", "CASH")
		for _, sc := range list {
			fmt.Printf("%-20s %-6s %6d %10d %10s\n",
				sc.Leader, sc.Outcome, sc.Days, sc.LocationsVisited,
				fmt.Sprintf("$%.2f", sc.Cash))
		}
		return nil
	},
}
