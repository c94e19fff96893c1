package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tatianab/wagon-trail/internal/models"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List saved journeys",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := models.ListSessions()
		if err != nil {
			return fmt.Errorf("list saves: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No saved journeys.")
			return nil
		}
		for _, name := range sessions {
			fmt.Println(name)
		}
		return nil
	},
}
