// Package main provides the wagontrail CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tatianab/wagon-trail/internal/config"
	"github.com/tatianab/wagon-trail/internal/models"
)

var (
	// configFile is set by the --config flag.
	configFile string

	// cfg is loaded before any command runs.
	cfg *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wagontrail",
	Short: "wagontrail is a text-based trail simulation game",
	Long: `wagontrail simulates a wagon party's journey west along the 1848
emigrant trail: landmarks, forks in the road, supplies, and the long
miles in between.`,
	PersistentPreRunE: initConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(scoresCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("wagontrail v0.1.0")
	},
}

// initConfig loads configuration and points the save store at it.
func initConfig(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	loaded, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded
	models.SaveDir = cfg.SaveDir
	return nil
}
