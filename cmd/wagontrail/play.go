package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tatianab/wagon-trail/internal/engine"
	"github.com/tatianab/wagon-trail/internal/models"
	"github.com/tatianab/wagon-trail/internal/scores"
	"github.com/tatianab/wagon-trail/internal/tui"
)

var (
	playLoad   string
	playLeader string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start (or resume) a journey",
	Long: `Play starts a new run on the builtin route, or resumes a saved one
with --load. The trail_file config key swaps in a custom yaml route.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playLoad, "load", "", "resume the named save")
	playCmd.Flags().StringVar(&playLeader, "leader", "Wagon Leader", "name of the party leader")
}

func runPlay(cmd *cobra.Command, args []string) error {
	var session *models.Session
	saveName := playLoad

	if playLoad != "" {
		loaded, err := models.LoadSession(playLoad)
		if err != nil {
			return fmt.Errorf("load save %q: %w", playLoad, err)
		}
		session = loaded
	} else {
		trail := models.BuiltinTrail()
		if cfg.TrailFile != "" {
			loaded, err := models.LoadTrail(cfg.TrailFile)
			if err != nil {
				return fmt.Errorf("load trail file: %w", err)
			}
			trail = loaded
		}
		session = engine.NewSession(playLeader, trail)
		saveName = "current"
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim := engine.New(session, engine.DefaultDistance(seed))

	store, err := scores.Open(cfg.ScoresDB)
	if err != nil {
		return fmt.Errorf("open scores: %w", err)
	}
	defer store.Close()

	if err := tui.Run(sim, store, saveName); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
