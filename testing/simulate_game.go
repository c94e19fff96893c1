// Headless playthrough: drives a full run to the end of the trail without
// the TUI, printing every prompt and the scripted response. Useful as a
// smoke test of the whole engine loop.
package main

import (
	"fmt"
	"log"

	"github.com/tatianab/wagon-trail/internal/engine"
	"github.com/tatianab/wagon-trail/internal/models"
)

const maxTurns = 500

func main() {
	trail := models.BuiltinTrail()
	session := engine.NewSession("Scripted Leader", trail)
	sim := engine.New(session, engine.NewSeededDistance(42, 90, 180))

	for turn := 0; turn < maxTurns && !sim.Finished(); turn++ {
		if form := sim.ActiveForm(); form != nil {
			fmt.Println(form.Render())
			line := respond(form)
			fmt.Printf("> %s\n\n", line)
			sim.HandleInput(line)
			continue
		}
		sim.OnTick(false)
		fmt.Printf("Day %d: %d miles to the next landmark\n",
			sim.Day(), sim.Trail.DistanceToNext)
	}

	if !sim.Finished() {
		log.Fatalf("run did not finish within %d turns", maxTurns)
	}

	visited := 0
	for _, loc := range session.Trail.Locations {
		if loc.Status != models.StatusUnvisited {
			visited++
		}
	}
	fmt.Printf("\nReached the end of the trail in %d days, %d landmarks visited.\n",
		sim.Day(), visited)

	for _, entry := range session.Journal.Entries {
		fmt.Printf("Day %3d  %-24s %s\n", entry.Day, entry.Location, entry.Note)
	}
}

// respond picks the scripted answer for a form: always the first route at a
// fork, a plain acknowledgment everywhere else.
func respond(form engine.Form) string {
	if _, ok := form.(*engine.LocationFork); ok {
		return "1"
	}
	return ""
}
