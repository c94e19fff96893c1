package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tatianab/wagon-trail/internal/models"
)

// LocationFork offers the current location's alternate routes as a numbered
// menu, with a trailing "see the map" choice one past the last route.
// Numbers that match a route splice it into the trail and move to the depart
// dialog; any other positive number opens the map; anything else is ignored.
type LocationFork struct {
	sim     *Simulation
	choices []*models.Location // choice n is choices[n-1]
	prompt  string
}

func NewLocationFork(sim *Simulation) *LocationFork {
	name := "the trail"
	var choices []*models.Location
	if cur := sim.Trail.CurrentLocation(); cur != nil {
		name = cur.Name
		choices = cur.SkipChoices
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The trail forks at %s. Which way?\n\n", name)
	for i, loc := range choices {
		fmt.Fprintf(&b, "  %d. head for %s\n", i+1, loc.Name)
	}
	fmt.Fprintf(&b, "  %d. see the map\n", len(choices)+1)

	return &LocationFork{sim: sim, choices: choices, prompt: b.String()}
}

func (f *LocationFork) Render() string {
	return f.prompt
}

func (f *LocationFork) HandleInput(line string) Transition {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n <= 0 {
		// Malformed input: wait silently for the next line.
		return None()
	}
	if n <= len(f.choices) {
		f.sim.Trail.InsertLocation(f.choices[n-1])
		return To(FormContinue)
	}
	// The map slot and anything beyond it both mean "show me the map".
	return To(FormMap)
}
