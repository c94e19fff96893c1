package engine

import (
	"fmt"
	"strings"

	"github.com/tatianab/wagon-trail/internal/models"
)

// LookAtMap draws the full route with a marker per location. Any response
// closes it.
type LookAtMap struct {
	sim *Simulation
}

func NewLookAtMap(sim *Simulation) *LookAtMap {
	return &LookAtMap{sim: sim}
}

func (f *LookAtMap) Render() string {
	var b strings.Builder
	b.WriteString("The trail ahead:\n\n")
	for i, loc := range f.sim.Trail.Trail().Locations {
		fmt.Fprintf(&b, "  %s %2d. %s\n", marker(loc.Status), i+1, loc.Name)
	}
	b.WriteString("\nPress ENTER to return.")
	return b.String()
}

func (f *LookAtMap) HandleInput(string) Transition {
	return Close()
}

func marker(s models.Status) string {
	switch s {
	case models.StatusDeparted:
		return "x"
	case models.StatusArrived:
		return ">"
	default:
		return "."
	}
}
