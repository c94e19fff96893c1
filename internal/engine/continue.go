package engine

import "fmt"

// ContinueOnTrail is the depart dialog shown at a location: where the party
// is, what comes next, and how far away it is. Any response marks the
// current location departed and returns control to the travel loop.
type ContinueOnTrail struct {
	sim    *Simulation
	prompt string // built once so Render stays identical between inputs
}

func NewContinueOnTrail(sim *Simulation) *ContinueOnTrail {
	name := "the trail"
	if cur := sim.Trail.CurrentLocation(); cur != nil {
		name = cur.Name
	}

	nextName := "the end of the trail"
	if next, ok := sim.Trail.NextLocation(); ok {
		nextName = next.Name
	}

	prompt := fmt.Sprintf(
		"You are at %s.\nThe next landmark is %s, %d miles ahead.\n\nPress ENTER to continue on the trail.",
		name, nextName, sim.Trail.DistanceToNext)

	return &ContinueOnTrail{sim: sim, prompt: prompt}
}

func (f *ContinueOnTrail) Render() string {
	return f.prompt
}

func (f *ContinueOnTrail) HandleInput(string) Transition {
	f.sim.Depart()
	return Close()
}
