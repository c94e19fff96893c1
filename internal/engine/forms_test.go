package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/wagon-trail/internal/models"
)

func newTestSim(t *testing.T, trail *models.Trail) *Simulation {
	t.Helper()
	session := NewSession("Test Leader", trail)
	return New(session, FixedDistance{Miles: 100})
}

func forkTrail() *models.Trail {
	return &models.Trail{
		TrailLength: 1000,
		Locations: []*models.Location{
			{
				Name: "South Pass",
				Mode: models.ModeFork,
				SkipChoices: []*models.Location{
					{Name: "Fort Bridger", Mode: models.ModeLocation},
					{Name: "Green River Shortcut", Mode: models.ModeLocation},
				},
			},
			{Name: "Fort Hall", Mode: models.ModeLocation},
		},
	}
}

func TestContinueOnTrailPrompt(t *testing.T) {
	sim := newTestSim(t, threeStopTrail())

	form := sim.ActiveForm()
	require.IsType(t, &ContinueOnTrail{}, form)

	prompt := form.Render()
	assert.Contains(t, prompt, "Independence")
	assert.Contains(t, prompt, "Fort Kearney")
	assert.Contains(t, prompt, "100 miles")
}

func TestContinueOnTrailDepartsAndCloses(t *testing.T) {
	trail := threeStopTrail()
	sim := newTestSim(t, trail)
	require.NotNil(t, sim.ActiveForm())

	sim.HandleInput("")

	assert.Equal(t, models.StatusDeparted, trail.Locations[0].Status)
	assert.False(t, sim.Vehicle().Parked)
	assert.Nil(t, sim.ActiveForm(), "dialog closes on any response")
	assert.Zero(t, sim.Modes.Len())
}

func TestCheckSuppliesFormatting(t *testing.T) {
	cash := models.InventoryItem{Kind: models.ItemCash, Name: "Cash", Quantity: 50}
	oxen := models.InventoryItem{Kind: models.ItemOxen, Name: "Oxen", Quantity: 2}

	assert.Equal(t, "Cash                $50.00", FormatSupplyLine(cash))
	assert.Equal(t, "Oxen                     2", FormatSupplyLine(oxen))
}

func TestCheckSuppliesRenderAndClose(t *testing.T) {
	trail := threeStopTrail()
	sim := newTestSim(t, trail)
	sim.Vehicle().Inventory = []models.InventoryItem{
		{Kind: models.ItemCash, Name: "Cash", Quantity: 50},
		{Kind: models.ItemOxen, Name: "Oxen", Quantity: 2},
	}

	sim.OpenSupplies()
	form := sim.ActiveForm()
	require.IsType(t, &CheckSupplies{}, form)

	out := form.Render()
	assert.Contains(t, out, "Cash                $50.00")
	assert.Contains(t, out, "Oxen                     2")

	before := append([]models.InventoryItem(nil), sim.Vehicle().Inventory...)
	sim.HandleInput("anything")
	assert.Equal(t, before, sim.Vehicle().Inventory, "supplies dialog is read-only")
	require.IsType(t, &ContinueOnTrail{}, sim.ActiveForm(), "closing returns to the dialog underneath")
}

func TestLocationForkChoiceInsertsAndDeparts(t *testing.T) {
	trail := forkTrail()
	sim := newTestSim(t, trail)
	require.IsType(t, &LocationFork{}, sim.ActiveForm())

	prompt := sim.ActiveForm().Render()
	assert.Contains(t, prompt, "1. head for Fort Bridger")
	assert.Contains(t, prompt, "2. head for Green River Shortcut")
	assert.Contains(t, prompt, "3. see the map")

	sim.HandleInput("1")

	require.Len(t, trail.Locations, 3)
	assert.Equal(t, "Fort Bridger", trail.Locations[1].Name, "choice splices in after the fork")
	form := sim.ActiveForm()
	require.IsType(t, &ContinueOnTrail{}, form)
	assert.Contains(t, form.Render(), "Fort Bridger")
}

func TestLocationForkMapSlot(t *testing.T) {
	sim := newTestSim(t, forkTrail())

	sim.HandleInput("3")
	require.IsType(t, &LookAtMap{}, sim.ActiveForm())

	// Closing the map puts the player back at the fork.
	sim.HandleInput("")
	require.IsType(t, &LocationFork{}, sim.ActiveForm())
}

func TestLocationForkLargeNumberAlsoShowsMap(t *testing.T) {
	sim := newTestSim(t, forkTrail())

	sim.HandleInput("42")
	require.IsType(t, &LookAtMap{}, sim.ActiveForm())
}

func TestLocationForkIgnoresMalformedInput(t *testing.T) {
	trail := forkTrail()
	sim := newTestSim(t, trail)
	fork := sim.ActiveForm()

	for _, line := range []string{"abc", "", "0", "-2", "1.5"} {
		sim.HandleInput(line)
		assert.Same(t, fork, sim.ActiveForm(), "input %q must leave the fork waiting", line)
		assert.Len(t, trail.Locations, 2)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	sim := newTestSim(t, forkTrail())

	forms := []Form{
		sim.ActiveForm(),
		NewCheckSupplies(sim),
		NewLookAtMap(sim),
		NewContinueOnTrail(sim),
	}
	for _, form := range forms {
		assert.Equal(t, form.Render(), form.Render())
	}
}

func TestLookAtMapMarksProgress(t *testing.T) {
	trail := threeStopTrail()
	sim := newTestSim(t, trail)
	sim.HandleInput("") // depart Independence

	sim.OpenMap()
	out := sim.ActiveForm().Render()
	assert.Contains(t, out, "x  1. Independence")
	assert.Contains(t, out, ".  2. Fort Kearney")
}

func TestSimulationRunsToEndGame(t *testing.T) {
	trail := &models.Trail{
		TrailLength: 300,
		Locations: []*models.Location{
			{Name: "Independence", Mode: models.ModeLocation},
			{Name: "Willamette Valley", Mode: models.ModeLocation},
		},
	}
	sim := newTestSim(t, trail)

	for turns := 0; turns < 100 && !sim.Finished(); turns++ {
		if sim.ActiveForm() != nil {
			sim.HandleInput("")
			continue
		}
		sim.OnTick(false)
	}

	assert.True(t, sim.Finished())
	top, ok := sim.Modes.Top()
	require.True(t, ok)
	assert.Equal(t, models.ModeEndGame, top)
	assert.Equal(t, models.StatusDeparted, trail.Locations[0].Status)
	assert.NotEmpty(t, sim.Session().Journal.Entries)
}

func TestSimulationResumesFromProgress(t *testing.T) {
	trail := threeStopTrail()
	session := NewSession("Test Leader", trail)
	session.Progress = models.Progress{
		LocationIndex:  1,
		DistanceToNext: 55,
		TotalTurns:     9,
		MilesAllocated: 200,
		Day:            9,
	}

	sim := New(session, FixedDistance{Miles: 100})

	assert.Equal(t, 1, sim.Trail.LocationIndex)
	assert.Equal(t, 55, sim.Trail.DistanceToNext)
	assert.Nil(t, sim.ActiveForm(), "a resumed run does not re-arrive at the trailhead")
}

func TestSimulationResumeWhileParkedReopensDialog(t *testing.T) {
	trail := threeStopTrail()
	session := NewSession("Test Leader", trail)
	session.Vehicle.Park()
	trail.Locations[1].MarkArrived()
	session.Progress = models.Progress{
		LocationIndex:  1,
		DistanceToNext: 70,
		TotalTurns:     5,
		Day:            5,
	}

	sim := New(session, FixedDistance{Miles: 100})
	require.IsType(t, &ContinueOnTrail{}, sim.ActiveForm())
}
