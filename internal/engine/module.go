package engine

import (
	"github.com/tatianab/wagon-trail/internal/models"
)

// ModeSink receives mode-push requests from the trail module. The simulation
// implements it; tests substitute a recorder.
type ModeSink interface {
	Push(mode models.Mode)
}

// TrailModule tracks the vehicle's position along the trail: which location
// the party is at (or heading to) and how many miles remain to the next one.
// All guards are defensive no-ops; a location index past the end of the
// trail means the run is over, not that something went wrong.
type TrailModule struct {
	trail   *models.Trail
	vehicle *models.Vehicle
	modes   ModeSink
	policy  DistancePolicy

	// LocationIndex is the current location. The last valid index is
	// len(Locations)-1; anything >= len(Locations) is past the end.
	LocationIndex  int
	DistanceToNext int
	TotalTurns     int

	allocated int // miles the policy has handed out so far
}

func NewTrailModule(trail *models.Trail, vehicle *models.Vehicle, modes ModeSink, policy DistancePolicy) *TrailModule {
	return &TrailModule{
		trail:   trail,
		vehicle: vehicle,
		modes:   modes,
		policy:  policy,
	}
}

// OnTick advances the vehicle by its mileage. System ticks carry no
// simulation time and are ignored. When the remaining distance reaches zero
// it is clamped there and arrival fires exactly once.
func (m *TrailModule) OnTick(systemTick bool) {
	if systemTick {
		return
	}
	m.TotalTurns++
	if m.vehicle.Parked {
		return
	}
	remaining := m.DistanceToNext - m.vehicle.Mileage
	if remaining > 0 {
		m.DistanceToNext = remaining
		return
	}
	m.DistanceToNext = 0
	m.ArriveAtNextLocation()
}

// ArriveAtNextLocation moves the party to the next location: a new leg
// distance is drawn, the index advances (unless this is the very first
// arrival at the trailhead), and the location's mode is pushed. Advancing
// past the last location pushes the end-game mode instead.
func (m *TrailModule) ArriveAtNextLocation() {
	if m.LocationIndex >= len(m.trail.Locations) {
		return
	}

	m.DistanceToNext = m.nextLegDistance()

	// At turn zero the party is already standing at the trailhead;
	// advancing here would skip it.
	if m.TotalTurns > 0 {
		m.LocationIndex++
	}

	if m.LocationIndex >= len(m.trail.Locations) {
		m.modes.Push(models.ModeEndGame)
		return
	}

	loc := m.trail.Locations[m.LocationIndex]
	loc.MarkArrived()
	m.vehicle.Park()
	m.modes.Push(loc.Mode)
}

// CurrentLocation returns the location at the current index, or nil when the
// trail is finished.
func (m *TrailModule) CurrentLocation() *models.Location {
	if m.LocationIndex >= len(m.trail.Locations) {
		return nil
	}
	return m.trail.Locations[m.LocationIndex]
}

// NextLocation returns the location one past the current index. ok is false
// when the current location is the last.
func (m *TrailModule) NextLocation() (*models.Location, bool) {
	next := m.LocationIndex + 1
	if next >= len(m.trail.Locations) {
		return nil, false
	}
	return m.trail.Locations[next], true
}

// InsertLocation splices a location immediately after the current index,
// leaving already-visited history untouched. Fork resolution uses this to
// redirect the route.
func (m *TrailModule) InsertLocation(loc *models.Location) {
	at := m.LocationIndex + 1
	locs := m.trail.Locations
	if at > len(locs) {
		at = len(locs)
	}
	spliced := make([]*models.Location, 0, len(locs)+1)
	spliced = append(spliced, locs[:at]...)
	spliced = append(spliced, loc)
	spliced = append(spliced, locs[at:]...)
	m.trail.Locations = spliced
}

// Trail exposes the underlying trail for read-only rendering.
func (m *TrailModule) Trail() *models.Trail {
	return m.trail
}

func (m *TrailModule) nextLegDistance() int {
	budget := m.trail.TrailLength - m.allocated
	if budget < 1 {
		budget = 1
	}
	d := m.policy.NextDistance(budget)
	if d < 1 {
		d = 1
	}
	m.allocated += d
	return d
}
