package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/tatianab/wagon-trail/internal/models"
)

// TrailStart is the day the party leaves Independence.
var TrailStart = time.Date(1848, time.April, 1, 0, 0, 0, 0, time.UTC)

// ModeStack is the stack of active modes. Forms never touch it directly;
// they return Transition commands and the simulation keeps the stack and the
// form stack in step.
type ModeStack struct {
	modes []models.Mode
}

func (s *ModeStack) Push(mode models.Mode) {
	s.modes = append(s.modes, mode)
}

func (s *ModeStack) Pop() (models.Mode, bool) {
	if len(s.modes) == 0 {
		return "", false
	}
	top := s.modes[len(s.modes)-1]
	s.modes = s.modes[:len(s.modes)-1]
	return top, true
}

func (s *ModeStack) Top() (models.Mode, bool) {
	if len(s.modes) == 0 {
		return "", false
	}
	return s.modes[len(s.modes)-1], true
}

func (s *ModeStack) Len() int {
	return len(s.modes)
}

// Simulation is the explicit context every form receives: the trail module,
// the vehicle, the journal, and the mode stack, advanced by discrete ticks
// from the outside. There is no global instance; tests build their own.
type Simulation struct {
	session *models.Session
	Trail   *TrailModule
	Modes   *ModeStack
	forms   []Form
}

// NewSession builds a fresh run on the given trail.
func NewSession(leader string, trail *models.Trail) *models.Session {
	return &models.Session{
		ID:      uuid.NewString(),
		Leader:  leader,
		Trail:   trail,
		Vehicle: models.NewVehicle(),
	}
}

// New wires a simulation around a session. A brand-new session arrives at
// the trailhead immediately; a loaded one resumes where it left off.
func New(session *models.Session, policy DistancePolicy) *Simulation {
	sim := &Simulation{session: session, Modes: &ModeStack{}}
	sim.Trail = NewTrailModule(session.Trail, session.Vehicle, sim, policy)
	sim.Trail.LocationIndex = session.Progress.LocationIndex
	sim.Trail.DistanceToNext = session.Progress.DistanceToNext
	sim.Trail.TotalTurns = session.Progress.TotalTurns
	sim.Trail.allocated = session.Progress.MilesAllocated

	switch {
	case session.Progress.TotalTurns == 0 && session.Progress.DistanceToNext == 0:
		sim.Trail.ArriveAtNextLocation()
		sim.sync()
	case sim.Trail.LocationIndex >= len(session.Trail.Locations):
		// The save was made after the journey ended.
		sim.Modes.Push(models.ModeEndGame)
	default:
		// A save made while parked at a location reopens its dialog.
		sim.ensureLocationForm()
	}
	return sim
}

// OnTick advances the simulation by one turn. System ticks are ignored.
func (s *Simulation) OnTick(systemTick bool) {
	if systemTick || s.Finished() {
		return
	}
	s.session.Progress.Day++
	s.Trail.OnTick(false)
	s.sync()
}

// Push implements ModeSink: the trail module announces arrivals (and the end
// of the game) here, and the matching form is created.
func (s *Simulation) Push(mode models.Mode) {
	switch mode {
	case models.ModeFork:
		s.push(mode, NewLocationFork(s))
	case models.ModeEndGame:
		s.Modes.Push(mode)
		s.session.Journal.Log(s.session.Progress.Day, "", "Reached the end of the trail.")
		return
	default:
		if mode == "" {
			mode = models.ModeLocation
		}
		s.push(mode, NewContinueOnTrail(s))
	}
	if loc := s.Trail.CurrentLocation(); loc != nil {
		s.session.Journal.Log(s.session.Progress.Day, loc.Name, "Arrived.")
	}
}

// OpenSupplies shows the inventory dialog on top of whatever is active.
func (s *Simulation) OpenSupplies() {
	s.push(models.ModeSupplies, NewCheckSupplies(s))
}

// OpenMap shows the trail map on top of whatever is active.
func (s *Simulation) OpenMap() {
	s.push(models.ModeMap, NewLookAtMap(s))
}

// ActiveForm returns the form awaiting input, or nil while traveling.
func (s *Simulation) ActiveForm() Form {
	if len(s.forms) == 0 {
		return nil
	}
	return s.forms[len(s.forms)-1]
}

// HandleInput routes one line of player input to the active form and applies
// the transition it returns.
func (s *Simulation) HandleInput(line string) {
	form := s.ActiveForm()
	if form == nil {
		return
	}
	s.Apply(form.HandleInput(line))
}

// Apply executes a form's transition command.
func (s *Simulation) Apply(t Transition) {
	switch t.Kind {
	case TransitionClose:
		s.pop()
	case TransitionTo:
		s.pop()
		s.open(t.Form)
	}
	s.ensureLocationForm()
	s.sync()
}

// ensureLocationForm reopens the current location's dialog when the form
// stack empties while the wagon is still parked there, e.g. after closing
// the map a fork sent the player to.
func (s *Simulation) ensureLocationForm() {
	if len(s.forms) > 0 || s.Finished() || !s.session.Vehicle.Parked {
		return
	}
	loc := s.Trail.CurrentLocation()
	if loc == nil || loc.Status == models.StatusDeparted {
		return
	}
	if loc.IsFork() {
		s.push(models.ModeFork, NewLocationFork(s))
	} else {
		s.push(models.ModeLocation, NewContinueOnTrail(s))
	}
}

// Depart marks the current location left behind and rolls the wagon.
func (s *Simulation) Depart() {
	if loc := s.Trail.CurrentLocation(); loc != nil {
		loc.MarkDeparted()
		s.session.Journal.Log(s.session.Progress.Day, loc.Name, "Moved on down the trail.")
	}
	s.session.Vehicle.Parked = false
}

// Finished reports whether the end-game mode has been reached.
func (s *Simulation) Finished() bool {
	top, ok := s.Modes.Top()
	return ok && top == models.ModeEndGame
}

func (s *Simulation) Session() *models.Session {
	return s.session
}

func (s *Simulation) Vehicle() *models.Vehicle {
	return s.session.Vehicle
}

func (s *Simulation) Day() int {
	return s.session.Progress.Day
}

// Date is the calendar date for the current day.
func (s *Simulation) Date() time.Time {
	return TrailStart.AddDate(0, 0, s.session.Progress.Day)
}

func (s *Simulation) open(kind FormKind) {
	switch kind {
	case FormContinue:
		s.push(models.ModeLocation, NewContinueOnTrail(s))
	case FormSupplies:
		s.OpenSupplies()
	case FormFork:
		s.push(models.ModeFork, NewLocationFork(s))
	case FormMap:
		s.OpenMap()
	}
}

func (s *Simulation) push(mode models.Mode, form Form) {
	s.Modes.Push(mode)
	s.forms = append(s.forms, form)
}

func (s *Simulation) pop() {
	if len(s.forms) > 0 {
		s.forms = s.forms[:len(s.forms)-1]
	}
	s.Modes.Pop()
}

// sync mirrors the module's counters into the session so a save captures
// them.
func (s *Simulation) sync() {
	s.session.Progress.LocationIndex = s.Trail.LocationIndex
	s.session.Progress.DistanceToNext = s.Trail.DistanceToNext
	s.session.Progress.TotalTurns = s.Trail.TotalTurns
	s.session.Progress.MilesAllocated = s.Trail.allocated
}
