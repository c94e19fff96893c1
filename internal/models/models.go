package models

// Status tracks how far the party has progressed through a location.
// Transitions are monotonic: Unvisited -> Arrived -> Departed.
type Status int

const (
	StatusUnvisited Status = iota
	StatusArrived
	StatusDeparted
)

func (s Status) String() string {
	switch s {
	case StatusArrived:
		return "arrived"
	case StatusDeparted:
		return "departed"
	default:
		return "unvisited"
	}
}

// Mode identifies a unit of interactive UI pushed onto the mode stack.
type Mode string

const (
	ModeTravel   Mode = "travel"
	ModeLocation Mode = "location"
	ModeFork     Mode = "fork"
	ModeSupplies Mode = "check-supplies"
	ModeMap      Mode = "look-at-map"
	ModeEndGame  Mode = "end-game"
)

// Location represents a specific place on the trail.
type Location struct {
	Name        string      `yaml:"name"`
	Status      Status      `yaml:"status"`
	SkipChoices []*Location `yaml:"skip_choices,omitempty"` // alternate routes, authored per location
	Mode        Mode        `yaml:"mode,omitempty"`
}

// MarkArrived flags the location as reached. It never moves the status
// backward.
func (l *Location) MarkArrived() {
	if l.Status == StatusUnvisited {
		l.Status = StatusArrived
	}
}

// MarkDeparted flags the location as left behind.
func (l *Location) MarkDeparted() {
	if l.Status != StatusDeparted {
		l.Status = StatusDeparted
	}
}

// IsFork reports whether the location offers alternate routes.
func (l *Location) IsFork() bool {
	return len(l.SkipChoices) > 0
}

// Trail is the fixed, ordered route the party follows.
type Trail struct {
	Locations   []*Location `yaml:"locations"`
	TrailLength int         `yaml:"trail_length"` // total miles, ceiling for generated leg distances
}

// ItemKind names a kind of supply carried by the vehicle.
type ItemKind string

const (
	ItemOxen     ItemKind = "oxen"
	ItemFood     ItemKind = "food"
	ItemClothing ItemKind = "clothing"
	ItemAmmo     ItemKind = "ammo"
	ItemWheel    ItemKind = "wheel"
	ItemAxle     ItemKind = "axle"
	ItemTongue   ItemKind = "tongue"
	ItemCash     ItemKind = "cash"
)

// InventoryItem is one supply slot. Quantity is a float so cash can carry
// cents; every other kind holds whole counts.
type InventoryItem struct {
	Kind     ItemKind `yaml:"kind"`
	Name     string   `yaml:"name"`
	Quantity float64  `yaml:"quantity"`
}

// Vehicle is the party's wagon: how far it moves per turn, whether it is
// parked at a location, and what it carries. Inventory order is display
// order and never changes after creation.
type Vehicle struct {
	Mileage   int             `yaml:"mileage"`
	Parked    bool            `yaml:"parked"`
	Inventory []InventoryItem `yaml:"inventory"`
}

// Park stops the vehicle at the current location.
func (v *Vehicle) Park() {
	v.Parked = true
}

// Item returns the inventory slot for the given kind, or nil.
func (v *Vehicle) Item(kind ItemKind) *InventoryItem {
	for i := range v.Inventory {
		if v.Inventory[i].Kind == kind {
			return &v.Inventory[i]
		}
	}
	return nil
}

// NewVehicle returns a wagon with the standard starting outfit.
func NewVehicle() *Vehicle {
	return &Vehicle{
		Mileage: 15,
		Inventory: []InventoryItem{
			{Kind: ItemCash, Name: "Cash", Quantity: 400},
			{Kind: ItemOxen, Name: "Oxen", Quantity: 2},
			{Kind: ItemFood, Name: "Food", Quantity: 500},
			{Kind: ItemClothing, Name: "Clothing", Quantity: 10},
			{Kind: ItemAmmo, Name: "Ammunition", Quantity: 100},
			{Kind: ItemWheel, Name: "Spare wheels", Quantity: 1},
			{Kind: ItemAxle, Name: "Spare axles", Quantity: 1},
			{Kind: ItemTongue, Name: "Spare tongues", Quantity: 1},
		},
	}
}

// JournalEntry records one noteworthy moment of the run.
type JournalEntry struct {
	Day      int    `yaml:"day"`
	Location string `yaml:"location"`
	Note     string `yaml:"note"`
}

// Journal is the append-only history of the run.
type Journal struct {
	Entries []JournalEntry `yaml:"entries"`
}

// Log appends an entry.
func (j *Journal) Log(day int, location, note string) {
	j.Entries = append(j.Entries, JournalEntry{Day: day, Location: location, Note: note})
}

// Progress is the trail-position state that must survive a save/load cycle.
type Progress struct {
	LocationIndex  int `yaml:"location_index"`
	DistanceToNext int `yaml:"distance_to_next"`
	TotalTurns     int `yaml:"total_turns"`
	MilesAllocated int `yaml:"miles_allocated"`
	Day            int `yaml:"day"`
}

// Session aggregates all game-related data for one run.
type Session struct {
	ID       string   `yaml:"id"` // uuid, assigned on creation
	Leader   string   `yaml:"leader"`
	Trail    *Trail   `yaml:"trail"`
	Vehicle  *Vehicle `yaml:"vehicle"`
	Progress Progress `yaml:"progress"`
	Journal  Journal  `yaml:"journal"`
}
