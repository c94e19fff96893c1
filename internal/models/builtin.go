package models

// BuiltinTrail returns the authored 1848 route from Independence to the
// Willamette Valley. Fork locations carry their skip choices in the order
// they are offered to the player.
func BuiltinTrail() *Trail {
	fortBridger := &Location{Name: "Fort Bridger", Mode: ModeLocation}
	greenRiver := &Location{Name: "Green River Shortcut", Mode: ModeLocation}
	wallaWalla := &Location{Name: "Fort Walla Walla", Mode: ModeLocation}
	theDalles := &Location{Name: "The Dalles", Mode: ModeLocation}

	return &Trail{
		TrailLength: 2040,
		Locations: []*Location{
			{Name: "Independence", Mode: ModeLocation},
			{Name: "Kansas River Crossing", Mode: ModeLocation},
			{Name: "Big Blue River Crossing", Mode: ModeLocation},
			{Name: "Fort Kearney", Mode: ModeLocation},
			{Name: "Chimney Rock", Mode: ModeLocation},
			{Name: "Fort Laramie", Mode: ModeLocation},
			{Name: "Independence Rock", Mode: ModeLocation},
			{
				Name:        "South Pass",
				Mode:        ModeFork,
				SkipChoices: []*Location{fortBridger, greenRiver},
			},
			{Name: "Soda Springs", Mode: ModeLocation},
			{Name: "Fort Hall", Mode: ModeLocation},
			{Name: "Snake River Crossing", Mode: ModeLocation},
			{Name: "Fort Boise", Mode: ModeLocation},
			{
				Name:        "Blue Mountains",
				Mode:        ModeFork,
				SkipChoices: []*Location{wallaWalla, theDalles},
			},
			{Name: "Willamette Valley", Mode: ModeLocation},
		},
	}
}
