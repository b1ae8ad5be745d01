// Package model defines the domain types shared across the pipeline, CLI, and TUI.
package model

import "github.com/vitadash/vitadash/internal/records"

// Profile holds a user's master data: identity plus daily goals.
type Profile struct {
	Identifier  string
	Name        string
	Height      float64
	CalorieGoal float64
	ProteinGoal float64
	CarbGoal    float64
	FatGoal     float64
}

// DayCell is one selectable calendar day in the sliding day picker.
type DayCell struct {
	Day     string // zero-padded day of month, e.g. "07"
	Month   string // three-letter month name, e.g. "Mar"
	IsToday bool
}

// DayRecords holds the raw store rows for one (user, day) fetch,
// before any normalization. Collection slices may be empty, never nil checks
// required by consumers.
type DayRecords struct {
	Profile   records.Row
	Weight    records.Row // most recent sample, nil if the user has none
	Meals     []records.Row
	Workouts  []records.Row
	Hydration []records.Row
	Sleep     []records.Row
	Steps     []records.Row
}
