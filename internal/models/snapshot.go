package models

// Snapshot is the complete in-memory state across all six collections. The
// state container commits a fresh snapshot on every mutation and hands it to
// the persistence gateway, so an in-flight save always serializes a
// self-consistent point-in-time view.
type Snapshot struct {
	Tasks             []Task
	Sessions          []FocusSession
	WeeklyGoals       []WeeklyGoal
	WeeklyReflections []WeeklyReflection
	YearGoals         []YearGoal
	Settings          Settings
}

// NewSnapshot returns the empty first-run state.
func NewSnapshot() Snapshot {
	return Snapshot{Settings: DefaultSettings()}
}
