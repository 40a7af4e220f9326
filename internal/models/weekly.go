package models

import "time"

// WeeklyGoal is a goal scoped to one week. WeekStartDate is always the
// Monday key of its week; multiple goals may share a week.
type WeeklyGoal struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	IsCompleted   bool      `json:"isCompleted"`
	CreatedAt     time.Time `json:"createdAt"`
	WeekStartDate string    `json:"weekStartDate"` // Monday, YYYY-MM-DD
	Notes         string    `json:"notes,omitempty"`
}

// WeeklyReflection is the end-of-week review. At most one exists per
// WeekStartDate; saving again for the same week updates it in place.
// FocusMinutesAuto is a snapshot of that week's completed focus minutes
// taken at save time, not a live aggregate.
type WeeklyReflection struct {
	ID               string    `json:"id"`
	WeekStartDate    string    `json:"weekStartDate"` // unique, Monday key
	FocusMinutesAuto int       `json:"focusMinutesAuto"`
	Top3Achievements []string  `json:"top3Achievements"`
	Gratitude3       []string  `json:"gratitude3"`
	Distractions     []string  `json:"distractions"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ReflectionDraft is the caller-supplied input to the reflection upsert.
// Empty strings in the list fields are filtered out before storage and an
// empty WeekStartDate defaults to the current week.
type ReflectionDraft struct {
	WeekStartDate    string
	Top3Achievements []string
	Gratitude3       []string
	Distractions     []string
}
