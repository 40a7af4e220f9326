package models

import "time"

// YearGoal is a long-horizon goal with a 0-100 progress value. Marking it
// complete forces Progress to 100.
type YearGoal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category,omitempty"`
	Progress    int       `json:"progress"` // 0-100
	Notes       string    `json:"notes,omitempty"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ClampProgress bounds a progress value to the 0-100 range.
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
