package models

import "time"

// Task is a day-scoped todo item. Date is the YYYY-MM-DD bucket the task
// belongs to and never changes after creation.
//
// JSON tags are camelCase to stay byte-compatible with previously persisted
// data; do not rename them.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	IsCompleted bool       `json:"isCompleted"`
	IsTop3      bool       `json:"isTop3"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"` // set iff IsCompleted
	Date        string     `json:"date"`                  // YYYY-MM-DD
}
