package models

import "time"

// EnergyTag labels how a focus session felt, paired with a 1-5 EnergyScore.
type EnergyTag string

const (
	EnergyDrained   EnergyTag = "drained"
	EnergyTired     EnergyTag = "tired"
	EnergySteady    EnergyTag = "steady"
	EnergyEnergized EnergyTag = "energized"
	EnergyFlow      EnergyTag = "flow"
)

// EnergyTags lists the valid tags in score order (1 = drained, 5 = flow).
var EnergyTags = []EnergyTag{
	EnergyDrained,
	EnergyTired,
	EnergySteady,
	EnergyEnergized,
	EnergyFlow,
}

// ValidEnergyTag reports whether tag is one of the fixed labels.
func ValidEnergyTag(tag EnergyTag) bool {
	for _, t := range EnergyTags {
		if t == tag {
			return true
		}
	}
	return false
}

// FocusSession records one pomodoro. Sessions are append-only: once the
// container holds one it is never updated or deleted (only ClearAll removes
// them). EnergyScore and EnergyTag are both set or both nil.
type FocusSession struct {
	ID              string     `json:"id"`
	StartAt         time.Time  `json:"startAt"`
	EndAt           time.Time  `json:"endAt"` // >= StartAt
	DurationMinutes int        `json:"durationMinutes"`
	Date            string     `json:"date"` // YYYY-MM-DD
	IsCompleted     bool       `json:"isCompleted"`
	EnergyScore     *int       `json:"energyScore,omitempty"` // 1-5
	EnergyTag       *EnergyTag `json:"energyTag,omitempty"`
}
