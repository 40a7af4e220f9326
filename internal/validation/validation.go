// Package validation holds the input checks callers run before invoking the
// state container. The container itself stays total and accepts whatever it
// is handed; rejecting malformed input is the boundary's job.
package validation

import (
	"fmt"
	"strings"

	"github.com/Donne-shi/daily-planner/internal/constants"
	"github.com/Donne-shi/daily-planner/internal/dateutil"
	"github.com/Donne-shi/daily-planner/internal/models"
)

// Title checks that a task or goal title is non-empty.
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	return nil
}

// Day checks that day is a valid YYYY-MM-DD key. The empty string is allowed
// because the container defaults it.
func Day(day string) error {
	if day == "" {
		return nil
	}
	if _, err := dateutil.ParseDay(day); err != nil {
		return err
	}
	return nil
}

// Minutes checks a session duration against the configured ceiling.
func Minutes(minutes, max int) error {
	if minutes <= 0 {
		return fmt.Errorf("minutes must be greater than zero")
	}
	if max > 0 && minutes > max {
		return fmt.Errorf("minutes must be at most %d", max)
	}
	return nil
}

// Energy checks that score and tag are given together and individually
// valid. Both absent is fine.
func Energy(score *int, tag *models.EnergyTag) error {
	if score == nil && tag == nil {
		return nil
	}
	if score == nil || tag == nil {
		return fmt.Errorf("energy score and tag must be set together")
	}
	if *score < constants.MinEnergyScore || *score > constants.MaxEnergyScore {
		return fmt.Errorf("energy score must be between %d and %d",
			constants.MinEnergyScore, constants.MaxEnergyScore)
	}
	if !models.ValidEnergyTag(*tag) {
		return fmt.Errorf("unknown energy tag %q (valid: %s)", *tag, energyTagList())
	}
	return nil
}

// Progress checks a year-goal progress value.
func Progress(progress int) error {
	if progress < 0 || progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100")
	}
	return nil
}

// Settings checks that a patch applied to current yields a coherent record.
func Settings(patch models.SettingsPatch, current models.Settings) error {
	next := patch.Apply(current)
	if next.DefaultPomodoroMinutes <= 0 {
		return fmt.Errorf("default pomodoro minutes must be greater than zero")
	}
	if next.MaxPomodoroMinutes < next.DefaultPomodoroMinutes {
		return fmt.Errorf("max pomodoro minutes (%d) must be at least the default (%d)",
			next.MaxPomodoroMinutes, next.DefaultPomodoroMinutes)
	}
	return nil
}

func energyTagList() string {
	names := make([]string, len(models.EnergyTags))
	for i, t := range models.EnergyTags {
		names[i] = string(t)
	}
	return strings.Join(names, "|")
}
