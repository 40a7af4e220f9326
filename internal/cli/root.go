// Package cli holds the kong command tree. Commands are thin presentation
// glue: they validate input, call the state container, and print. All
// domain rules live below this package.
package cli

import (
	"fmt"

	"github.com/Donne-shi/daily-planner/internal/models"
	"github.com/Donne-shi/daily-planner/internal/store"
)

// Context carries the app-wide dependencies into command Run methods. It is
// built once by the composition root; nothing here is a global.
type Context struct {
	Store *store.Store
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func printTask(t models.Task, showID bool) {
	marker := ""
	if t.IsTop3 {
		marker = " *"
	}
	idStr := ""
	if showID {
		idStr = fmt.Sprintf(" (ID: %s)", t.ID)
	}
	fmt.Printf("  %s %s%s%s\n", checkbox(t.IsCompleted), t.Title, marker, idStr)
}

func printSession(s models.FocusSession) {
	energy := ""
	if s.EnergyScore != nil && s.EnergyTag != nil {
		energy = fmt.Sprintf(" (energy %d/%d, %s)", *s.EnergyScore, 5, *s.EnergyTag)
	}
	fmt.Printf("  %s  %s - %s  %dm%s\n",
		s.Date,
		s.StartAt.Local().Format("15:04"),
		s.EndAt.Local().Format("15:04"),
		s.DurationMinutes,
		energy,
	)
}

// formatMinutes renders a minute total as "2h 05m" or "45m".
func formatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
