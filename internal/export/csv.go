// Package export writes completed focus sessions to CSV or JSON files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/Donne-shi/daily-planner/internal/models"
)

func ToCSV(sessions []models.FocusSession, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Date", "Start", "End", "Minutes", "Energy Score", "Energy Tag"}); err != nil {
		return err
	}

	for _, s := range sessions {
		row := []string{
			s.ID,
			s.Date,
			s.StartAt.Local().Format(time.RFC3339),
			s.EndAt.Local().Format(time.RFC3339),
			fmt.Sprintf("%d", s.DurationMinutes),
			formatScore(s.EnergyScore),
			formatTag(s.EnergyTag),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func formatScore(score *int) string {
	if score == nil {
		return ""
	}
	return fmt.Sprintf("%d", *score)
}

func formatTag(tag *models.EnergyTag) string {
	if tag == nil {
		return ""
	}
	return string(*tag)
}
