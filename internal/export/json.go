package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Donne-shi/daily-planner/internal/models"
)

type jsonExport struct {
	ExportedAt string        `json:"exported_at"`
	Count      int           `json:"count"`
	Sessions   []jsonSession `json:"sessions"`
}

type jsonSession struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	StartAt     string `json:"start_at"`
	EndAt       string `json:"end_at"`
	Minutes     int    `json:"minutes"`
	EnergyScore *int   `json:"energy_score,omitempty"`
	EnergyTag   string `json:"energy_tag,omitempty"`
}

func ToJSON(sessions []models.FocusSession, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(sessions),
		Sessions:   make([]jsonSession, 0, len(sessions)),
	}

	for _, s := range sessions {
		out.Sessions = append(out.Sessions, jsonSession{
			ID:          s.ID,
			Date:        s.Date,
			StartAt:     s.StartAt.Local().Format(time.RFC3339),
			EndAt:       s.EndAt.Local().Format(time.RFC3339),
			Minutes:     s.DurationMinutes,
			EnergyScore: s.EnergyScore,
			EnergyTag:   formatTag(s.EnergyTag),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
