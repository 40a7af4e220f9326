package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Donne-shi/daily-planner/internal/models"
)

func sampleSessions() []models.FocusSession {
	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)
	score := 5
	tag := models.EnergyFlow
	return []models.FocusSession{
		{
			ID: "s1", Date: "2024-06-10",
			StartAt: start, EndAt: start.Add(25 * time.Minute),
			DurationMinutes: 25, IsCompleted: true,
			EnergyScore: &score, EnergyTag: &tag,
		},
		{
			ID: "s2", Date: "2024-06-11",
			StartAt: start.AddDate(0, 0, 1), EndAt: start.AddDate(0, 0, 1).Add(50 * time.Minute),
			DurationMinutes: 50, IsCompleted: true,
		},
	}
}

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.csv")

	if err := ToCSV(sampleSessions(), path); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][4] != "Minutes" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "s1" || rows[1][1] != "2024-06-10" || rows[1][4] != "25" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[1][5] != "5" || rows[1][6] != "flow" {
		t.Errorf("energy columns wrong: %v", rows[1])
	}
	// Absent energy renders as empty cells, not zeroes.
	if rows[2][5] != "" || rows[2][6] != "" {
		t.Errorf("nil energy should be empty: %v", rows[2])
	}
}

func TestToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	if err := ToCSV(nil, path); err != nil {
		t.Fatalf("ToCSV with no sessions: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "ID,") {
		t.Errorf("expected header-only file, got %q", data)
	}
}

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")

	if err := ToJSON(sampleSessions(), path); err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var out struct {
		ExportedAt string `json:"exported_at"`
		Count      int    `json:"count"`
		Sessions   []struct {
			ID        string `json:"id"`
			Date      string `json:"date"`
			Minutes   int    `json:"minutes"`
			EnergyTag string `json:"energy_tag"`
		} `json:"sessions"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("parse export: %v", err)
	}

	if out.Count != 2 || len(out.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got count=%d len=%d", out.Count, len(out.Sessions))
	}
	if _, err := time.Parse(time.RFC3339, out.ExportedAt); err != nil {
		t.Errorf("exported_at not RFC3339: %q", out.ExportedAt)
	}
	if out.Sessions[0].ID != "s1" || out.Sessions[0].Minutes != 25 || out.Sessions[0].EnergyTag != "flow" {
		t.Errorf("unexpected first session: %+v", out.Sessions[0])
	}
	if out.Sessions[1].EnergyTag != "" {
		t.Errorf("nil tag should be omitted or empty: %+v", out.Sessions[1])
	}
}

func TestToJSONEmptyIsList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")

	if err := ToJSON(nil, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), `"sessions": null`) {
		t.Error("empty export should serialize sessions as []")
	}
}

func TestExportBadPath(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "missing", "sub", "out.csv")
	if err := ToCSV(sampleSessions(), bad); err == nil {
		t.Error("ToCSV should fail when the directory does not exist")
	}
	if err := ToJSON(sampleSessions(), bad); err == nil {
		t.Error("ToJSON should fail when the directory does not exist")
	}
}
