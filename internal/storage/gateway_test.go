package storage

import (
	"testing"
	"time"

	"github.com/Donne-shi/daily-planner/internal/constants"
	"github.com/Donne-shi/daily-planner/internal/models"
)

func newTestGateway(t *testing.T) (*Gateway, KV) {
	t.Helper()
	kv := newTestFileKV(t)
	return NewGateway(kv), kv
}

func sampleSnapshot() models.Snapshot {
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	done := now.Add(2 * time.Hour)
	score := 4
	tag := models.EnergyEnergized

	snap := models.NewSnapshot()
	snap.Tasks = []models.Task{
		{ID: "t1", Title: "Write report", IsTop3: true, CreatedAt: now, Date: "2024-06-10"},
		{ID: "t2", Title: "Review PRs", IsCompleted: true, CreatedAt: now, CompletedAt: &done, Date: "2024-06-10"},
	}
	snap.Sessions = []models.FocusSession{
		{ID: "s1", StartAt: now, EndAt: now.Add(25 * time.Minute), DurationMinutes: 25,
			Date: "2024-06-10", IsCompleted: true, EnergyScore: &score, EnergyTag: &tag},
	}
	snap.WeeklyGoals = []models.WeeklyGoal{
		{ID: "w1", Title: "Ship feature", CreatedAt: now, WeekStartDate: "2024-06-10"},
	}
	snap.WeeklyReflections = []models.WeeklyReflection{
		{ID: "r1", WeekStartDate: "2024-06-03", FocusMinutesAuto: 150,
			Top3Achievements: []string{"launched"}, Gratitude3: []string{"team"},
			Distractions: []string{}, CreatedAt: now},
	}
	snap.YearGoals = []models.YearGoal{
		{ID: "y1", Title: "Read 12 books", Progress: 40, CreatedAt: now},
	}
	snap.Settings.DarkMode = true
	snap.Settings.UserName = "sam"
	return snap
}

func TestGatewayRoundTrip(t *testing.T) {
	gw, _ := newTestGateway(t)

	want := sampleSnapshot()
	if err := gw.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := gw.Load()

	if len(got.Tasks) != 2 || got.Tasks[0].ID != "t1" || got.Tasks[1].Title != "Review PRs" {
		t.Errorf("tasks round trip: %+v", got.Tasks)
	}
	if got.Tasks[1].CompletedAt == nil || !got.Tasks[1].CompletedAt.Equal(*want.Tasks[1].CompletedAt) {
		t.Errorf("completedAt round trip: %+v", got.Tasks[1].CompletedAt)
	}
	if len(got.Sessions) != 1 {
		t.Fatalf("sessions round trip: %+v", got.Sessions)
	}
	s := got.Sessions[0]
	if s.EnergyScore == nil || *s.EnergyScore != 4 || s.EnergyTag == nil || *s.EnergyTag != models.EnergyEnergized {
		t.Errorf("energy fields round trip: %+v", s)
	}
	if len(got.WeeklyGoals) != 1 || got.WeeklyGoals[0].WeekStartDate != "2024-06-10" {
		t.Errorf("weekly goals round trip: %+v", got.WeeklyGoals)
	}
	if len(got.WeeklyReflections) != 1 || got.WeeklyReflections[0].FocusMinutesAuto != 150 {
		t.Errorf("reflections round trip: %+v", got.WeeklyReflections)
	}
	if len(got.YearGoals) != 1 || got.YearGoals[0].Progress != 40 {
		t.Errorf("year goals round trip: %+v", got.YearGoals)
	}
	if !got.Settings.DarkMode || got.Settings.UserName != "sam" {
		t.Errorf("settings round trip: %+v", got.Settings)
	}
	if got.Settings.DefaultPomodoroMinutes != constants.DefaultPomodoroMinutes {
		t.Errorf("settings defaults lost: %+v", got.Settings)
	}
}

func TestGatewayLoadEmptyStore(t *testing.T) {
	gw, _ := newTestGateway(t)

	got := gw.Load()
	if len(got.Tasks) != 0 || len(got.Sessions) != 0 || len(got.WeeklyGoals) != 0 ||
		len(got.WeeklyReflections) != 0 || len(got.YearGoals) != 0 {
		t.Errorf("first-run load should be empty: %+v", got)
	}
	if got.Settings != models.DefaultSettings() {
		t.Errorf("first-run settings should be defaults: %+v", got.Settings)
	}
}

func TestGatewayCorruptKeyFallsBack(t *testing.T) {
	gw, kv := newTestGateway(t)

	if err := gw.Save(sampleSnapshot()); err != nil {
		t.Fatal(err)
	}

	// Corrupt one key; the others must still load.
	if err := kv.Set(constants.KeySessions, []byte(`{{not json`)); err != nil {
		t.Fatal(err)
	}

	got := gw.Load()
	if len(got.Sessions) != 0 {
		t.Errorf("corrupt sessions should fall back to empty, got %+v", got.Sessions)
	}
	if len(got.Tasks) != 2 {
		t.Errorf("healthy collections should survive a corrupt sibling: %+v", got.Tasks)
	}
}

func TestGatewayTypeMismatchFallsBack(t *testing.T) {
	gw, kv := newTestGateway(t)

	if err := gw.Save(sampleSnapshot()); err != nil {
		t.Fatal(err)
	}

	// Valid JSON that fails mid-decode: the first element is fine, the
	// second has a number where a string id belongs. Nothing from the key
	// may survive, not even the records decoded before the failure.
	if err := kv.Set(constants.KeyTasks, []byte(`[{"id":"a","title":"kept"},{"id":5}]`)); err != nil {
		t.Fatal(err)
	}

	got := gw.Load()
	if len(got.Tasks) != 0 {
		t.Errorf("type-mismatched tasks should fall back to empty, got %+v", got.Tasks)
	}
	if len(got.Sessions) != 1 {
		t.Errorf("healthy collections should survive: %+v", got.Sessions)
	}
}

func TestGatewayCorruptSettingsFallsBack(t *testing.T) {
	gw, kv := newTestGateway(t)

	if err := kv.Set(constants.KeySettings, []byte(`"not an object"`)); err != nil {
		t.Fatal(err)
	}

	got := gw.Load()
	if got.Settings != models.DefaultSettings() {
		t.Errorf("corrupt settings should fall back to defaults: %+v", got.Settings)
	}
}

func TestGatewayClear(t *testing.T) {
	gw, kv := newTestGateway(t)

	if err := gw.Save(sampleSnapshot()); err != nil {
		t.Fatal(err)
	}
	if err := gw.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	for _, key := range constants.StorageKeys {
		data, err := kv.Get(key)
		if err != nil {
			t.Fatal(err)
		}
		if data != nil {
			t.Errorf("key %q still present after clear", key)
		}
	}

	// Clear is idempotent.
	if err := gw.Clear(); err != nil {
		t.Errorf("second clear: %v", err)
	}
}

func TestGatewaySaveWritesEmptyArrays(t *testing.T) {
	gw, kv := newTestGateway(t)

	if err := gw.Save(models.NewSnapshot()); err != nil {
		t.Fatal(err)
	}

	data, err := kv.Get(constants.KeyTasks)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("nil collection should persist as [], got %q", data)
	}
}

func TestGatewayOverSQLite(t *testing.T) {
	kv := newTestSQLiteKV(t)
	gw := NewGateway(kv)

	want := sampleSnapshot()
	if err := gw.Save(want); err != nil {
		t.Fatal(err)
	}
	got := gw.Load()
	if len(got.Tasks) != 2 || len(got.Sessions) != 1 {
		t.Errorf("sqlite round trip: %d tasks, %d sessions", len(got.Tasks), len(got.Sessions))
	}
}
