// Package store holds the in-memory application state and is the sole
// mutation path for it. Every mutation is a pure transition: it derives a
// fresh snapshot from the current one, commits it, and schedules a
// best-effort background save of the full snapshot. In-memory state is
// always immediately consistent regardless of persistence latency.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Donne-shi/daily-planner/internal/dateutil"
	"github.com/Donne-shi/daily-planner/internal/logger"
	"github.com/Donne-shi/daily-planner/internal/models"
	"github.com/Donne-shi/daily-planner/internal/storage"
)

// Store is the state container. Construct it with New, call Load once before
// first use, and Flush before shutdown so scheduled saves drain.
//
// Mutations referencing an unknown id are silent no-ops: the UI treats a
// stale id as already-handled rather than an error.
type Store struct {
	gw *storage.Gateway

	mu     sync.Mutex
	snap   models.Snapshot
	loaded bool
	seq    uint64

	saves     sync.WaitGroup
	persistMu sync.Mutex
	persisted uint64 // highest seq written, guarded by persistMu

	now func() time.Time
}

func New(gw *storage.Gateway) *Store {
	return &Store{gw: gw, snap: models.NewSnapshot(), now: time.Now}
}

// Load populates the state from storage. It runs exactly once; repeated
// calls are no-ops. A failed or partial read degrades to defaults inside the
// gateway, so Load never fails.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	s.snap = s.gw.Load()
	s.loaded = true
}

// Loaded reports whether Load has completed, gating first reads.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Flush blocks until every scheduled save has finished.
func (s *Store) Flush() {
	s.saves.Wait()
}

// commit installs the next snapshot and schedules a full resave. Saves run
// detached and never block mutations; failures are logged and dropped, the
// next save reconciles storage. Each save carries the commit's sequence
// number and is skipped once a newer state has landed, so rapid mutations
// cannot leave storage on a stale snapshot.
func (s *Store) commit(next models.Snapshot) {
	s.snap = next
	s.seq++
	s.schedule(s.seq, next, false)
}

func (s *Store) schedule(seq uint64, snap models.Snapshot, wipe bool) {
	s.saves.Add(1)
	go func() {
		defer s.saves.Done()
		s.persistMu.Lock()
		defer s.persistMu.Unlock()
		if seq < s.persisted {
			return
		}
		s.persisted = seq

		var err error
		if wipe {
			err = s.gw.Clear()
		} else {
			err = s.gw.Save(snap)
		}
		if err != nil {
			logger.Warn("state save failed", "error", err)
		}
	}()
}

func newID() string {
	return uuid.NewString()
}

// AddTask creates a task with a fresh id and createdAt. An empty date
// defaults to today.
func (s *Store) AddTask(title string, top3 bool, date string) models.Task {
	if date == "" {
		date = dateutil.Today()
	}
	task := models.Task{
		ID:        newID(),
		Title:     title,
		IsTop3:    top3,
		CreatedAt: s.now(),
		Date:      date,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snap
	next.Tasks = append(copyOf(s.snap.Tasks), task)
	s.commit(next)
	return task
}

// ToggleTask flips completion. Transitioning to complete stamps CompletedAt;
// toggling back clears it.
func (s *Store) ToggleTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := copyOf(s.snap.Tasks)
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].IsCompleted = !tasks[i].IsCompleted
		if tasks[i].IsCompleted {
			at := s.now()
			tasks[i].CompletedAt = &at
		} else {
			tasks[i].CompletedAt = nil
		}
		next := s.snap
		next.Tasks = tasks
		s.commit(next)
		return
	}
}

func (s *Store) DeleteTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, removed := removeByID(s.snap.Tasks, id, func(t models.Task) string { return t.ID })
	if !removed {
		return
	}
	next := s.snap
	next.Tasks = tasks
	s.commit(next)
}

// AddSession appends a completed focus session. Sessions are append-only;
// nothing else in the container ever touches them. An empty date defaults to
// the session's local start day, and a zero duration is derived from the
// start/end pair.
func (s *Store) AddSession(session models.FocusSession) models.FocusSession {
	session.ID = newID()
	if session.Date == "" {
		session.Date = dateutil.FormatDay(session.StartAt.Local())
	}
	if session.DurationMinutes == 0 {
		session.DurationMinutes = int(session.EndAt.Sub(session.StartAt).Minutes())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snap
	next.Sessions = append(copyOf(s.snap.Sessions), session)
	s.commit(next)
	return session
}

// AddWeeklyGoal creates a goal for the given week. The week key is
// normalized to its Monday; empty defaults to the current week.
func (s *Store) AddWeeklyGoal(title, notes, week string) models.WeeklyGoal {
	goal := models.WeeklyGoal{
		ID:            newID(),
		Title:         title,
		Notes:         notes,
		CreatedAt:     s.now(),
		WeekStartDate: normalizeWeek(week),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snap
	next.WeeklyGoals = append(copyOf(s.snap.WeeklyGoals), goal)
	s.commit(next)
	return goal
}

func (s *Store) ToggleWeeklyGoal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := copyOf(s.snap.WeeklyGoals)
	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		goals[i].IsCompleted = !goals[i].IsCompleted
		next := s.snap
		next.WeeklyGoals = goals
		s.commit(next)
		return
	}
}

func (s *Store) DeleteWeeklyGoal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals, removed := removeByID(s.snap.WeeklyGoals, id, func(g models.WeeklyGoal) string { return g.ID })
	if !removed {
		return
	}
	next := s.snap
	next.WeeklyGoals = goals
	s.commit(next)
}

// SaveWeeklyReflection upserts by week: an existing reflection for the
// draft's week is updated in place (id and createdAt preserved), otherwise a
// new one is created. List fields are filtered of empty strings and
// FocusMinutesAuto is recomputed from the week's completed sessions at save
// time.
func (s *Store) SaveWeeklyReflection(draft models.ReflectionDraft) models.WeeklyReflection {
	week := normalizeWeek(draft.WeekStartDate)

	s.mu.Lock()
	defer s.mu.Unlock()

	focus := weekFocusMinutes(s.snap.Sessions, week)
	reflections := copyOf(s.snap.WeeklyReflections)

	idx := -1
	for i := range reflections {
		if reflections[i].WeekStartDate == week {
			idx = i
			break
		}
	}

	var refl models.WeeklyReflection
	if idx >= 0 {
		refl = reflections[idx]
	} else {
		refl = models.WeeklyReflection{
			ID:            newID(),
			WeekStartDate: week,
			CreatedAt:     s.now(),
		}
	}
	refl.FocusMinutesAuto = focus
	refl.Top3Achievements = filterEmpty(draft.Top3Achievements)
	refl.Gratitude3 = filterEmpty(draft.Gratitude3)
	refl.Distractions = filterEmpty(draft.Distractions)

	if idx >= 0 {
		reflections[idx] = refl
	} else {
		reflections = append(reflections, refl)
	}

	next := s.snap
	next.WeeklyReflections = reflections
	s.commit(next)
	return refl
}

// AddYearGoal creates a year goal with progress clamped to 0-100.
func (s *Store) AddYearGoal(title, category, notes string, progress int) models.YearGoal {
	goal := models.YearGoal{
		ID:        newID(),
		Title:     title,
		Category:  category,
		Notes:     notes,
		Progress:  models.ClampProgress(progress),
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snap
	next.YearGoals = append(copyOf(s.snap.YearGoals), goal)
	s.commit(next)
	return goal
}

// UpdateYearGoal replaces the editable fields of the goal matching
// updated.ID. ID and CreatedAt are immutable and kept from the stored
// record.
func (s *Store) UpdateYearGoal(updated models.YearGoal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := copyOf(s.snap.YearGoals)
	for i := range goals {
		if goals[i].ID != updated.ID {
			continue
		}
		updated.CreatedAt = goals[i].CreatedAt
		updated.Progress = models.ClampProgress(updated.Progress)
		goals[i] = updated
		next := s.snap
		next.YearGoals = goals
		s.commit(next)
		return
	}
}

// ToggleYearGoal flips completion. Marking complete forces progress to 100;
// toggling back leaves progress where it is.
func (s *Store) ToggleYearGoal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := copyOf(s.snap.YearGoals)
	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		goals[i].IsCompleted = !goals[i].IsCompleted
		if goals[i].IsCompleted {
			goals[i].Progress = 100
		}
		next := s.snap
		next.YearGoals = goals
		s.commit(next)
		return
	}
}

func (s *Store) DeleteYearGoal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals, removed := removeByID(s.snap.YearGoals, id, func(g models.YearGoal) string { return g.ID })
	if !removed {
		return
	}
	next := s.snap
	next.YearGoals = goals
	s.commit(next)
}

// UpdateSettings shallow-merges the patch into the singleton settings
// record and returns the result. Absent fields are never reset.
func (s *Store) UpdateSettings(patch models.SettingsPatch) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap
	next.Settings = patch.Apply(s.snap.Settings)
	s.commit(next)
	return next.Settings
}

// ClearAll resets every collection to empty and settings to defaults, and
// removes every persisted key. The in-memory reset happens immediately; the
// storage wipe runs like any other save, detached and best-effort.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = models.NewSnapshot()
	s.seq++
	s.schedule(s.seq, s.snap, true)
}

// normalizeWeek maps any day key to its Monday; empty or invalid input
// falls back to the current week.
func normalizeWeek(week string) string {
	if week == "" {
		return dateutil.CurrentWeekStart()
	}
	ws, err := dateutil.WeekStart(week)
	if err != nil {
		return dateutil.CurrentWeekStart()
	}
	return ws
}

// weekFocusMinutes sums completed session minutes over the half-open
// interval [week, week+7d). Day keys compare lexicographically.
func weekFocusMinutes(sessions []models.FocusSession, week string) int {
	end, err := dateutil.AddDays(week, 7)
	if err != nil {
		return 0
	}
	total := 0
	for _, sess := range sessions {
		if sess.IsCompleted && sess.Date >= week && sess.Date < end {
			total += sess.DurationMinutes
		}
	}
	return total
}

func filterEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}

func copyOf[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	out := make([]T, 0, len(items))
	removed := false
	for _, item := range items {
		if idOf(item) == id {
			removed = true
			continue
		}
		out = append(out, item)
	}
	return out, removed
}
