package store

import (
	"github.com/Donne-shi/daily-planner/internal/dateutil"
	"github.com/Donne-shi/daily-planner/internal/models"
)

// Read-only views over the current snapshot. Every query recomputes from
// scratch and returns fresh records — pointer and slice fields included —
// so callers can hold or scribble on results without touching the store.

// Snapshot returns a copy of the full current state.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snap
	snap.Tasks = cloneSlice(s.snap.Tasks, cloneTask)
	snap.Sessions = cloneSlice(s.snap.Sessions, cloneSession)
	snap.WeeklyGoals = copyOf(s.snap.WeeklyGoals)
	snap.WeeklyReflections = cloneSlice(s.snap.WeeklyReflections, cloneReflection)
	snap.YearGoals = copyOf(s.snap.YearGoals)
	return snap
}

// Settings returns the current settings record.
func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Settings
}

// TodayTasks returns tasks bucketed on today's date.
func (s *Store) TodayTasks() []models.Task {
	return s.TasksByDate(dateutil.Today())
}

// TasksByDate returns tasks whose day bucket equals date.
func (s *Store) TasksByDate(date string) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Task
	for _, t := range s.snap.Tasks {
		if t.Date == date {
			out = append(out, cloneTask(t))
		}
	}
	return out
}

// TodaySessions returns today's completed sessions.
func (s *Store) TodaySessions() []models.FocusSession {
	return s.SessionsByDate(dateutil.Today())
}

// SessionsByDate returns the completed sessions bucketed on date.
func (s *Store) SessionsByDate(date string) []models.FocusSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.FocusSession
	for _, sess := range s.snap.Sessions {
		if sess.IsCompleted && sess.Date == date {
			out = append(out, cloneSession(sess))
		}
	}
	return out
}

// WeekSessions returns completed sessions whose date falls in the half-open
// interval [weekStart, weekStart+7d).
func (s *Store) WeekSessions(weekStart string) []models.FocusSession {
	end, err := dateutil.AddDays(weekStart, 7)
	if err != nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.FocusSession
	for _, sess := range s.snap.Sessions {
		if sess.IsCompleted && sess.Date >= weekStart && sess.Date < end {
			out = append(out, cloneSession(sess))
		}
	}
	return out
}

// CurrentWeekGoals returns the goals for the current week.
func (s *Store) CurrentWeekGoals() []models.WeeklyGoal {
	return s.GoalsByWeek(dateutil.CurrentWeekStart())
}

// GoalsByWeek returns the weekly goals keyed on weekStart.
func (s *Store) GoalsByWeek(weekStart string) []models.WeeklyGoal {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.WeeklyGoal
	for _, g := range s.snap.WeeklyGoals {
		if g.WeekStartDate == weekStart {
			out = append(out, g)
		}
	}
	return out
}

// CurrentWeekReflection returns the current week's reflection, if any.
func (s *Store) CurrentWeekReflection() (models.WeeklyReflection, bool) {
	return s.ReflectionByWeek(dateutil.CurrentWeekStart())
}

// ReflectionByWeek returns the single reflection keyed on weekStart.
func (s *Store) ReflectionByWeek(weekStart string) (models.WeeklyReflection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.snap.WeeklyReflections {
		if r.WeekStartDate == weekStart {
			return cloneReflection(r), true
		}
	}
	return models.WeeklyReflection{}, false
}

// YearGoals returns all year goals.
func (s *Store) YearGoals() []models.YearGoal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyOf(s.snap.YearGoals)
}

// FocusMinutesByDate sums completed session minutes for one day.
func (s *Store) FocusMinutesByDate(date string) int {
	total := 0
	for _, sess := range s.SessionsByDate(date) {
		total += sess.DurationMinutes
	}
	return total
}

// WeekFocusMinutes sums completed session minutes over [weekStart,
// weekStart+7d).
func (s *Store) WeekFocusMinutes(weekStart string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return weekFocusMinutes(s.snap.Sessions, weekStart)
}

func cloneSlice[T any](items []T, clone func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = clone(item)
	}
	return out
}

func cloneTask(t models.Task) models.Task {
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		t.CompletedAt = &at
	}
	return t
}

func cloneSession(sess models.FocusSession) models.FocusSession {
	if sess.EnergyScore != nil {
		n := *sess.EnergyScore
		sess.EnergyScore = &n
	}
	if sess.EnergyTag != nil {
		tag := *sess.EnergyTag
		sess.EnergyTag = &tag
	}
	return sess
}

func cloneReflection(r models.WeeklyReflection) models.WeeklyReflection {
	r.Top3Achievements = copyOf(r.Top3Achievements)
	r.Gratitude3 = copyOf(r.Gratitude3)
	r.Distractions = copyOf(r.Distractions)
	return r
}
