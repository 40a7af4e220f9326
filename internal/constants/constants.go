package constants

const (
	AppName = "planner"
	Version = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"
)

// Storage keys. Each collection persists under its own key; these are
// stable across versions so existing data keeps loading.
const (
	KeyTasks             = "tasks"
	KeySessions          = "sessions"
	KeyWeeklyGoals       = "weekly_goals"
	KeyWeeklyReflections = "weekly_reflections"
	KeyYearGoals         = "year_goals"
	KeySettings          = "settings"
)

// StorageKeys lists every persisted key, in save order.
var StorageKeys = []string{
	KeyTasks,
	KeySessions,
	KeyWeeklyGoals,
	KeyWeeklyReflections,
	KeyYearGoals,
	KeySettings,
}

// Default settings values
const (
	DefaultPomodoroMinutes = 25
	DefaultMaxMinutes      = 60
	DefaultVoiceEnabled    = true
	DefaultVibration       = true
)

const (
	MinEnergyScore = 1
	MaxEnergyScore = 5
)
