package models

import "github.com/Donne-shi/daily-planner/internal/constants"

// Settings is the singleton preferences record. It is merged field by field
// on update, never fully replaced.
type Settings struct {
	DefaultPomodoroMinutes int    `json:"defaultPomodoroMinutes"`
	MaxPomodoroMinutes     int    `json:"maxPomodoroMinutes"` // >= DefaultPomodoroMinutes
	VoiceEnabled           bool   `json:"voiceEnabled"`
	VibrationEnabled       bool   `json:"vibrationEnabled"`
	DarkMode               bool   `json:"darkMode"`
	Mission                string `json:"mission,omitempty"`
	Vision                 string `json:"vision,omitempty"`
	UserName               string `json:"userName,omitempty"`
	UserAvatar             string `json:"userAvatar,omitempty"`
}

// DefaultSettings returns the settings used at first run and after a reset.
func DefaultSettings() Settings {
	return Settings{
		DefaultPomodoroMinutes: constants.DefaultPomodoroMinutes,
		MaxPomodoroMinutes:     constants.DefaultMaxMinutes,
		VoiceEnabled:           constants.DefaultVoiceEnabled,
		VibrationEnabled:       constants.DefaultVibration,
	}
}

// SettingsPatch is a partial settings update. Nil fields are left untouched
// by Apply, so a patch never resets values it does not mention.
type SettingsPatch struct {
	DefaultPomodoroMinutes *int
	MaxPomodoroMinutes     *int
	VoiceEnabled           *bool
	VibrationEnabled       *bool
	DarkMode               *bool
	Mission                *string
	Vision                 *string
	UserName               *string
	UserAvatar             *string
}

// Apply shallow-merges the patch into s and returns the result.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.DefaultPomodoroMinutes != nil {
		s.DefaultPomodoroMinutes = *p.DefaultPomodoroMinutes
	}
	if p.MaxPomodoroMinutes != nil {
		s.MaxPomodoroMinutes = *p.MaxPomodoroMinutes
	}
	if p.VoiceEnabled != nil {
		s.VoiceEnabled = *p.VoiceEnabled
	}
	if p.VibrationEnabled != nil {
		s.VibrationEnabled = *p.VibrationEnabled
	}
	if p.DarkMode != nil {
		s.DarkMode = *p.DarkMode
	}
	if p.Mission != nil {
		s.Mission = *p.Mission
	}
	if p.Vision != nil {
		s.Vision = *p.Vision
	}
	if p.UserName != nil {
		s.UserName = *p.UserName
	}
	if p.UserAvatar != nil {
		s.UserAvatar = *p.UserAvatar
	}
	return s
}

// Empty reports whether the patch changes nothing.
func (p SettingsPatch) Empty() bool {
	return p.DefaultPomodoroMinutes == nil &&
		p.MaxPomodoroMinutes == nil &&
		p.VoiceEnabled == nil &&
		p.VibrationEnabled == nil &&
		p.DarkMode == nil &&
		p.Mission == nil &&
		p.Vision == nil &&
		p.UserName == nil &&
		p.UserAvatar == nil
}
