package cli

import (
	"fmt"

	"github.com/Donne-shi/daily-planner/internal/models"
	"github.com/Donne-shi/daily-planner/internal/validation"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	PomodoroMinutes  *int    `help:"Default pomodoro length in minutes."`
	MaxMinutes       *int    `help:"Maximum pomodoro length in minutes."`
	Voice            *bool   `help:"Enable or disable voice feedback."`
	Vibration        *bool   `help:"Enable or disable vibration feedback."`
	DarkMode         *bool   `help:"Enable or disable dark mode."`
	Mission          *string `help:"Personal mission statement."`
	Vision           *string `help:"Personal vision statement."`
	UserName         *string `help:"Display name."`
	UserAvatar       *string `help:"Avatar identifier."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	settings := ctx.Store.Settings()

	if c.List {
		printSettings(settings)
		return nil
	}

	patch := models.SettingsPatch{
		DefaultPomodoroMinutes: c.PomodoroMinutes,
		MaxPomodoroMinutes:     c.MaxMinutes,
		VoiceEnabled:           c.Voice,
		VibrationEnabled:       c.Vibration,
		DarkMode:               c.DarkMode,
		Mission:                c.Mission,
		Vision:                 c.Vision,
		UserName:               c.UserName,
		UserAvatar:             c.UserAvatar,
	}

	if patch.Empty() {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}
	if err := validation.Settings(patch, settings); err != nil {
		return err
	}

	updated := ctx.Store.UpdateSettings(patch)
	fmt.Println("Settings updated.")
	printSettings(updated)
	return nil
}

func printSettings(s models.Settings) {
	fmt.Println("Current Settings:")
	fmt.Printf("  Pomodoro Minutes:  %d\n", s.DefaultPomodoroMinutes)
	fmt.Printf("  Max Minutes:       %d\n", s.MaxPomodoroMinutes)
	fmt.Printf("  Voice Enabled:     %v\n", s.VoiceEnabled)
	fmt.Printf("  Vibration Enabled: %v\n", s.VibrationEnabled)
	fmt.Printf("  Dark Mode:         %v\n", s.DarkMode)
	if s.UserName != "" {
		fmt.Printf("  User Name:         %s\n", s.UserName)
	}
	if s.UserAvatar != "" {
		fmt.Printf("  User Avatar:       %s\n", s.UserAvatar)
	}
	if s.Mission != "" {
		fmt.Printf("  Mission:           %s\n", s.Mission)
	}
	if s.Vision != "" {
		fmt.Printf("  Vision:            %s\n", s.Vision)
	}
}
