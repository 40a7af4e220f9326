package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/Donne-shi/daily-planner/internal/dateutil"
	"github.com/Donne-shi/daily-planner/internal/models"
	"github.com/Donne-shi/daily-planner/internal/timer"
	"github.com/Donne-shi/daily-planner/internal/validation"
)

type FocusStartCmd struct {
	Minutes int `short:"m" help:"Session length in minutes. Defaults to the configured pomodoro length."`
}

func (c *FocusStartCmd) Run(ctx *Context) error {
	settings := ctx.Store.Settings()
	minutes := c.Minutes
	if minutes == 0 {
		minutes = settings.DefaultPomodoroMinutes
	}
	if err := validation.Minutes(minutes, settings.MaxPomodoroMinutes); err != nil {
		return err
	}

	result, err := timer.Run(minutes)
	if err != nil {
		return err
	}
	if !result.Completed {
		fmt.Println("Session cancelled, nothing recorded.")
		return nil
	}

	score, tag, err := askEnergy()
	if err != nil {
		// The session still counts even if the energy prompt fails.
		score, tag = nil, nil
	}

	session := ctx.Store.AddSession(models.FocusSession{
		StartAt:         result.StartAt,
		EndAt:           result.EndAt,
		DurationMinutes: result.Minutes,
		IsCompleted:     true,
		EnergyScore:     score,
		EnergyTag:       tag,
	})
	fmt.Printf("Logged %dm focus session for %s\n", session.DurationMinutes, session.Date)
	return nil
}

// askEnergy prompts for the post-session energy check-in. Skipping leaves
// both fields nil.
func askEnergy() (*int, *models.EnergyTag, error) {
	options := []huh.Option[int]{huh.NewOption("skip", 0)}
	for i, tag := range models.EnergyTags {
		options = append(options, huh.NewOption(fmt.Sprintf("%d - %s", i+1, tag), i+1))
	}

	var choice int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("How was your energy?").
			Options(options...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return nil, nil, err
	}
	if choice == 0 {
		return nil, nil, nil
	}
	tag := models.EnergyTags[choice-1]
	return &choice, &tag, nil
}

type FocusLogCmd struct {
	Minutes int    `short:"m" required:"" help:"Session length in minutes."`
	Date    string `short:"d" help:"Day bucket (YYYY-MM-DD). Defaults to today."`
	Energy  *int   `help:"Energy score (1-5). Requires --tag."`
	Tag     string `help:"Energy tag (drained|tired|steady|energized|flow). Requires --energy."`
}

func (c *FocusLogCmd) Validate() error {
	if err := validation.Minutes(c.Minutes, 0); err != nil {
		return err
	}
	if err := validation.Day(c.Date); err != nil {
		return err
	}
	var tag *models.EnergyTag
	if c.Tag != "" {
		t := models.EnergyTag(c.Tag)
		tag = &t
	}
	return validation.Energy(c.Energy, tag)
}

func (c *FocusLogCmd) Run(ctx *Context) error {
	end := time.Now()
	start := end.Add(-time.Duration(c.Minutes) * time.Minute)

	var tag *models.EnergyTag
	if c.Tag != "" {
		t := models.EnergyTag(c.Tag)
		tag = &t
	}

	session := ctx.Store.AddSession(models.FocusSession{
		StartAt:         start,
		EndAt:           end,
		DurationMinutes: c.Minutes,
		Date:            c.Date,
		IsCompleted:     true,
		EnergyScore:     c.Energy,
		EnergyTag:       tag,
	})
	fmt.Printf("Logged %dm focus session for %s (ID: %s)\n",
		session.DurationMinutes, session.Date, session.ID)
	return nil
}

type FocusListCmd struct {
	Date string `short:"d" help:"Day to list (YYYY-MM-DD). Defaults to today."`
	Week string `short:"w" help:"List a whole week instead (any day of it, YYYY-MM-DD)."`
}

func (c *FocusListCmd) Validate() error {
	if err := validation.Day(c.Date); err != nil {
		return err
	}
	return validation.Day(c.Week)
}

func (c *FocusListCmd) Run(ctx *Context) error {
	var sessions []models.FocusSession
	var label string

	if c.Week != "" {
		week, err := dateutil.WeekStart(c.Week)
		if err != nil {
			return err
		}
		sessions = ctx.Store.WeekSessions(week)
		label = "week of " + week
	} else {
		date := c.Date
		if date == "" {
			date = dateutil.Today()
		}
		sessions = ctx.Store.SessionsByDate(date)
		label = date
	}

	if len(sessions) == 0 {
		fmt.Printf("No focus sessions for %s\n", label)
		return nil
	}

	total := 0
	fmt.Printf("Focus sessions for %s:\n", label)
	for _, s := range sessions {
		printSession(s)
		total += s.DurationMinutes
	}
	fmt.Printf("Total: %s across %d sessions\n", formatMinutes(total), len(sessions))
	return nil
}
