package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/Donne-shi/daily-planner/internal/dateutil"
	"github.com/Donne-shi/daily-planner/internal/models"
	"github.com/Donne-shi/daily-planner/internal/validation"
)

type WeekGoalAddCmd struct {
	Title string `arg:"" help:"Goal title."`
	Notes string `short:"n" help:"Optional notes."`
	Week  string `short:"w" help:"Any day of the target week (YYYY-MM-DD). Defaults to this week."`
}

func (c *WeekGoalAddCmd) Validate() error {
	if err := validation.Title(c.Title); err != nil {
		return err
	}
	return validation.Day(c.Week)
}

func (c *WeekGoalAddCmd) Run(ctx *Context) error {
	goal := ctx.Store.AddWeeklyGoal(c.Title, c.Notes, c.Week)
	fmt.Printf("Added goal %q for week of %s (ID: %s)\n", goal.Title, goal.WeekStartDate, goal.ID)
	return nil
}

type WeekGoalDoneCmd struct {
	ID string `arg:"" help:"Goal ID to toggle."`
}

func (c *WeekGoalDoneCmd) Run(ctx *Context) error {
	if !weeklyGoalExists(ctx, c.ID) {
		return fmt.Errorf("weekly goal not found: %s", c.ID)
	}
	ctx.Store.ToggleWeeklyGoal(c.ID)
	fmt.Printf("Toggled goal %s\n", c.ID)
	return nil
}

type WeekGoalRmCmd struct {
	ID string `arg:"" help:"Goal ID to delete."`
}

func (c *WeekGoalRmCmd) Run(ctx *Context) error {
	if !weeklyGoalExists(ctx, c.ID) {
		return fmt.Errorf("weekly goal not found: %s", c.ID)
	}
	ctx.Store.DeleteWeeklyGoal(c.ID)
	fmt.Printf("Deleted goal %s\n", c.ID)
	return nil
}

func weeklyGoalExists(ctx *Context, id string) bool {
	for _, g := range ctx.Store.Snapshot().WeeklyGoals {
		if g.ID == id {
			return true
		}
	}
	return false
}

type WeekShowCmd struct {
	Week    string `short:"w" help:"Any day of the week to show (YYYY-MM-DD). Defaults to this week."`
	ShowIDs bool   `help:"Show goal IDs." name:"show-ids"`
}

func (c *WeekShowCmd) Validate() error {
	return validation.Day(c.Week)
}

func (c *WeekShowCmd) Run(ctx *Context) error {
	week := dateutil.CurrentWeekStart()
	if c.Week != "" {
		var err error
		week, err = dateutil.WeekStart(c.Week)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Week of %s\n", week)
	fmt.Printf("Focus: %s\n", formatMinutes(ctx.Store.WeekFocusMinutes(week)))

	goals := ctx.Store.GoalsByWeek(week)
	if len(goals) == 0 {
		fmt.Println("\nNo goals for this week")
	} else {
		fmt.Println("\nGoals:")
		for _, g := range goals {
			idStr := ""
			if c.ShowIDs {
				idStr = fmt.Sprintf(" (ID: %s)", g.ID)
			}
			fmt.Printf("  %s %s%s\n", checkbox(g.IsCompleted), g.Title, idStr)
			if g.Notes != "" {
				fmt.Printf("      %s\n", g.Notes)
			}
		}
	}

	if refl, ok := ctx.Store.ReflectionByWeek(week); ok {
		fmt.Println("\nReflection:")
		printList("Achievements", refl.Top3Achievements)
		printList("Gratitude", refl.Gratitude3)
		printList("Distractions", refl.Distractions)
		fmt.Printf("  Focus at save time: %s\n", formatMinutes(refl.FocusMinutesAuto))
	}
	return nil
}

func printList(label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("  %s:\n", label)
	for _, item := range items {
		fmt.Printf("    - %s\n", item)
	}
}

type WeekReflectCmd struct {
	Week         string   `short:"w" help:"Any day of the week to reflect on (YYYY-MM-DD). Defaults to this week."`
	Achievements []string `help:"Achievement (repeatable). Skips the interactive form."`
	Gratitude    []string `help:"Gratitude entry (repeatable). Skips the interactive form."`
	Distractions []string `help:"Distraction (repeatable). Skips the interactive form."`
}

func (c *WeekReflectCmd) Validate() error {
	return validation.Day(c.Week)
}

func (c *WeekReflectCmd) Run(ctx *Context) error {
	draft := models.ReflectionDraft{
		WeekStartDate:    c.Week,
		Top3Achievements: c.Achievements,
		Gratitude3:       c.Gratitude,
		Distractions:     c.Distractions,
	}

	interactive := len(c.Achievements) == 0 && len(c.Gratitude) == 0 && len(c.Distractions) == 0
	if interactive {
		var achievements, gratitude, distractions string
		form := huh.NewForm(huh.NewGroup(
			huh.NewText().Title("Top 3 achievements").
				Description("One per line.").Value(&achievements),
			huh.NewText().Title("3 things you're grateful for").
				Description("One per line.").Value(&gratitude),
			huh.NewText().Title("What distracted you?").
				Description("One per line.").Value(&distractions),
		))
		if err := form.Run(); err != nil {
			return err
		}
		draft.Top3Achievements = splitLines(achievements)
		draft.Gratitude3 = splitLines(gratitude)
		draft.Distractions = splitLines(distractions)
	}

	refl := ctx.Store.SaveWeeklyReflection(draft)
	fmt.Printf("Saved reflection for week of %s (focus: %s)\n",
		refl.WeekStartDate, formatMinutes(refl.FocusMinutesAuto))
	return nil
}

func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, strings.TrimSpace(line))
	}
	return out
}
