package cli

import (
	"fmt"

	"github.com/Donne-shi/daily-planner/internal/models"
	"github.com/Donne-shi/daily-planner/internal/validation"
)

type YearAddCmd struct {
	Title    string `arg:"" help:"Goal title."`
	Category string `short:"c" help:"Optional category."`
	Notes    string `short:"n" help:"Optional notes."`
	Progress int    `short:"p" help:"Initial progress (0-100)." default:"0"`
}

func (c *YearAddCmd) Validate() error {
	if err := validation.Title(c.Title); err != nil {
		return err
	}
	return validation.Progress(c.Progress)
}

func (c *YearAddCmd) Run(ctx *Context) error {
	goal := ctx.Store.AddYearGoal(c.Title, c.Category, c.Notes, c.Progress)
	fmt.Printf("Added year goal %q (ID: %s)\n", goal.Title, goal.ID)
	return nil
}

type YearListCmd struct {
	ShowIDs bool `help:"Show goal IDs." name:"show-ids"`
}

func (c *YearListCmd) Run(ctx *Context) error {
	goals := ctx.Store.YearGoals()
	if len(goals) == 0 {
		fmt.Println("No year goals found")
		return nil
	}

	fmt.Println("Year goals:")
	for _, g := range goals {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", g.ID)
		}
		category := ""
		if g.Category != "" {
			category = fmt.Sprintf(" [%s]", g.Category)
		}
		fmt.Printf("  %s %s%s - %d%%%s\n", checkbox(g.IsCompleted), g.Title, category, g.Progress, idStr)
		if g.Notes != "" {
			fmt.Printf("      %s\n", g.Notes)
		}
	}
	return nil
}

type YearSetCmd struct {
	ID       string  `arg:"" help:"Goal ID to update."`
	Title    *string `help:"New title."`
	Category *string `short:"c" help:"New category."`
	Notes    *string `short:"n" help:"New notes."`
	Progress *int    `short:"p" help:"New progress (0-100)."`
}

func (c *YearSetCmd) Validate() error {
	if c.Title != nil {
		if err := validation.Title(*c.Title); err != nil {
			return err
		}
	}
	if c.Progress != nil {
		return validation.Progress(*c.Progress)
	}
	return nil
}

func (c *YearSetCmd) Run(ctx *Context) error {
	goal, ok := findYearGoal(ctx, c.ID)
	if !ok {
		return fmt.Errorf("year goal not found: %s", c.ID)
	}
	if c.Title == nil && c.Category == nil && c.Notes == nil && c.Progress == nil {
		return fmt.Errorf("nothing to update, pass --title, --category, --notes, or --progress")
	}

	if c.Title != nil {
		goal.Title = *c.Title
	}
	if c.Category != nil {
		goal.Category = *c.Category
	}
	if c.Notes != nil {
		goal.Notes = *c.Notes
	}
	if c.Progress != nil {
		goal.Progress = *c.Progress
	}

	ctx.Store.UpdateYearGoal(goal)
	fmt.Printf("Updated year goal %q (%d%%)\n", goal.Title, goal.Progress)
	return nil
}

type YearDoneCmd struct {
	ID string `arg:"" help:"Goal ID to toggle."`
}

func (c *YearDoneCmd) Run(ctx *Context) error {
	if _, ok := findYearGoal(ctx, c.ID); !ok {
		return fmt.Errorf("year goal not found: %s", c.ID)
	}
	ctx.Store.ToggleYearGoal(c.ID)
	goal, _ := findYearGoal(ctx, c.ID)
	if goal.IsCompleted {
		fmt.Printf("Completed %q\n", goal.Title)
	} else {
		fmt.Printf("Reopened %q (%d%%)\n", goal.Title, goal.Progress)
	}
	return nil
}

type YearRmCmd struct {
	ID string `arg:"" help:"Goal ID to delete."`
}

func (c *YearRmCmd) Run(ctx *Context) error {
	if _, ok := findYearGoal(ctx, c.ID); !ok {
		return fmt.Errorf("year goal not found: %s", c.ID)
	}
	ctx.Store.DeleteYearGoal(c.ID)
	fmt.Printf("Deleted year goal %s\n", c.ID)
	return nil
}

func findYearGoal(ctx *Context, id string) (models.YearGoal, bool) {
	for _, g := range ctx.Store.YearGoals() {
		if g.ID == id {
			return g, true
		}
	}
	return models.YearGoal{}, false
}
