package cli

import (
	"fmt"

	"github.com/Donne-shi/daily-planner/internal/dateutil"
	"github.com/Donne-shi/daily-planner/internal/validation"
)

type TaskAddCmd struct {
	Title string `arg:"" help:"Task title."`
	Top3  bool   `help:"Mark as one of the day's top three."`
	Date  string `short:"d" help:"Day bucket (YYYY-MM-DD). Defaults to today."`
}

func (c *TaskAddCmd) Validate() error {
	if err := validation.Title(c.Title); err != nil {
		return err
	}
	return validation.Day(c.Date)
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	task := ctx.Store.AddTask(c.Title, c.Top3, c.Date)
	fmt.Printf("Added task %q for %s (ID: %s)\n", task.Title, task.Date, task.ID)
	return nil
}

type TaskListCmd struct {
	Date    string `short:"d" help:"Day to list (YYYY-MM-DD). Defaults to today."`
	All     bool   `help:"List every task regardless of day."`
	ShowIDs bool   `help:"Show task IDs." name:"show-ids"`
}

func (c *TaskListCmd) Validate() error {
	return validation.Day(c.Date)
}

func (c *TaskListCmd) Run(ctx *Context) error {
	if c.All {
		tasks := ctx.Store.Snapshot().Tasks
		if len(tasks) == 0 {
			fmt.Println("No tasks found")
			return nil
		}
		fmt.Println("Tasks:")
		for _, t := range tasks {
			fmt.Printf("  %s", t.Date)
			printTask(t, c.ShowIDs)
		}
		return nil
	}

	date := c.Date
	if date == "" {
		date = dateutil.Today()
	}
	tasks := ctx.Store.TasksByDate(date)
	if len(tasks) == 0 {
		fmt.Printf("No tasks for %s\n", date)
		return nil
	}
	fmt.Printf("Tasks for %s:\n", date)
	for _, t := range tasks {
		printTask(t, c.ShowIDs)
	}
	return nil
}

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task ID to toggle."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	// The container silently ignores unknown ids; check here so the user
	// gets feedback on typos.
	if !taskExists(ctx, c.ID) {
		return fmt.Errorf("task not found: %s", c.ID)
	}
	ctx.Store.ToggleTask(c.ID)
	for _, t := range ctx.Store.Snapshot().Tasks {
		if t.ID == c.ID {
			if t.IsCompleted {
				fmt.Printf("Completed %q\n", t.Title)
			} else {
				fmt.Printf("Reopened %q\n", t.Title)
			}
		}
	}
	return nil
}

type TaskRmCmd struct {
	ID string `arg:"" help:"Task ID to delete."`
}

func (c *TaskRmCmd) Run(ctx *Context) error {
	if !taskExists(ctx, c.ID) {
		return fmt.Errorf("task not found: %s", c.ID)
	}
	ctx.Store.DeleteTask(c.ID)
	fmt.Printf("Deleted task %s\n", c.ID)
	return nil
}

func taskExists(ctx *Context, id string) bool {
	for _, t := range ctx.Store.Snapshot().Tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}
