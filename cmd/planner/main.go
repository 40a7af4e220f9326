package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Donne-shi/daily-planner/internal/cli"
	"github.com/Donne-shi/daily-planner/internal/constants"
	"github.com/Donne-shi/daily-planner/internal/logger"
	"github.com/Donne-shi/daily-planner/internal/storage"
	"github.com/Donne-shi/daily-planner/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data path: a directory for JSON storage, or a path ending in .db for SQLite. Defaults to the per-user config directory." type:"string"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Task struct {
		Add  cli.TaskAddCmd  `cmd:"" help:"Add a task."`
		List cli.TaskListCmd `cmd:"" help:"List tasks." default:"1"`
		Done cli.TaskDoneCmd `cmd:"" help:"Toggle a task's completion."`
		Rm   cli.TaskRmCmd   `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage day tasks."`
	Focus struct {
		Start cli.FocusStartCmd `cmd:"" help:"Run a focus countdown and record the session." default:"1"`
		Log   cli.FocusLogCmd   `cmd:"" help:"Record a completed session manually."`
		List  cli.FocusListCmd  `cmd:"" help:"List focus sessions."`
	} `cmd:"" help:"Focus (pomodoro) sessions."`
	Week struct {
		Goal struct {
			Add  cli.WeekGoalAddCmd  `cmd:"" help:"Add a weekly goal."`
			Done cli.WeekGoalDoneCmd `cmd:"" help:"Toggle a weekly goal."`
			Rm   cli.WeekGoalRmCmd   `cmd:"" help:"Delete a weekly goal."`
		} `cmd:"" help:"Manage weekly goals."`
		Show    cli.WeekShowCmd    `cmd:"" help:"Show a week's goals, reflection, and focus total." default:"1"`
		Reflect cli.WeekReflectCmd `cmd:"" help:"Write or update the week's reflection."`
	} `cmd:"" help:"Weekly goals and reflections."`
	Year struct {
		Add  cli.YearAddCmd  `cmd:"" help:"Add a year goal."`
		List cli.YearListCmd `cmd:"" help:"List year goals." default:"1"`
		Set  cli.YearSetCmd  `cmd:"" help:"Update a year goal."`
		Done cli.YearDoneCmd `cmd:"" help:"Toggle a year goal."`
		Rm   cli.YearRmCmd   `cmd:"" help:"Delete a year goal."`
	} `cmd:"" help:"Year goals."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show focus statistics."`
	Settings cli.SettingsCmd `cmd:"" help:"View or update settings."`
	Export   cli.ExportCmd   `cmd:"" help:"Export focus sessions to CSV or JSON."`
	Reset    cli.ResetCmd    `cmd:"" help:"Wipe all data."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal productivity tracker: tasks, focus sessions, weekly and year goals"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	dataPath := CLI.Data
	if dataPath == "" {
		var err error
		dataPath, err = storage.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logDir := dataPath
	if strings.HasSuffix(dataPath, ".db") {
		logDir = filepath.Dir(dataPath)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	kv, err := storage.Open(dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	st := store.New(storage.NewGateway(kv))
	st.Load()
	defer st.Flush()

	if err := ctx.Run(&cli.Context{Store: st}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		st.Flush()
		kv.Close()
		os.Exit(1)
	}
}
