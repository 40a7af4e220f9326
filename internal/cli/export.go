package cli

import (
	"fmt"

	"github.com/Donne-shi/daily-planner/internal/dateutil"
	"github.com/Donne-shi/daily-planner/internal/export"
	"github.com/Donne-shi/daily-planner/internal/models"
	"github.com/Donne-shi/daily-planner/internal/validation"
)

type ExportCmd struct {
	Format string `short:"f" help:"Output format (csv|json)." enum:"csv,json" default:"csv"`
	Out    string `short:"o" required:"" help:"Output file path."`
	Week   string `short:"w" help:"Export one week only (any day of it, YYYY-MM-DD)."`
}

func (c *ExportCmd) Validate() error {
	return validation.Day(c.Week)
}

func (c *ExportCmd) Run(ctx *Context) error {
	var sessions []models.FocusSession
	if c.Week != "" {
		week, err := dateutil.WeekStart(c.Week)
		if err != nil {
			return err
		}
		sessions = ctx.Store.WeekSessions(week)
	} else {
		for _, s := range ctx.Store.Snapshot().Sessions {
			if s.IsCompleted {
				sessions = append(sessions, s)
			}
		}
	}

	var err error
	switch c.Format {
	case "json":
		err = export.ToJSON(sessions, c.Out)
	default:
		err = export.ToCSV(sessions, c.Out)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d sessions to %s\n", len(sessions), c.Out)
	return nil
}
