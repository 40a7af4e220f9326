package cli

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/Donne-shi/daily-planner/internal/dateutil"
)

var (
	statsTitleStyle = lipgloss.NewStyle().Bold(true)
	barStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	emptyBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type StatsCmd struct {
	Weeks int `short:"w" help:"Number of weeks to chart, ending with the current one." default:"1"`
}

func (c *StatsCmd) Validate() error {
	if c.Weeks < 1 {
		return fmt.Errorf("weeks must be at least 1")
	}
	return nil
}

func (c *StatsCmd) Run(ctx *Context) error {
	today := dateutil.Today()

	tasks := ctx.Store.TodayTasks()
	done := 0
	for _, t := range tasks {
		if t.IsCompleted {
			done++
		}
	}

	sessions := ctx.Store.TodaySessions()
	fmt.Println(statsTitleStyle.Render("Today (" + today + ")"))
	fmt.Printf("  Tasks: %d/%d done\n", done, len(tasks))
	fmt.Printf("  Focus: %s across %d sessions\n",
		formatMinutes(ctx.Store.FocusMinutesByDate(today)), len(sessions))

	chart, err := c.buildChart(ctx)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(statsTitleStyle.Render("Focus minutes per day"))
	fmt.Println(chart.View())
	return nil
}

// buildChart renders one bar per day over the requested span of weeks, the
// current week last.
func (c *StatsCmd) buildChart(ctx *Context) (barchart.Model, error) {
	days := c.Weeks * 7
	start, err := dateutil.AddDays(dateutil.CurrentWeekStart(), -7*(c.Weeks-1))
	if err != nil {
		return barchart.Model{}, err
	}

	width := days*9 + 2
	if width > 120 {
		width = 120
	}
	chart := barchart.New(width, 12)

	for i := 0; i < days; i++ {
		day, err := dateutil.AddDays(start, i)
		if err != nil {
			return barchart.Model{}, err
		}
		minutes := ctx.Store.FocusMinutesByDate(day)

		style := barStyle
		if minutes == 0 {
			style = emptyBarStyle
		}
		label := day[5:] // MM-DD
		chart.Push(barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{
				{Name: "focus", Value: float64(minutes), Style: style},
			},
		})
	}

	chart.Draw()
	return chart, nil
}
