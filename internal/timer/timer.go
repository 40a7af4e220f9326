// Package timer runs the foreground focus countdown. The countdown itself is
// ephemeral UI state; only a finished run matters, which the caller records
// as a completed session.
package timer

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Result reports how a countdown ended. A cancelled run records nothing.
type Result struct {
	Completed bool
	StartAt   time.Time
	EndAt     time.Time
	Minutes   int
}

type keyMap struct {
	Quit key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "cancel"),
	),
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	clockStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

// Model is the countdown program. Construct with New and drive with
// tea.NewProgram, or use Run for the blocking convenience path.
type Model struct {
	total     time.Duration
	remaining time.Duration
	startAt   time.Time
	width     int

	bar progress.Model

	done      bool
	cancelled bool
}

func New(minutes int) Model {
	total := time.Duration(minutes) * time.Minute
	return Model{
		total:     total,
		remaining: total,
		startAt:   time.Now(),
		bar:       progress.New(progress.WithDefaultGradient()),
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 8
		return m, nil

	case tickMsg:
		if m.done || m.cancelled {
			return m, nil
		}
		m.remaining = m.total - time.Since(m.startAt)
		if m.remaining <= 0 {
			m.remaining = 0
			m.done = true
			return m, tea.Quit
		}
		return m, tickCmd()

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.done {
		return doneStyle.Render("Focus session complete!") + "\n"
	}

	mins := int(m.remaining.Minutes())
	secs := int(m.remaining.Seconds()) % 60
	elapsed := m.total - m.remaining
	percent := 0.0
	if m.total > 0 {
		percent = float64(elapsed) / float64(m.total)
	}

	return fmt.Sprintf("\n  %s\n\n  %s\n\n  %s\n\n  %s\n",
		titleStyle.Render("Focus"),
		clockStyle.Render(fmt.Sprintf("%02d:%02d", mins, secs)),
		m.bar.ViewAs(percent),
		helpStyle.Render("q to cancel"),
	)
}

// Result returns the outcome after the program exits.
func (m Model) Result() Result {
	return Result{
		Completed: m.done && !m.cancelled,
		StartAt:   m.startAt,
		EndAt:     m.startAt.Add(m.total - m.remaining),
		Minutes:   int(m.total.Minutes()),
	}
}

// Run blocks until the countdown finishes or is cancelled.
func Run(minutes int) (Result, error) {
	p := tea.NewProgram(New(minutes))
	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("run timer: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("unexpected final model %T", final)
	}
	return m.Result(), nil
}
