// Package tui provides the Bubble Tea terminal UI for sitecheck, displaying
// live verification progress and a styled summary of findings.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lukemcguire/sitecheck/checker"
	"github.com/lukemcguire/sitecheck/result"
)

// Model is the Bubble Tea model for the verification TUI.
type Model struct {
	ctx     context.Context
	cancel  context.CancelFunc
	runner  *checker.Runner
	pages   []string
	spinner spinner.Model
	events  <-chan checker.Event

	checked   int
	total     int
	findCount int
	current   string
	note      string
	start     time.Time
	quitting  bool
	done      bool
	findings  []result.Finding
	err       error
	width     int
}

// NewModel creates a TUI model wired to the given runner and event channel.
func NewModel(ctx context.Context, cancel context.CancelFunc, runner *checker.Runner, pages []string, events <-chan checker.Event) Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return Model{
		ctx:     ctx,
		cancel:  cancel,
		runner:  runner,
		pages:   pages,
		spinner: spin,
		events:  events,
		total:   len(pages),
		start:   time.Now(),
	}
}

// Init starts the spinner, the verification run, and the event listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startRun(), waitForEvent(m.events))
}

// startRun returns a tea.Cmd that runs the verification and sends AuditDoneMsg.
func (m Model) startRun() tea.Cmd {
	return func() tea.Msg {
		findings, err := m.runner.Run(m.ctx, m.pages)
		if err != nil {
			err = fmt.Errorf("verify pages: %w", err)
		}
		return AuditDoneMsg{Findings: findings, Err: err}
	}
}

// Update handles messages from the Bubble Tea runtime.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			m.cancel()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case AuditProgressMsg:
		m.checked = msg.Checked
		m.findCount = msg.Findings
		m.current = msg.Page
		return m, waitForEvent(m.events)

	case AuditFindingMsg:
		m.note = msg.Finding.Line()
		return m, waitForEvent(m.events)

	case AuditNoteMsg:
		m.note = msg.Message
		return m, waitForEvent(m.events)

	case AuditDoneMsg:
		m.done = true
		m.findings = msg.Findings
		m.err = msg.Err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the current TUI state.
func (m Model) View() string {
	if m.done && m.err != nil {
		return errorStyle.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.done {
		return RenderSummary(m.findings, m.checked, time.Since(m.start))
	}
	return fmt.Sprintf("%s Checking pages... %d/%d checked, %d findings\n%s\n%s\n",
		m.spinner.View(), m.checked, m.total, m.findCount,
		dimStyle.Render("  "+m.current),
		dimStyle.Render("  "+m.note))
}

// Findings returns the aggregated findings for output formatting.
func (m Model) Findings() []result.Finding {
	return m.findings
}

// Interrupted reports whether the user aborted the run.
func (m Model) Interrupted() bool {
	return m.quitting
}

// Err returns the run error, if any.
func (m Model) Err() error {
	return m.err
}
