package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lukemcguire/sitecheck/checker"
	"github.com/lukemcguire/sitecheck/result"
)

// AuditProgressMsg reports progress after a page finishes verification.
type AuditProgressMsg struct {
	Checked  int
	Total    int
	Findings int
	Page     string
}

// AuditFindingMsg surfaces a single finding as it is discovered.
type AuditFindingMsg struct {
	Finding result.Finding
}

// AuditNoteMsg carries a diagnostic line from the pipeline.
type AuditNoteMsg struct {
	Message string
}

// AuditDoneMsg signals the verification run has completed.
type AuditDoneMsg struct {
	Findings []result.Finding
	Err      error
}

// waitForEvent returns a tea.Cmd that reads one event from the pipeline's
// event channel. When the channel closes, it returns an AuditDoneMsg with
// nil findings (the actual findings come from the run command).
func waitForEvent(ch <-chan checker.Event) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return AuditDoneMsg{}
		}
		switch evt.Kind {
		case checker.EventFinding:
			return AuditFindingMsg{Finding: evt.Finding}
		case checker.EventPageChecked:
			return AuditProgressMsg{
				Checked:  evt.Checked,
				Total:    evt.Total,
				Findings: evt.Findings,
				Page:     evt.Page,
			}
		default:
			return AuditNoteMsg{Message: evt.Message}
		}
	}
}
