package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lukemcguire/sitecheck/result"
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	successStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	categoryStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle         = lipgloss.NewStyle().Faint(true)
	urlStyle        = lipgloss.NewStyle()
	statusErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// categoryOrder defines the display order for finding categories (most to
// least actionable).
var categoryOrder = []result.Category{
	result.Category4xx,
	result.Category5xx,
	result.CategoryFailed,
	result.CategorySlow,
	result.CategoryRedirect,
	result.CategoryOther,
}

// RenderSummary produces a Lip Gloss styled summary of the verification run.
func RenderSummary(findings []result.Finding, checked int, elapsed time.Duration) string {
	var builder strings.Builder

	if len(findings) == 0 {
		builder.WriteString(successStyle.Render("All links returned 200 OK and responded quickly."))
		builder.WriteString("\n")
		builder.WriteString(dimStyle.Render(fmt.Sprintf(
			"Checked %d pages in %s",
			checked,
			elapsed.Round(time.Millisecond),
		)))
		builder.WriteString("\n")
		return builder.String()
	}

	grouped := make(map[result.Category][]result.Finding)
	for _, f := range findings {
		cat := result.Classify(f)
		grouped[cat] = append(grouped[cat], f)
	}

	for _, cat := range categoryOrder {
		group, exists := grouped[cat]
		if !exists || len(group) == 0 {
			continue
		}

		builder.WriteString(categoryStyle.Render(fmt.Sprintf("## %s (%d)", result.FormatCategory(cat), len(group))))
		builder.WriteString("\n")

		rows := make([][]string, 0, len(group))
		for _, f := range group {
			elapsedCell := ""
			if f.Timed {
				elapsedCell = fmt.Sprintf("%.2fs", f.Elapsed.Seconds())
			}
			rows = append(rows, []string{f.Status.String(), f.Page, f.Link, elapsedCell})
		}

		catTable := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers("Status", "Page", "Link", "Time").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				if col == 0 {
					return statusErrorStyle
				}
				return urlStyle
			}).
			Rows(rows...)

		builder.WriteString(catTable.Render())
		builder.WriteString("\n\n")
	}

	builder.WriteString(titleStyle.Render(fmt.Sprintf(
		"Found %d bad or slow links across %d pages (%s)",
		len(findings),
		checked,
		elapsed.Round(time.Millisecond),
	)))
	builder.WriteString("\n")

	return builder.String()
}
