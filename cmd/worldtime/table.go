package main

import (
	"strings"

	"worldtime-service/internal/domain/entity"

	"github.com/charmbracelet/lipgloss"
)

// styles used by every command
type styles struct {
	Title   lipgloss.Style
	Bold    lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Working lipgloss.Style
	Outside lipgloss.Style
}

func newStyles() styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{Title: plain, Bold: plain, Body: plain, Muted: plain, Working: plain, Outside: plain}
	}
	return styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Body:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Working: lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
		Outside: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
	}
}

func (s styles) status(status entity.WorkingStatus) string {
	if status == entity.StatusWorking {
		return s.Working.Render(string(status))
	}
	return s.Outside.Render(string(status))
}

// table renders rows of static text with aligned columns.
type table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func newTable(title string, headers ...string) *table {
	return &table{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

func (t *table) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

func (t *table) View(st styles) string {
	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(st.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	// lipgloss widths include the padding
	for i := range widths {
		widths[i] += 2
	}

	header := st.Bold.Padding(0, 1)
	cell := st.Body.Padding(0, 1)
	sep := st.Muted.Render("|")

	for i, h := range t.Headers {
		sb.WriteString(header.Width(widths[i]).Render(h))
		if i < len(t.Headers)-1 {
			sb.WriteString(sep)
		}
	}
	sb.WriteString("\n")

	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(st.Muted.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	if len(t.Rows) == 0 {
		sb.WriteString(st.Muted.Render("  (none)"))
		sb.WriteString("\n")
	}
	for _, row := range t.Rows {
		for i, c := range row {
			if i >= len(widths) {
				break
			}
			sb.WriteString(cell.Width(widths[i]).Render(c))
			if i < len(row)-1 {
				sb.WriteString(sep)
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
