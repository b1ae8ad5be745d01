package components

import (
	"strings"

	"github.com/vitadash/vitadash/internal/model"
	"github.com/vitadash/vitadash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderDayPicker renders the horizontal strip of day cells with the
// selected cell highlighted. Cells show the zero-padded day over the
// month abbreviation; today carries a dot marker.
func RenderDayPicker(cells []model.DayCell, selected int) string {
	t := theme.Active

	selectedStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Foreground(t.Accent).
		Bold(true).
		Padding(0, 1)

	normalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.TextMuted).
		Padding(0, 1)

	todayStyle := lipgloss.NewStyle().Foreground(t.Accent)

	var rendered []string
	for i, c := range cells {
		label := c.Day + "\n" + c.Month
		if c.IsToday {
			label = c.Day + "\n" + c.Month + todayStyle.Render("·")
		}
		if i == selected {
			rendered = append(rendered, selectedStyle.Render(label))
		} else {
			rendered = append(rendered, normalStyle.Render(label))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// DayHeading returns the heading for the selected day cell, with a
// "Today, " prefix when the cell is today.
func DayHeading(cell model.DayCell) string {
	var b strings.Builder
	if cell.IsToday {
		b.WriteString("Today, ")
	}
	b.WriteString(cell.Day)
	b.WriteString(" ")
	b.WriteString(cell.Month)
	return b.String()
}
