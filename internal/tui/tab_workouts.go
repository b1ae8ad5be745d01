package tui

import (
	"strings"

	"github.com/vitadash/vitadash/internal/cli"
	"github.com/vitadash/vitadash/internal/model"
	"github.com/vitadash/vitadash/internal/tui/components"
	"github.com/vitadash/vitadash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderWorkoutsTab renders the workout log for the selected day.
func (a App) renderWorkoutsTab(s model.DaySummary, cw int) string {
	t := theme.Active

	typeStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	durStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	kcalStyle := lipgloss.NewStyle().Foreground(t.Accent)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	inner := components.CardInnerWidth(cw)

	var b strings.Builder
	if len(s.Workouts) == 0 {
		b.WriteString(emptyStyle.Render("No workouts logged for this day."))
	}
	for i, w := range s.Workouts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(typeStyle.Render(truncStr(w.Type, inner-30)))
		b.WriteString("  ")
		if w.Duration != "" {
			b.WriteString(durStyle.Render(w.Duration))
		}
		b.WriteString("  ")
		b.WriteString(kcalStyle.Render(cli.FormatKcal(w.CaloriesBurned) + " burned"))
	}

	if len(s.Workouts) > 0 {
		b.WriteString("\n\n")
		b.WriteString(durStyle.Render("Total "))
		b.WriteString(kcalStyle.Render(cli.FormatKcal(s.WorkoutCalories)))
	}

	return components.ContentCard("Workout Log", b.String(), cw)
}
