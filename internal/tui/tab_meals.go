package tui

import (
	"strings"

	"github.com/vitadash/vitadash/internal/cli"
	"github.com/vitadash/vitadash/internal/model"
	"github.com/vitadash/vitadash/internal/tui/components"
	"github.com/vitadash/vitadash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderMealsTab renders the meal timeline for the selected day.
func (a App) renderMealsTab(s model.DaySummary, cw int) string {
	t := theme.Active

	timeStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	kcalStyle := lipgloss.NewStyle().Foreground(t.Accent)
	macroStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	inner := components.CardInnerWidth(cw)
	barW := inner / 3
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	if len(s.Meals) == 0 {
		b.WriteString(emptyStyle.Render("No meals logged for this day."))
	}
	for i, m := range s.Meals {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(timeStyle.Render(m.TimeLabel))
		b.WriteString("  ")
		b.WriteString(titleStyle.Render(truncStr(m.Title, inner-30)))
		b.WriteString("  ")
		b.WriteString(kcalStyle.Render(cli.FormatKcal(m.Calories)))
		b.WriteString("\n")
		b.WriteString(components.CalorieBar(m.Calories, barW))
		b.WriteString("  ")
		b.WriteString(components.MacroShareBar(m.ProteinShare, m.CarbShare, m.FatShare, barW))
		b.WriteString("\n")
		b.WriteString(macroStyle.Render(
			"P " + cli.FormatMeasure(m.Protein, "g") +
				"  C " + cli.FormatMeasure(m.Carbs, "g") +
				"  F " + cli.FormatMeasure(m.Fat, "g")))
		b.WriteString("\n")
	}

	body := strings.TrimRight(b.String(), "\n")
	if len(s.Meals) > 0 {
		body += "\n\n" + components.MacroLegend()
	}

	return components.ContentCard("Meal Timeline", body, cw)
}
