package components

import (
	"fmt"
	"strings"

	"github.com/vitadash/vitadash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// GoalBar renders a labeled progress bar toward a daily goal.
func GoalBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(t.Accent)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		bar.ViewAs(pct) + " " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

// CalorieBar renders the per-meal calorie bar. The fill fraction is
// calories relative to a 1000 kcal scale, clamped at full width.
func CalorieBar(calories float64, width int) string {
	t := theme.Active

	frac := calories / 1000
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}

	filledStyle := lipgloss.NewStyle().Foreground(t.Accent)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled))
}

// MacroShareBar renders a segmented bar showing protein, carb, and fat
// shares of a meal. Shares are percentages that sum to 100 (or all 0
// for a meal with no recorded macros, which renders an empty track).
func MacroShareBar(proteinShare, carbShare, fatShare float64, width int) string {
	t := theme.Active

	if width < 3 {
		width = 3
	}

	pw := int(proteinShare / 100 * float64(width))
	cw := int(carbShare / 100 * float64(width))
	fw := width - pw - cw
	if proteinShare+carbShare+fatShare == 0 {
		pw, cw, fw = 0, 0, 0
	}
	if fw < 0 {
		fw = 0
	}

	proteinStyle := lipgloss.NewStyle().Foreground(t.Protein)
	carbStyle := lipgloss.NewStyle().Foreground(t.Carbs)
	fatStyle := lipgloss.NewStyle().Foreground(t.Fat)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	rest := width - pw - cw - fw
	if rest < 0 {
		rest = 0
	}

	return proteinStyle.Render(strings.Repeat("█", pw)) +
		carbStyle.Render(strings.Repeat("█", cw)) +
		fatStyle.Render(strings.Repeat("█", fw)) +
		emptyStyle.Render(strings.Repeat("░", rest))
}

// MacroLegend renders the color key for macro share bars.
func MacroLegend() string {
	t := theme.Active

	p := lipgloss.NewStyle().Foreground(t.Protein).Render("■") + " Protein"
	c := lipgloss.NewStyle().Foreground(t.Carbs).Render("■") + " Carbs"
	f := lipgloss.NewStyle().Foreground(t.Fat).Render("■") + " Fat"

	return lipgloss.NewStyle().Foreground(t.TextMuted).Render(p + "  " + c + "  " + f)
}
