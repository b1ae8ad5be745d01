package cli

import (
	"fmt"
	"strings"

	"github.com/vitadash/vitadash/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (dark palette, matching the TUI default)
var (
	ColorTextDim   = lipgloss.Color("#525252")
	ColorTextMuted = lipgloss.Color("#8A8A8A")
	ColorText      = lipgloss.Color("#F5F5F0")
	ColorAccent    = lipgloss.Color("#9DC183")
	ColorBlue      = lipgloss.Color("#4385BE")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorYellow    = lipgloss.Color("#D0A215")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	barStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)
)

const mealBarWidth = 24

// RenderDaySummary renders one day's aggregated dashboard as static
// terminal output.
func RenderDaySummary(s model.DaySummary, dayLabel string) string {
	var b strings.Builder

	name := s.Name
	if name == "" {
		name = "Unknown user"
	}
	b.WriteString("  " + titleStyle.Render(name))
	if dayLabel != "" {
		b.WriteString(mutedStyle.Render("  ·  " + dayLabel))
	}
	b.WriteString("\n\n")

	// Body measures
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render("Weight "))
	b.WriteString(valueStyle.Render(FormatMeasure(s.Weight, "kg")))
	b.WriteString(mutedStyle.Render("   Height "))
	b.WriteString(valueStyle.Render(FormatMeasure(s.Height, "cm")))
	b.WriteString("\n\n")

	// Calories headline
	b.WriteString("  " + headerStyle.Render("Calories") + "\n")
	b.WriteString("  " + valueStyle.Render(FormatCaloriePair(s.CaloriesEaten, s.CalorieGoal)) + "\n\n")

	// Macros
	b.WriteString("  " + headerStyle.Render("Macros") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n\n",
		mutedStyle.Render("Proteins"), valueStyle.Render(FormatMacroPair(s.ProteinConsumed, s.ProteinGoal)),
		mutedStyle.Render("Carbs"), valueStyle.Render(FormatMacroPair(s.CarbsConsumed, s.CarbGoal)),
		mutedStyle.Render("Fats"), valueStyle.Render(FormatMacroPair(s.FatConsumed, s.FatGoal)),
	))

	// Meal timeline
	b.WriteString("  " + headerStyle.Render("Calories Timeline") + "\n")
	if len(s.Meals) == 0 {
		b.WriteString("  " + dimStyle.Render("No meals found for this day.") + "\n")
	}
	for _, m := range s.Meals {
		b.WriteString(fmt.Sprintf("  %s  %-24s %s\n",
			dimStyle.Render(fmt.Sprintf("%-5s", m.TimeLabel)),
			valueStyle.Render(truncate(m.Title, 24)),
			mutedStyle.Render(FormatKcal(m.Calories)),
		))
		b.WriteString("         " + mealCalorieBar(m.Calories) + "\n")
	}
	b.WriteString("\n")

	// Stats grid
	b.WriteString("  " + headerStyle.Render("Hydration") + "  " + valueStyle.Render(FormatLiters(s.HydrationLiters)))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  (goal %s)", FormatLiters(model.HydrationGoalLiters))) + "\n")
	b.WriteString("  " + headerStyle.Render("Workouts") + "   " + valueStyle.Render(FormatKcal(s.WorkoutCalories)))
	b.WriteString(mutedStyle.Render(" burned") + "\n")
	b.WriteString("  " + headerStyle.Render("Sleep") + "      " + valueStyle.Render(s.SleepDisplay+" h"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  (goal %dh)", model.SleepGoalHours)) + "\n")
	b.WriteString("  " + headerStyle.Render("Steps") + "      " + valueStyle.Render(FormatNumber(s.Steps)))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  (goal %s)", FormatNumber(model.StepsGoal))) + "\n")

	// Itemized workouts
	if len(s.Workouts) > 0 {
		b.WriteString("\n  " + headerStyle.Render("Workout Log") + "\n")
		for _, w := range s.Workouts {
			typ := w.Type
			if typ == "" {
				typ = "Workout"
			}
			line := fmt.Sprintf("  %-16s %-10s %s",
				truncate(typ, 16), w.Duration, FormatKcal(w.CaloriesBurned))
			b.WriteString(valueStyle.Render(line) + "\n")
		}
	}

	return b.String()
}

// mealCalorieBar sizes a meal's bar as calories/1000 of the full width. A
// meal above 1000 kcal fills the bar completely; that clamp is cosmetic only,
// the underlying value stays exact.
func mealCalorieBar(calories float64) string {
	frac := calories / 1000
	filled := int(frac * mealBarWidth)
	if filled > mealBarWidth {
		filled = mealBarWidth
	}
	if filled < 0 {
		filled = 0
	}
	return barStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", mealBarWidth-filled))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
