// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber adds comma separators to an integer.
// e.g., 12345 -> "12,345"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatMacroPair renders a consumed/goal macro line in grams, both rounded
// to the nearest integer for display. e.g. 50.2, 150 -> "50 / 150 g"
func FormatMacroPair(consumed, goal float64) string {
	return fmt.Sprintf("%d / %d g", int(math.Round(consumed)), int(math.Round(goal)))
}

// FormatCaloriePair renders the eaten/goal calorie line.
func FormatCaloriePair(eaten, goal float64) string {
	return fmt.Sprintf("%s / %s kcal",
		FormatNumber(int64(math.Round(eaten))),
		FormatNumber(int64(math.Round(goal))),
	)
}

// FormatLiters renders a hydration amount, one decimal. e.g. 2 -> "2.0 L"
func FormatLiters(liters float64) string {
	return fmt.Sprintf("%.1f L", liters)
}

// FormatKcal renders a bare calorie amount. e.g. 370.4 -> "370 kcal"
func FormatKcal(kcal float64) string {
	return FormatNumber(int64(math.Round(kcal))) + " kcal"
}

// FormatMeasure renders a body measure with its unit and no trailing zeros.
// e.g. 81.5, "kg" -> "81.5kg"; 172, "cm" -> "172cm"
func FormatMeasure(v float64, unit string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + unit
}
