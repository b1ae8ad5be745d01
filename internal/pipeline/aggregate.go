package pipeline

import (
	"fmt"

	"github.com/vitadash/vitadash/internal/model"
	"github.com/vitadash/vitadash/internal/records"
)

// ParseProfile normalizes a raw profile row into the typed master data.
func ParseProfile(r records.Row) model.Profile {
	return model.Profile{
		Identifier:  r.String("identifier"),
		Name:        r.String("name"),
		Height:      r.Numeric("height"),
		CalorieGoal: r.Numeric("calorie_goal"),
		ProteinGoal: r.Numeric("protein_goal"),
		CarbGoal:    r.Numeric("carb_goal"),
		FatGoal:     r.Numeric("fat_goal"),
	}
}

// Aggregate reduces one day's raw records into the display-ready summary.
// Every numeric field goes through the records normalization boundary, so
// missing or string-encoded values sum as their parsed value or zero and
// never fail the reduction. Sums are order-independent.
func Aggregate(rec model.DayRecords) model.DaySummary {
	p := ParseProfile(rec.Profile)
	s := model.DaySummary{
		Name:        p.Name,
		Height:      p.Height,
		Weight:      rec.Weight.Numeric("weight"),
		CalorieGoal: p.CalorieGoal,
		ProteinGoal: p.ProteinGoal,
		CarbGoal:    p.CarbGoal,
		FatGoal:     p.FatGoal,
	}

	for _, m := range rec.Meals {
		ms := model.MealSummary{
			ID:        m.String("id"),
			TimeLabel: m.String("time_label"),
			Title:     m.String("title"),
			Calories:  m.Numeric("calories"),
			Protein:   m.Numeric("protein"),
			Carbs:     m.Numeric("carbs"),
			Fat:       m.Numeric("fat"),
		}

		// Shares are percentages of this meal's parsed macro total, not of
		// its calories. A zero total leaves all three shares at zero.
		if total := ms.Protein + ms.Carbs + ms.Fat; total > 0 {
			ms.ProteinShare = ms.Protein / total * 100
			ms.CarbShare = ms.Carbs / total * 100
			ms.FatShare = ms.Fat / total * 100
		}

		s.CaloriesEaten += ms.Calories
		s.ProteinConsumed += ms.Protein
		s.CarbsConsumed += ms.Carbs
		s.FatConsumed += ms.Fat
		s.Meals = append(s.Meals, ms)
	}

	for _, w := range rec.Workouts {
		ws := model.WorkoutSummary{
			ID:             w.String("id"),
			Type:           w.String("workout_type"),
			Duration:       w.String("duration"),
			CaloriesBurned: w.Numeric("calories_burned"),
		}
		s.WorkoutCalories += ws.CaloriesBurned
		s.Workouts = append(s.Workouts, ws)
	}

	for _, h := range rec.Hydration {
		s.HydrationLiters += h.Numeric("amount")
	}

	var sleepHours float64
	for _, row := range rec.Sleep {
		sleepHours += row.Numeric("duration")
	}
	s.SleepDisplay = fmt.Sprintf("%.2f", sleepHours)

	var steps float64
	for _, row := range rec.Steps {
		steps += row.Numeric("count")
	}
	s.Steps = int64(steps)

	return s
}
