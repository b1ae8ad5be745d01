package model

// Fixed display goals for the categories the profile carries no goal for.
const (
	HydrationGoalLiters = 3.0
	SleepGoalHours      = 8
	StepsGoal           = 10_000
)

// DaySummary is the display-ready aggregate for one selected day.
// It is rebuilt wholesale on every (user, day) change and never mutated
// in place.
type DaySummary struct {
	Name   string
	Weight float64
	Height float64

	CaloriesEaten float64
	CalorieGoal   float64

	// Macro sums are kept unrounded; renderers round for display.
	ProteinConsumed float64
	CarbsConsumed   float64
	FatConsumed     float64
	ProteinGoal     float64
	CarbGoal        float64
	FatGoal         float64

	HydrationLiters float64
	WorkoutCalories float64
	SleepDisplay    string // total hours formatted to two decimals
	Steps           int64

	Meals    []MealSummary
	Workouts []WorkoutSummary
}

// MealSummary is one meal in the day's timeline.
type MealSummary struct {
	ID        string
	TimeLabel string
	Title     string
	Calories  float64
	Protein   float64
	Carbs     float64
	Fat       float64

	// Share of this meal's parsed macro total, in percent.
	// All zero when the macro total is zero.
	ProteinShare float64
	CarbShare    float64
	FatShare     float64
}

// WorkoutSummary is one workout in the day's itemized list.
type WorkoutSummary struct {
	ID             string
	Type           string
	Duration       string
	CaloriesBurned float64
}
