package pipeline

import (
	"math"
	"testing"

	"github.com/vitadash/vitadash/internal/model"
	"github.com/vitadash/vitadash/internal/records"
)

func testProfile() records.Row {
	return records.Row{
		"identifier":   "491701234",
		"name":         "Maya",
		"height":       172.0,
		"calorie_goal": 2000.0,
		"protein_goal": "150",
		"carb_goal":    220.0,
		"fat_goal":     70.0,
	}
}

func TestAggregateMealSums(t *testing.T) {
	rec := model.DayRecords{
		Profile: testProfile(),
		Meals: []records.Row{
			{"id": 1, "time_label": "08:30", "title": "Oats", "calories": 500.0, "protein": "30", "carbs": 60.0, "fat": 12.0},
			{"id": 2, "time_label": "12:45", "title": "Bowl", "calories": 300.0, "protein": 20, "carbs": "40", "fat": nil},
		},
	}

	s := Aggregate(rec)
	if s.CaloriesEaten != 800 {
		t.Fatalf("CaloriesEaten = %v, want 800", s.CaloriesEaten)
	}
	if s.ProteinConsumed != 50 {
		t.Fatalf("ProteinConsumed = %v, want 50", s.ProteinConsumed)
	}
	if s.CarbsConsumed != 100 {
		t.Fatalf("CarbsConsumed = %v, want 100", s.CarbsConsumed)
	}
	if s.FatConsumed != 12 {
		t.Fatalf("FatConsumed = %v, want 12 (nil fat normalizes to 0)", s.FatConsumed)
	}
	if len(s.Meals) != 2 {
		t.Fatalf("itemized meals = %d, want 2", len(s.Meals))
	}
	if s.ProteinGoal != 150 {
		t.Fatalf("ProteinGoal = %v, want 150 (string-encoded goal)", s.ProteinGoal)
	}
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	meals := []records.Row{
		{"calories": 500.0, "protein": "30"},
		{"calories": 300.0, "protein": 20},
		{"calories": 150.5, "protein": "7.5"},
	}
	reversed := []records.Row{meals[2], meals[1], meals[0]}

	a := Aggregate(model.DayRecords{Profile: testProfile(), Meals: meals})
	b := Aggregate(model.DayRecords{Profile: testProfile(), Meals: reversed})

	if a.CaloriesEaten != b.CaloriesEaten || a.ProteinConsumed != b.ProteinConsumed {
		t.Fatalf("order changed sums: %v/%v vs %v/%v",
			a.CaloriesEaten, a.ProteinConsumed, b.CaloriesEaten, b.ProteinConsumed)
	}
}

func TestMacroSharesSumToHundredOrZero(t *testing.T) {
	rec := model.DayRecords{
		Profile: testProfile(),
		Meals: []records.Row{
			{"calories": 640.0, "protein": 30.0, "carbs": 60.0, "fat": 10.0},
			{"calories": 200.0}, // no macros at all
		},
	}

	s := Aggregate(rec)

	withMacros := s.Meals[0]
	sum := withMacros.ProteinShare + withMacros.CarbShare + withMacros.FatShare
	if math.Abs(sum-100) > 1e-9 {
		t.Fatalf("share sum = %v, want 100", sum)
	}
	if withMacros.ProteinShare != 30.0/100.0*100 {
		t.Fatalf("ProteinShare = %v, want 30", withMacros.ProteinShare)
	}

	zero := s.Meals[1]
	if zero.ProteinShare != 0 || zero.CarbShare != 0 || zero.FatShare != 0 {
		t.Fatalf("zero-macro meal shares = %v/%v/%v, want all 0",
			zero.ProteinShare, zero.CarbShare, zero.FatShare)
	}
}

func TestAggregateHydrationMixedEncodings(t *testing.T) {
	rec := model.DayRecords{
		Profile: testProfile(),
		Hydration: []records.Row{
			{"amount": "1.5"},
			{"amount": 0.5},
			{"amount": nil},
		},
	}

	s := Aggregate(rec)
	if s.HydrationLiters != 2.0 {
		t.Fatalf("HydrationLiters = %v, want 2.0", s.HydrationLiters)
	}
}

func TestAggregateSleepFormatsTwoDecimals(t *testing.T) {
	rec := model.DayRecords{
		Profile: testProfile(),
		Sleep: []records.Row{
			{"duration": "6.5"},
			{"duration": 1.25},
		},
	}

	s := Aggregate(rec)
	if s.SleepDisplay != "7.75" {
		t.Fatalf("SleepDisplay = %q, want 7.75", s.SleepDisplay)
	}
}

func TestAggregateStepsAndWorkouts(t *testing.T) {
	rec := model.DayRecords{
		Profile: testProfile(),
		Workouts: []records.Row{
			{"id": 10, "calories_burned": 250.0, "workout_type": "Run", "duration": "30 min"},
			{"id": 11, "calories_burned": "120", "workout_type": "Row"},
			{"id": 12}, // burned absent
		},
		Steps: []records.Row{
			{"count": 4200},
			{"count": "3800"},
			{"count": nil},
		},
	}

	s := Aggregate(rec)
	if s.WorkoutCalories != 370 {
		t.Fatalf("WorkoutCalories = %v, want 370", s.WorkoutCalories)
	}
	if len(s.Workouts) != 3 {
		t.Fatalf("itemized workouts = %d, want 3", len(s.Workouts))
	}
	if s.Workouts[0].Type != "Run" || s.Workouts[0].Duration != "30 min" {
		t.Fatalf("workout detail = %+v", s.Workouts[0])
	}
	if s.Steps != 8000 {
		t.Fatalf("Steps = %d, want 8000", s.Steps)
	}
}

func TestAggregateEmptyDay(t *testing.T) {
	s := Aggregate(model.DayRecords{Profile: testProfile()})

	if s.CaloriesEaten != 0 || s.ProteinConsumed != 0 || s.HydrationLiters != 0 || s.Steps != 0 {
		t.Fatalf("empty day produced nonzero sums: %+v", s)
	}
	if len(s.Meals) != 0 || len(s.Workouts) != 0 {
		t.Fatalf("empty day produced itemized entries")
	}
	if s.SleepDisplay != "0.00" {
		t.Fatalf("SleepDisplay = %q, want 0.00", s.SleepDisplay)
	}
	if s.Weight != 0 {
		t.Fatalf("Weight = %v, want 0 when no sample exists", s.Weight)
	}
}
