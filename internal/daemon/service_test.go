package daemon

import (
	"math"
	"testing"
	"time"
)

func TestDiffSnapshots(t *testing.T) {
	prev := Snapshot{
		CaloriesEaten:   1200,
		ProteinGrams:    60,
		HydrationLiters: 1.5,
		Steps:           4000,
		Meals:           2,
	}
	curr := Snapshot{
		CaloriesEaten:   1850,
		ProteinGrams:    95,
		HydrationLiters: 2.25,
		Steps:           7500,
		Meals:           3,
	}

	delta := diffSnapshots(prev, curr)
	if delta.CaloriesEaten != 650 {
		t.Fatalf("CaloriesEaten delta = %.0f, want 650", delta.CaloriesEaten)
	}
	if delta.ProteinGrams != 35 {
		t.Fatalf("ProteinGrams delta = %.0f, want 35", delta.ProteinGrams)
	}
	if math.Abs(delta.HydrationLiters-0.75) > 1e-9 {
		t.Fatalf("HydrationLiters delta = %.2f, want 0.75", delta.HydrationLiters)
	}
	if delta.Steps != 3500 {
		t.Fatalf("Steps delta = %d, want 3500", delta.Steps)
	}
	if delta.Meals != 1 {
		t.Fatalf("Meals delta = %d, want 1", delta.Meals)
	}
	if delta.isZero() {
		t.Fatal("delta unexpectedly reported as zero")
	}
}

func TestDiffSnapshotsUnchangedDayIsZero(t *testing.T) {
	snap := Snapshot{
		CaloriesEaten:   1850,
		ProteinGrams:    95,
		HydrationLiters: 2.25,
		Steps:           7500,
		Meals:           3,
		Workouts:        1,
	}
	if !diffSnapshots(snap, snap).isZero() {
		t.Fatal("identical snapshots should diff to zero")
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(nil, Config{
		User:         "555",
		Interval:     10 * time.Second,
		EventsBuffer: 2,
	})

	s.publishEvent(Event{ID: 1})
	s.publishEvent(Event{ID: 2})
	s.publishEvent(Event{ID: 3})

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) != 2 {
		t.Fatalf("events len = %d, want 2", len(s.events))
	}
	if s.events[0].ID != 2 || s.events[1].ID != 3 {
		t.Fatalf("events ring contains IDs [%d, %d], want [2, 3]", s.events[0].ID, s.events[1].ID)
	}
}
