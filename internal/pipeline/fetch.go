package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/vitadash/vitadash/internal/model"
	"github.com/vitadash/vitadash/internal/records"
	"github.com/vitadash/vitadash/internal/store"

	"golang.org/x/sync/errgroup"
)

// FetchDay reads every tracked collection for one user and day window.
//
// The profile read is checked first: its absence (store.ErrUserNotFound) is
// the one fatal condition and aborts the fetch. The remaining six reads fan
// out concurrently; any of them failing degrades that category to empty rows
// so the rest of the day still aggregates.
func FetchDay(ctx context.Context, st store.Store, userID string, start, end time.Time) (model.DayRecords, error) {
	profile, err := st.Profile(ctx, userID)
	if err != nil {
		return model.DayRecords{}, fmt.Errorf("profile read for %q: %w", userID, err)
	}

	rec := model.DayRecords{Profile: profile}

	// Each goroutine writes its own field and never returns an error, so the
	// group is used purely as a fan-out barrier.
	var g errgroup.Group

	g.Go(func() error {
		row, err := st.LatestWeight(ctx, userID)
		if err != nil {
			log.Printf("weight read degraded to empty: %v", err)
			return nil
		}
		rec.Weight = row
		return nil
	})

	type rangeRead func(context.Context, string, time.Time, time.Time) ([]records.Row, error)
	collect := func(name string, read rangeRead, dst *[]records.Row) {
		g.Go(func() error {
			rows, err := read(ctx, userID, start, end)
			if err != nil {
				log.Printf("%s read degraded to empty: %v", name, err)
				return nil
			}
			*dst = rows
			return nil
		})
	}

	collect("meals", st.Meals, &rec.Meals)
	collect("workouts", st.Workouts, &rec.Workouts)
	collect("hydration", st.Hydration, &rec.Hydration)
	collect("sleep", st.Sleep, &rec.Sleep)
	collect("steps", st.Steps, &rec.Steps)

	_ = g.Wait()
	return rec, nil
}
