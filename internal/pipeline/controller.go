package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vitadash/vitadash/internal/model"
	"github.com/vitadash/vitadash/internal/store"
)

// Snapshot is the published dashboard state for one (user, day) recompute:
// either a summary or the error that stopped the pipeline.
type Snapshot struct {
	UserID   string
	DayIndex int
	Summary  *model.DaySummary
	Err      error
}

// Controller owns the single current-snapshot slot and the session's day
// window. Every (user, day) change goes through Recompute; a recompute that
// is superseded before it finishes never overwrites the slot.
type Controller struct {
	st     store.Store
	window []model.DayCell

	// Now is the clock used for day-bound resolution. Overridable in tests.
	Now func() time.Time

	mu      sync.Mutex
	seq     uint64
	current Snapshot
}

// NewController builds the day window once for the session and returns a
// controller reading from st.
func NewController(st store.Store, daysBefore, daysAfter int, now time.Time) *Controller {
	return &Controller{
		st:     st,
		window: BuildWindow(daysBefore, daysAfter, now),
		Now:    time.Now,
	}
}

// Window returns the session's selectable day cells.
func (c *Controller) Window() []model.DayCell {
	return c.window
}

// TodayIndex returns the index of the cell flagged as today.
func (c *Controller) TodayIndex() int {
	for i, cell := range c.window {
		if cell.IsToday {
			return i
		}
	}
	return 0
}

// Current returns the most recently published snapshot.
func (c *Controller) Current() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Recompute runs the full pipeline for (userID, dayIndex) and returns the
// result. The shared snapshot slot is updated only if no newer Recompute
// started while this one was in flight; stale results are returned to the
// caller but silently discarded from the slot.
func (c *Controller) Recompute(ctx context.Context, userID string, dayIndex int) (model.DaySummary, error) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	if dayIndex < 0 || dayIndex >= len(c.window) {
		err := fmt.Errorf("day index %d out of window", dayIndex)
		c.publish(seq, Snapshot{UserID: userID, DayIndex: dayIndex, Err: err})
		return model.DaySummary{}, err
	}

	start, end := DayBounds(c.window[dayIndex], c.Now())

	rec, err := FetchDay(ctx, c.st, userID, start, end)
	if err != nil {
		c.publish(seq, Snapshot{UserID: userID, DayIndex: dayIndex, Err: err})
		return model.DaySummary{}, err
	}

	sum := Aggregate(rec)
	c.publish(seq, Snapshot{UserID: userID, DayIndex: dayIndex, Summary: &sum})
	return sum, nil
}

func (c *Controller) publish(seq uint64, snap Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return // a newer recompute started; drop this result
	}
	c.current = snap
}
