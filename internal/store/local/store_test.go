package local

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/vitadash/vitadash/internal/records"
	"github.com/vitadash/vitadash/internal/store"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func seed(t *testing.T, d *DB, table string, row records.Row) {
	t.Helper()
	if err := d.Insert(context.Background(), table, row); err != nil {
		t.Fatalf("seed %s: %v", table, err)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	d := openTestDB(t)
	seed(t, d, "profiles", records.Row{
		"identifier":   "491701234",
		"name":         "Maya",
		"height":       172.0,
		"calorie_goal": 2000.0,
		"protein_goal": "150", // string-encoded, as the remote store does
		"carb_goal":    "220",
		"fat_goal":     "70",
	})

	row, err := d.Profile(context.Background(), "491701234")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if row.String("name") != "Maya" {
		t.Fatalf("name = %q", row.String("name"))
	}
	if row.Numeric("protein_goal") != 150 {
		t.Fatalf("protein_goal = %v", row.Numeric("protein_goal"))
	}
}

func TestProfileMissingIsUserNotFound(t *testing.T) {
	d := openTestDB(t)
	_, err := d.Profile(context.Background(), "0000")
	if !errors.Is(err, store.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestLatestWeightPicksMostRecent(t *testing.T) {
	d := openTestDB(t)
	seed(t, d, "weights", records.Row{
		"identifier": "u1", "weight": 84.0, "created_at": "2026-02-01T08:00:00Z",
	})
	seed(t, d, "weights", records.Row{
		"identifier": "u1", "weight": 81.5, "created_at": "2026-03-01T08:00:00Z",
	})

	row, err := d.LatestWeight(context.Background(), "u1")
	if err != nil {
		t.Fatalf("LatestWeight: %v", err)
	}
	if got := row.Numeric("weight"); got != 81.5 {
		t.Fatalf("weight = %v, want 81.5", got)
	}
}

func TestRangeReadIsHalfOpen(t *testing.T) {
	d := openTestDB(t)
	day := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)

	inside := []string{"2026-03-05T00:00:00Z", "2026-03-05T23:59:59Z"}
	outside := []string{"2026-03-04T23:59:59Z", "2026-03-06T00:00:00Z"}
	for _, ts := range append(inside, outside...) {
		seed(t, d, "hydration", records.Row{
			"identifier": "u1", "amount": "0.5", "created_at": ts,
		})
	}

	rows, err := d.Hydration(context.Background(), "u1", day, next)
	if err != nil {
		t.Fatalf("Hydration: %v", err)
	}
	if len(rows) != len(inside) {
		t.Fatalf("rows = %d, want %d (start inclusive, end exclusive)", len(rows), len(inside))
	}
}

func TestRangeReadScopedToIdentifier(t *testing.T) {
	d := openTestDB(t)
	day := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	seed(t, d, "steps", records.Row{
		"identifier": "u1", "count": 4000, "created_at": "2026-03-05T10:00:00Z",
	})
	seed(t, d, "steps", records.Row{
		"identifier": "u2", "count": 9000, "created_at": "2026-03-05T10:00:00Z",
	})

	rows, err := d.Steps(context.Background(), "u1", day, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("Steps: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if got := rows[0].Numeric("count"); got != 4000 {
		t.Fatalf("count = %v, want 4000", got)
	}
}
