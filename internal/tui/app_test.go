package tui

import (
	"context"
	"testing"
	"time"

	"github.com/vitadash/vitadash/internal/config"
	"github.com/vitadash/vitadash/internal/model"
	"github.com/vitadash/vitadash/internal/records"
	"github.com/vitadash/vitadash/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

type stubStore struct {
	profile records.Row
}

func (s stubStore) Profile(_ context.Context, _ string) (records.Row, error) {
	if s.profile == nil {
		return nil, store.ErrUserNotFound
	}
	return s.profile, nil
}

func (s stubStore) LatestWeight(_ context.Context, _ string) (records.Row, error) {
	return nil, nil
}

func (s stubStore) Meals(_ context.Context, _ string, _, _ time.Time) ([]records.Row, error) {
	return nil, nil
}

func (s stubStore) Workouts(_ context.Context, _ string, _, _ time.Time) ([]records.Row, error) {
	return nil, nil
}

func (s stubStore) Hydration(_ context.Context, _ string, _, _ time.Time) ([]records.Row, error) {
	return nil, nil
}

func (s stubStore) Sleep(_ context.Context, _ string, _, _ time.Time) ([]records.Row, error) {
	return nil, nil
}

func (s stubStore) Steps(_ context.Context, _ string, _, _ time.Time) ([]records.Row, error) {
	return nil, nil
}

func (s stubStore) Close() error { return nil }

// newTestApp builds an app against a saved config so the first-run
// wizard stays out of the way.
func newTestApp(t *testing.T, user string) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := config.Save(config.DefaultConfig()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return NewApp(stubStore{profile: records.Row{"name": "Ada"}}, config.DefaultConfig(), user)
}

func update(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	next, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T", m)
	}
	return next
}

func TestStaleResultDiscarded(t *testing.T) {
	a := newTestApp(t, "555")
	if a.reqSeq != 1 || !a.loading {
		t.Fatalf("initial fetch not armed: seq=%d loading=%v", a.reqSeq, a.loading)
	}

	// Navigating supersedes the in-flight fetch.
	a = update(t, a, tea.KeyMsg{Type: tea.KeyRight})
	if a.reqSeq != 2 {
		t.Fatalf("reqSeq = %d after navigation, want 2", a.reqSeq)
	}

	stale := model.DaySummary{Name: "Stale"}
	a = update(t, a, daySummaryMsg{seq: 1, summary: stale})
	if a.summary != nil {
		t.Fatal("stale result must not be applied")
	}
	if !a.loading {
		t.Fatal("still waiting on the live request")
	}

	fresh := model.DaySummary{Name: "Fresh"}
	a = update(t, a, daySummaryMsg{seq: 2, summary: fresh})
	if a.summary == nil || a.summary.Name != "Fresh" {
		t.Fatalf("live result not applied: %+v", a.summary)
	}
	if a.loading {
		t.Fatal("loading should clear once the live result lands")
	}
}

func TestUnknownUserReturnsToEntry(t *testing.T) {
	a := newTestApp(t, "555")

	a = update(t, a, daySummaryMsg{seq: 1, err: store.ErrUserNotFound})
	if !a.entering {
		t.Fatal("unknown user should reopen the entry view")
	}
	if a.user != "" {
		t.Errorf("user = %q, want cleared", a.user)
	}
	if a.errMsg == "" {
		t.Error("entry view should explain what went wrong")
	}
}

func TestEntrySubmitRequiresPhone(t *testing.T) {
	a := newTestApp(t, "")
	if !a.entering {
		t.Fatal("empty user should start in the entry view")
	}

	a = update(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if !a.entering || a.errMsg == "" {
		t.Fatal("blank submit should stay on entry with a message")
	}

	a.userInput.SetValue("  555  ")
	a = update(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.entering {
		t.Fatal("valid submit should leave the entry view")
	}
	if a.user != "555" {
		t.Errorf("user = %q, want trimmed phone", a.user)
	}
	if !a.loading {
		t.Error("submit should start the day fetch")
	}
}

func TestDayNavigationStaysInWindow(t *testing.T) {
	a := newTestApp(t, "555")
	last := len(a.ctrl.Window()) - 1

	a.selected = 0
	a = update(t, a, tea.KeyMsg{Type: tea.KeyLeft})
	if a.selected != 0 {
		t.Errorf("left at first day moved to %d", a.selected)
	}

	a.selected = last
	a = update(t, a, tea.KeyMsg{Type: tea.KeyRight})
	if a.selected != last {
		t.Errorf("right at last day moved to %d", a.selected)
	}
}

func TestTabShortcuts(t *testing.T) {
	a := newTestApp(t, "555")

	a = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	if a.activeTab != 1 {
		t.Errorf("w -> tab %d, want 1", a.activeTab)
	}

	a = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	if a.activeTab != 0 {
		t.Errorf("m -> tab %d, want 0", a.activeTab)
	}

	a = update(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if a.activeTab != 1 {
		t.Errorf("tab cycle -> %d, want 1", a.activeTab)
	}
}
