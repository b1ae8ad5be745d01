// Package daemon provides the long-running background watcher for today's
// health summary.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/vitadash/vitadash/internal/model"
	"github.com/vitadash/vitadash/internal/pipeline"
	"github.com/vitadash/vitadash/internal/store"
)

// Config controls the watcher runtime behavior.
type Config struct {
	User         string
	Interval     time.Duration
	Addr         string
	EventsBuffer int
}

// Snapshot is a compact today-state for status/event payloads.
type Snapshot struct {
	At              time.Time `json:"at"`
	CaloriesEaten   float64   `json:"calories_eaten"`
	CalorieGoal     float64   `json:"calorie_goal"`
	ProteinGrams    float64   `json:"protein_grams"`
	CarbGrams       float64   `json:"carb_grams"`
	FatGrams        float64   `json:"fat_grams"`
	HydrationLiters float64   `json:"hydration_liters"`
	WorkoutCalories float64   `json:"workout_calories"`
	Steps           int64     `json:"steps"`
	SleepHours      string    `json:"sleep_hours"`
	Meals           int       `json:"meals"`
	Workouts        int       `json:"workouts"`
}

// Delta captures snapshot deltas between polls.
type Delta struct {
	CaloriesEaten   float64 `json:"calories_eaten"`
	ProteinGrams    float64 `json:"protein_grams"`
	CarbGrams       float64 `json:"carb_grams"`
	FatGrams        float64 `json:"fat_grams"`
	HydrationLiters float64 `json:"hydration_liters"`
	WorkoutCalories float64 `json:"workout_calories"`
	Steps           int64   `json:"steps"`
	Meals           int     `json:"meals"`
	Workouts        int     `json:"workouts"`
}

func (d Delta) isZero() bool {
	return d.CaloriesEaten == 0 &&
		d.ProteinGrams == 0 &&
		d.CarbGrams == 0 &&
		d.FatGrams == 0 &&
		d.HydrationLiters == 0 &&
		d.WorkoutCalories == 0 &&
		d.Steps == 0 &&
		d.Meals == 0 &&
		d.Workouts == 0
}

// Event is emitted whenever today's snapshot changes.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	Delta     Delta     `json:"delta"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	User            string    `json:"user"`
	Summary         Snapshot  `json:"summary"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service provides the watcher runtime and HTTP API.
type Service struct {
	cfg  Config
	ctrl *pipeline.Controller

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new watcher reading today's records from st.
func New(st store.Store, cfg Config) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = 30 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}

	return &Service{
		cfg:       cfg,
		ctrl:      pipeline.NewController(st, 0, 0, time.Now()),
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Run starts HTTP endpoints and polling until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Seed initial snapshot so status is useful immediately.
	s.pollOnce(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce(ctx)
		case err := <-errCh:
			return fmt.Errorf("watch http server: %w", err)
		}
	}
}

func (s *Service) pollOnce(ctx context.Context) {
	pollCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	sum, err := s.ctrl.Recompute(pollCtx, s.cfg.User, s.ctrl.TodayIndex())
	now := time.Now()

	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = now
		s.pollCount++
		s.mu.Unlock()
		log.Printf("watch poll error: %v", err)
		return
	}

	snap := snapshotFromSummary(sum, now)

	var (
		ev      Event
		publish bool
	)

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.lastPollAt = now
	s.pollCount++
	s.lastError = ""

	if !prevExists {
		s.nextEventID++
		ev = Event{
			ID:        s.nextEventID,
			Type:      "snapshot",
			Timestamp: now,
			Snapshot:  snap,
			Delta:     Delta{},
		}
		publish = true
	} else {
		delta := diffSnapshots(prev, snap)
		if !delta.isZero() {
			s.nextEventID++
			ev = Event{
				ID:        s.nextEventID,
				Type:      "day_delta",
				Timestamp: now,
				Snapshot:  snap,
				Delta:     delta,
			}
			publish = true
		}
	}
	s.mu.Unlock()

	if publish {
		s.publishEvent(ev)
	}
}

func snapshotFromSummary(sum model.DaySummary, at time.Time) Snapshot {
	return Snapshot{
		At:              at,
		CaloriesEaten:   sum.CaloriesEaten,
		CalorieGoal:     sum.CalorieGoal,
		ProteinGrams:    sum.ProteinConsumed,
		CarbGrams:       sum.CarbsConsumed,
		FatGrams:        sum.FatConsumed,
		HydrationLiters: sum.HydrationLiters,
		WorkoutCalories: sum.WorkoutCalories,
		Steps:           sum.Steps,
		SleepHours:      sum.SleepDisplay,
		Meals:           len(sum.Meals),
		Workouts:        len(sum.Workouts),
	}
}

func diffSnapshots(prev, curr Snapshot) Delta {
	return Delta{
		CaloriesEaten:   curr.CaloriesEaten - prev.CaloriesEaten,
		ProteinGrams:    curr.ProteinGrams - prev.ProteinGrams,
		CarbGrams:       curr.CarbGrams - prev.CarbGrams,
		FatGrams:        curr.FatGrams - prev.FatGrams,
		HydrationLiters: curr.HydrationLiters - prev.HydrationLiters,
		WorkoutCalories: curr.WorkoutCalories - prev.WorkoutCalories,
		Steps:           curr.Steps - prev.Steps,
		Meals:           curr.Meals - prev.Meals,
		Workouts:        curr.Workouts - prev.Workouts,
	}
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		User:            s.cfg.User,
		Summary:         s.snapshot,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current snapshot immediately.
	current := Event{
		Type:      "snapshot",
		Timestamp: time.Now(),
		Snapshot:  s.snapshotStatus().Summary,
	}
	writeSSE(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
