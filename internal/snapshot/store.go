// Package snapshot caches the event list fetched from a source, refreshing
// it on expiry. Lifecycle: init empty -> lazily populated on first read ->
// TTL-expired -> refetched.
package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/max2697/SXSW-for-agents/internal/event"
)

// Store is the process-wide event-list cache. The refill is guarded by a
// single-flight group so concurrent reads at expiry trigger exactly one
// upstream fetch.
type Store struct {
	source Source
	ttl    time.Duration
	logger *logrus.Entry

	group singleflight.Group

	mu        sync.RWMutex
	events    []event.Event
	fetchedAt time.Time
}

func NewStore(source Source, ttl time.Duration, logger *logrus.Entry) *Store {
	return &Store{
		source: source,
		ttl:    ttl,
		logger: logger,
	}
}

// Events returns the cached event list, refreshing it first when the cache
// is cold or expired. When a refresh fails but a stale snapshot exists, the
// stale snapshot is served and the error logged.
func (s *Store) Events(ctx context.Context) ([]event.Event, error) {
	if events, ok := s.fresh(); ok {
		return events, nil
	}

	_, err, _ := s.group.Do("refresh", func() (interface{}, error) {
		// A concurrent flight may have refilled while this call waited.
		if _, ok := s.fresh(); ok {
			return nil, nil
		}
		return nil, s.refill(ctx)
	})

	s.mu.RLock()
	events, populated := s.events, !s.fetchedAt.IsZero()
	s.mu.RUnlock()

	if err != nil {
		if !populated {
			return nil, err
		}
		s.logger.WithError(err).Warn("Snapshot refresh failed, serving stale events")
	}
	return events, nil
}

// Refresh forces an immediate refetch regardless of age.
func (s *Store) Refresh(ctx context.Context) error {
	_, err, _ := s.group.Do("refresh", func() (interface{}, error) {
		return nil, s.refill(ctx)
	})
	return err
}

// Age returns the time since the last successful fetch and the cached
// event count. Age is zero before the first fetch.
func (s *Store) Age() (time.Duration, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fetchedAt.IsZero() {
		return 0, 0
	}
	return time.Since(s.fetchedAt), len(s.events)
}

// ScheduleRefresh registers a cron-driven background refresh and starts the
// scheduler. The returned cron should be stopped on shutdown.
func (s *Store) ScheduleRefresh(spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if err := s.Refresh(context.Background()); err != nil {
			s.logger.WithError(err).Error("Scheduled snapshot refresh failed")
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

func (s *Store) fresh() ([]event.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fetchedAt.IsZero() || time.Since(s.fetchedAt) > s.ttl {
		return nil, false
	}
	return s.events, true
}

func (s *Store) refill(ctx context.Context) error {
	events, err := s.source.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.events = events
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	s.logger.WithField("events", len(events)).Info("Snapshot refreshed")
	return nil
}
