package engine

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/max2697/SXSW-for-agents/internal/config"
	"github.com/max2697/SXSW-for-agents/internal/event"
	"github.com/max2697/SXSW-for-agents/internal/filter"
	"github.com/max2697/SXSW-for-agents/internal/search"
	"github.com/max2697/SXSW-for-agents/internal/shortlist"
	"github.com/max2697/SXSW-for-agents/internal/snapshot"
)

// Engine wires the snapshot store to the search and shortlist primitives.
// The primitives themselves are pure; the engine only supplies the event
// list and counts traffic.
type Engine struct {
	Config *config.Config
	Logger *logrus.Entry
	Store  *snapshot.Store

	mu    sync.RWMutex
	stats Stats
}

type Stats struct {
	SearchesServed   int64
	ShortlistsServed int64
	StartTime        time.Time
}

func New(cfg *config.Config, logger *logrus.Entry, store *snapshot.Store) *Engine {
	return &Engine{
		Config: cfg,
		Logger: logger,
		Store:  store,
		stats:  Stats{StartTime: time.Now()},
	}
}

// Events returns the filtered event list in snapshot order.
func (e *Engine) Events(ctx context.Context, f filter.Filters) ([]event.Event, error) {
	events, err := e.Store.Events(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(events, f), nil
}

// Search filters the event list, then evaluates the query against every
// remaining event. With a blank query every event passes with score zero
// and filter order is preserved; otherwise non-matching events drop out and
// hits are sorted score desc, start time asc, id asc. A positive limit
// truncates the result.
func (e *Engine) Search(ctx context.Context, f filter.Filters, query string, mode search.Mode, limit int) ([]search.Hit, error) {
	events, err := e.Events(ctx, f)
	if err != nil {
		return nil, err
	}

	hits := make([]search.Hit, 0, len(events))
	for _, ev := range events {
		result := search.Evaluate(search.BuildIndex(ev), query, mode)
		if result.Matches {
			hits = append(hits, search.Hit{Event: ev, Result: result})
		}
	}

	if len(search.QueryTokens(query)) > 0 {
		search.SortHits(hits)
	}

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	e.mu.Lock()
	e.stats.SearchesServed++
	e.mu.Unlock()

	return hits, nil
}

// Shortlist ranks the best events per day for a topic preset.
func (e *Engine) Shortlist(ctx context.Context, topic string, perDay int) ([]shortlist.Day, error) {
	events, err := e.Store.Events(ctx)
	if err != nil {
		return nil, err
	}

	if perDay <= 0 {
		perDay = e.Config.Server.DefaultPerDay
	}
	days := shortlist.Rank(events, shortlist.PresetFor(topic), perDay)

	e.mu.Lock()
	e.stats.ShortlistsServed++
	e.mu.Unlock()

	return days, nil
}

// Status describes the running service.
type Status struct {
	EventCount       int           `json:"eventCount"`
	SnapshotAge      time.Duration `json:"snapshotAge"`
	SearchesServed   int64         `json:"searchesServed"`
	ShortlistsServed int64         `json:"shortlistsServed"`
	Uptime           time.Duration `json:"uptime"`
}

func (e *Engine) Status() Status {
	age, count := e.Store.Age()

	e.mu.RLock()
	defer e.mu.RUnlock()
	return Status{
		EventCount:       count,
		SnapshotAge:      age,
		SearchesServed:   e.stats.SearchesServed,
		ShortlistsServed: e.stats.ShortlistsServed,
		Uptime:           time.Since(e.stats.StartTime),
	}
}
