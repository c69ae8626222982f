package search

import (
	"sort"

	"github.com/max2697/SXSW-for-agents/internal/event"
)

// Hit pairs an event with its match result for ordering and display.
type Hit struct {
	Event  event.Event
	Result MatchResult
}

// HitLess is the display total order over matched events: score descending,
// then start time ascending (ISO-8601 strings compare correctly as strings;
// TBD start times are empty and sort first), then ID ascending. The search
// endpoint and the shortlist ranker both tie-break with this comparison so
// equal-score ties resolve identically everywhere.
func HitLess(a, b Hit) bool {
	if a.Result.Score != b.Result.Score {
		return a.Result.Score > b.Result.Score
	}
	if a.Event.StartTime != b.Event.StartTime {
		return a.Event.StartTime < b.Event.StartTime
	}
	return a.Event.ID < b.Event.ID
}

// SortHits orders hits in place by HitLess.
func SortHits(hits []Hit) {
	sort.Slice(hits, func(i, j int) bool {
		return HitLess(hits[i], hits[j])
	})
}
