// Package shortlist ranks the best events of each festival day. It layers a
// keyword boost and a primary/fallback query strategy on top of the base
// search primitives.
package shortlist

import (
	"sort"
	"strings"

	"github.com/max2697/SXSW-for-agents/internal/event"
	"github.com/max2697/SXSW-for-agents/internal/search"
)

// Boost amounts applied on top of the base match score.
const (
	nameBoost  = 3 // ranking term appears in the event name
	blobBoost  = 1 // ranking term appears elsewhere in the record
	panelBoost = 2 // panels get a flat nudge
)

// RankedEvent is one shortlist entry with its combined rank score.
type RankedEvent struct {
	Event         event.Event `json:"event"`
	RankScore     int         `json:"rankScore"`
	Score         int         `json:"score"`
	MatchedTerms  []string    `json:"matchedTerms"`
	MatchedFields []string    `json:"matchedFields"`
}

// Day is the ranked shortlist for one calendar date. Buckets where even the
// fallback query found nothing are recorded with empty Results, not omitted.
type Day struct {
	Date            string        `json:"date"`
	QueryUsed       string        `json:"queryUsed"`
	ModeUsed        search.Mode   `json:"modeUsed"`
	TotalCandidates int           `json:"totalCandidates"`
	Results         []RankedEvent `json:"results"`
}

// Rank produces one Day per distinct date in events (skipping the unknown
// sentinel), sorted by date ascending, each truncated to perDay entries.
func Rank(events []event.Event, preset Preset, perDay int) []Day {
	buckets := make(map[string][]event.Event)
	for _, ev := range events {
		if ev.Date == "" || ev.Date == event.UnknownDate {
			continue
		}
		buckets[ev.Date] = append(buckets[ev.Date], ev)
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days := make([]Day, 0, len(dates))
	for _, date := range dates {
		days = append(days, rankBucket(date, buckets[date], preset, perDay))
	}
	return days
}

func rankBucket(date string, bucket []event.Event, preset Preset, perDay int) Day {
	query, mode := preset.PrimaryQuery, preset.PrimaryMode
	hits := matchBucket(bucket, query, mode)

	// Single fallback step; no retry beyond it.
	if len(hits) == 0 && preset.FallbackQuery != "" {
		query, mode = preset.FallbackQuery, preset.FallbackMode
		hits = matchBucket(bucket, query, mode)
	}

	ranked := make([]RankedEvent, 0, len(hits))
	for _, hit := range hits {
		ranked = append(ranked, RankedEvent{
			Event:         hit.Event,
			RankScore:     hit.Result.Score + boost(hit.Event, preset.RankingTerms),
			Score:         hit.Result.Score,
			MatchedTerms:  hit.Result.MatchedTerms,
			MatchedFields: hit.Result.MatchedFields,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.RankScore != b.RankScore {
			return a.RankScore > b.RankScore
		}
		return search.HitLess(
			search.Hit{Event: a.Event, Result: search.MatchResult{Score: a.Score}},
			search.Hit{Event: b.Event, Result: search.MatchResult{Score: b.Score}},
		)
	})

	total := len(ranked)
	if perDay > 0 && len(ranked) > perDay {
		ranked = ranked[:perDay]
	}

	return Day{
		Date:            date,
		QueryUsed:       query,
		ModeUsed:        mode,
		TotalCandidates: total,
		Results:         ranked,
	}
}

func matchBucket(bucket []event.Event, query string, mode search.Mode) []search.Hit {
	var hits []search.Hit
	for _, ev := range bucket {
		result := search.Evaluate(search.BuildIndex(ev), query, mode)
		if result.Matches {
			hits = append(hits, search.Hit{Event: ev, Result: result})
		}
	}
	return hits
}

// boost sums the ranking-term bonuses for one event: +3 when a term is a
// case-insensitive substring of the name, else +1 when it appears anywhere
// in the wider record, plus a flat +2 for panels.
func boost(ev event.Event, terms []string) int {
	name := strings.ToLower(ev.Name)
	blob := strings.ToLower(strings.Join([]string{
		ev.Name, ev.Category, ev.EventType, ev.VenueName, ev.ContributorNames(),
	}, " "))

	total := 0
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" {
			continue
		}
		switch {
		case strings.Contains(name, t):
			total += nameBoost
		case strings.Contains(blob, t):
			total += blobBoost
		}
	}
	if ev.EventType == "panel" {
		total += panelBoost
	}
	return total
}
