package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/max2697/SXSW-for-agents/internal/event"
	"github.com/max2697/SXSW-for-agents/internal/search"
)

func hit(id, start string, score int) search.Hit {
	return search.Hit{
		Event:  event.Event{ID: id, StartTime: start},
		Result: search.MatchResult{Matches: true, Score: score},
	}
}

func TestSortHitsOrdering(t *testing.T) {
	hits := []search.Hit{
		hit("E5", "2026-03-14T12:00:00-05:00", 4),
		hit("E2", "2026-03-14T10:00:00-05:00", 9),
		hit("E4", "", 4), // TBD start sorts first among equals
		hit("E3", "2026-03-14T12:00:00-05:00", 4), // same score+start as E5, id breaks tie
		hit("E1", "2026-03-15T09:00:00-05:00", 9),
	}

	search.SortHits(hits)

	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.Event.ID
	}
	assert.Equal(t, []string{"E2", "E1", "E4", "E3", "E5"}, ids)
}

func TestSortHitsDeterministicUnderShuffle(t *testing.T) {
	base := []search.Hit{
		hit("E1", "2026-03-14T10:00:00-05:00", 6),
		hit("E2", "2026-03-14T10:00:00-05:00", 6),
		hit("E3", "2026-03-14T09:00:00-05:00", 6),
		hit("E4", "", 6),
		hit("E5", "2026-03-14T11:00:00-05:00", 2),
	}

	reference := append([]search.Hit(nil), base...)
	search.SortHits(reference)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]search.Hit(nil), base...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		search.SortHits(shuffled)
		assert.Equal(t, reference, shuffled, "shuffle %d", i)
	}
}
