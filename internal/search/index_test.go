package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/max2697/SXSW-for-agents/internal/event"
	"github.com/max2697/SXSW-for-agents/internal/search"
)

func sampleEvent() event.Event {
	return event.Event{
		ID:        "E1",
		Name:      "AI and the Future",
		Category:  "Panel",
		EventType: "panel",
		VenueName: "Austin Convention Center",
		Contributors: []event.Contributor{
			{Name: "Jane Doe", Type: "speaker"},
			{Name: "John Roe", Type: "moderator"},
		},
		StartTime: "2026-03-14T10:00:00-05:00",
		Date:      "2026-03-14",
	}
}

func TestBuildIndexFieldSets(t *testing.T) {
	idx := search.BuildIndex(sampleEvent())

	assert.Contains(t, idx.TokensByField[event.FieldName], "ai")
	assert.Contains(t, idx.TokensByField[event.FieldName], "future")
	assert.Contains(t, idx.TokensByField[event.FieldCategory], "panel")
	assert.Contains(t, idx.TokensByField[event.FieldVenue], "austin")
	assert.Contains(t, idx.TokensByField[event.FieldContributors], "jane")
	assert.Contains(t, idx.TokensByField[event.FieldContributors], "roe")
	assert.NotContains(t, idx.TokensByField[event.FieldCategory], "ai")
}

func TestBuildIndexCanonicalizesTokens(t *testing.T) {
	idx := search.BuildIndex(event.Event{ID: "E2", Name: "LLM Tools for Devs"})

	set := idx.TokensByField[event.FieldName]
	assert.Contains(t, set, "ai")
	assert.Contains(t, set, "tooling")
	assert.Contains(t, set, "developer")
	assert.NotContains(t, set, "llm")
}

func TestBuildIndexBlobs(t *testing.T) {
	idx := search.BuildIndex(sampleEvent())

	assert.Equal(t, "ai and the future panel austin convention center panel jane doe john roe", idx.RawBlob)
	assert.Equal(t, search.CanonicalizeText(idx.RawBlob), idx.CanonicalBlob)
}

func TestBuildIndexDeterministic(t *testing.T) {
	ev := sampleEvent()
	assert.Equal(t, search.BuildIndex(ev), search.BuildIndex(ev))
}

func TestBuildIndexEmptyEvent(t *testing.T) {
	idx := search.BuildIndex(event.Event{ID: "E3"})

	for _, f := range event.Fields {
		assert.Empty(t, idx.TokensByField[f])
	}
	assert.Equal(t, "", idx.RawBlob)
	assert.Equal(t, "", idx.CanonicalBlob)
}
