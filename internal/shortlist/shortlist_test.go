package shortlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/max2697/SXSW-for-agents/internal/event"
	"github.com/max2697/SXSW-for-agents/internal/search"
	"github.com/max2697/SXSW-for-agents/internal/shortlist"
)

func aiEvent(id, date, name string) event.Event {
	return event.Event{ID: id, Date: date, Name: name}
}

func TestRankBucketsSortedByDate(t *testing.T) {
	events := []event.Event{
		aiEvent("E1", "2026-03-15", "AI Roundtable"),
		aiEvent("E2", "2026-03-13", "AI Breakfast"),
		aiEvent("E3", "2026-03-14", "AI Lunch"),
		aiEvent("E4", event.UnknownDate, "AI Mystery"),
		{ID: "E5", Name: "AI Undated"},
	}
	preset := shortlist.Preset{
		Topic:        "ai",
		PrimaryQuery: "ai",
		PrimaryMode:  search.ModeAny,
	}

	days := shortlist.Rank(events, preset, 10)

	require.Len(t, days, 3)
	assert.Equal(t, "2026-03-13", days[0].Date)
	assert.Equal(t, "2026-03-14", days[1].Date)
	assert.Equal(t, "2026-03-15", days[2].Date)
}

func TestRankPerDayTruncation(t *testing.T) {
	// Five matches with distinct scores; only the top two survive.
	events := []event.Event{
		{ID: "E1", Date: "2026-03-14", Name: "AI"},
		{ID: "E2", Date: "2026-03-14", Name: "AI", Category: "AI"},
		{ID: "E3", Date: "2026-03-14", Name: "AI", Category: "AI", EventType: "AI"},
		{ID: "E4", Date: "2026-03-14", Name: "AI", Category: "AI", EventType: "AI", VenueName: "AI"},
		{ID: "E5", Date: "2026-03-14", Name: "Something", Category: "AI"},
	}
	preset := shortlist.Preset{Topic: "ai", PrimaryQuery: "ai", PrimaryMode: search.ModeAny}

	days := shortlist.Rank(events, preset, 2)

	require.Len(t, days, 1)
	day := days[0]
	assert.Equal(t, 5, day.TotalCandidates)
	require.Len(t, day.Results, 2)
	assert.Equal(t, "E4", day.Results[0].Event.ID)
	assert.Equal(t, "E3", day.Results[1].Event.ID)
}

func TestRankFallbackBookkeeping(t *testing.T) {
	events := []event.Event{
		aiEvent("E1", "2026-03-14", "Barbecue Tour"),
		aiEvent("E2", "2026-03-14", "Barbecue Tasting"),
		aiEvent("E3", "2026-03-14", "Barbecue Crawl"),
	}
	preset := shortlist.Preset{
		Topic:         "food",
		PrimaryQuery:  "quantum computing",
		PrimaryMode:   search.ModeAll,
		FallbackQuery: "barbecue",
		FallbackMode:  search.ModeAny,
	}

	days := shortlist.Rank(events, preset, 10)

	require.Len(t, days, 1)
	assert.Equal(t, "barbecue", days[0].QueryUsed)
	assert.Equal(t, search.ModeAny, days[0].ModeUsed)
	assert.Equal(t, 3, days[0].TotalCandidates)
	assert.Len(t, days[0].Results, 3)
}

func TestRankEmptyBucketRecorded(t *testing.T) {
	events := []event.Event{aiEvent("E1", "2026-03-14", "Barbecue Tour")}
	preset := shortlist.Preset{
		Topic:         "ai",
		PrimaryQuery:  "quantum",
		PrimaryMode:   search.ModeAny,
		FallbackQuery: "robotics",
		FallbackMode:  search.ModeAny,
	}

	days := shortlist.Rank(events, preset, 5)

	require.Len(t, days, 1)
	assert.Equal(t, "robotics", days[0].QueryUsed)
	assert.Zero(t, days[0].TotalCandidates)
	assert.Empty(t, days[0].Results)
}

func TestRankBoosts(t *testing.T) {
	events := []event.Event{
		// Ranking term in name: +3.
		{ID: "E1", Date: "2026-03-14", Name: "Agent Summit"},
		// Ranking term only in venue blob: +1.
		{ID: "E2", Date: "2026-03-14", Name: "Agentless Ops", VenueName: "Agent House"},
	}
	preset := shortlist.Preset{
		Topic:        "agents",
		PrimaryQuery: "agent",
		PrimaryMode:  search.ModeAny,
		RankingTerms: []string{"summit"},
	}

	days := shortlist.Rank(events, preset, 10)
	require.Len(t, days, 1)
	require.Len(t, days[0].Results, 2)

	top := days[0].Results[0]
	assert.Equal(t, "E1", top.Event.ID)
	assert.Equal(t, top.Score+3, top.RankScore)

	second := days[0].Results[1]
	assert.Equal(t, second.Score, second.RankScore)
}

func TestRankPanelBoost(t *testing.T) {
	events := []event.Event{
		{ID: "E1", Date: "2026-03-14", Name: "AI Talk", EventType: "talk"},
		{ID: "E2", Date: "2026-03-14", Name: "AI Talk", EventType: "panel"},
	}
	preset := shortlist.Preset{Topic: "ai", PrimaryQuery: "ai", PrimaryMode: search.ModeAny}

	days := shortlist.Rank(events, preset, 10)
	require.Len(t, days, 1)
	require.Len(t, days[0].Results, 2)

	assert.Equal(t, "E2", days[0].Results[0].Event.ID)
	assert.Equal(t, days[0].Results[1].RankScore+2, days[0].Results[0].RankScore)
}

func TestRankTiesUseDisplayOrder(t *testing.T) {
	events := []event.Event{
		{ID: "E2", Date: "2026-03-14", Name: "AI", StartTime: "2026-03-14T11:00:00-05:00"},
		{ID: "E1", Date: "2026-03-14", Name: "AI", StartTime: "2026-03-14T09:00:00-05:00"},
	}
	preset := shortlist.Preset{Topic: "ai", PrimaryQuery: "ai", PrimaryMode: search.ModeAny}

	days := shortlist.Rank(events, preset, 10)
	require.Len(t, days, 1)
	require.Len(t, days[0].Results, 2)
	assert.Equal(t, "E1", days[0].Results[0].Event.ID)
}

func TestPresetForUnknownTopicDegrades(t *testing.T) {
	p := shortlist.PresetFor("robot dogs")
	assert.Equal(t, "robot dogs", p.Topic)
	assert.Equal(t, "robot dogs", p.PrimaryQuery)
	assert.Equal(t, search.ModeAny, p.PrimaryMode)
	assert.Empty(t, p.FallbackQuery)
	assert.NotEmpty(t, p.RankingTerms)
}

func TestPresetForKnownTopic(t *testing.T) {
	p := shortlist.PresetFor("Agents")
	assert.Equal(t, "agents", p.Topic)
	assert.NotEmpty(t, p.FallbackQuery)
}
