package shortlist

import (
	"strings"

	"github.com/max2697/SXSW-for-agents/internal/search"
)

// Preset defines how one shortlist topic is ranked: a primary query, an
// optional fallback tried only when the primary finds nothing in a date
// bucket, and the terms used by the boost function.
type Preset struct {
	Topic         string      `yaml:"topic" json:"topic"`
	PrimaryQuery  string      `yaml:"primary_query" json:"primaryQuery"`
	PrimaryMode   search.Mode `yaml:"primary_mode" json:"primaryMode"`
	FallbackQuery string      `yaml:"fallback_query" json:"fallbackQuery,omitempty"`
	FallbackMode  search.Mode `yaml:"fallback_mode" json:"fallbackMode,omitempty"`
	RankingTerms  []string    `yaml:"ranking_terms" json:"rankingTerms"`
}

// genericRankingTerms backs shortlists for topics without a preset.
var genericRankingTerms = []string{"ai", "agent", "developer"}

// DefaultPresets ships the built-in topics. Replaceable at startup via
// LoadPresets.
var DefaultPresets = []Preset{
	{
		Topic:         "agents",
		PrimaryQuery:  "ai agents",
		PrimaryMode:   search.ModeAll,
		FallbackQuery: "agent",
		FallbackMode:  search.ModeAny,
		RankingTerms:  []string{"agent", "autonomous", "copilot"},
	},
	{
		Topic:         "ai",
		PrimaryQuery:  "ai",
		PrimaryMode:   search.ModeAny,
		FallbackQuery: "machine learning",
		FallbackMode:  search.ModeAny,
		RankingTerms:  []string{"ai", "llm", "genai"},
	},
	{
		Topic:         "developer",
		PrimaryQuery:  "developer tooling",
		PrimaryMode:   search.ModeAll,
		FallbackQuery: "developer",
		FallbackMode:  search.ModeAny,
		RankingTerms:  []string{"developer", "api", "sdk"},
	},
}

var presetsByTopic = indexPresets(DefaultPresets)

func indexPresets(presets []Preset) map[string]Preset {
	byTopic := make(map[string]Preset, len(presets))
	for _, p := range presets {
		byTopic[strings.ToLower(p.Topic)] = p
	}
	return byTopic
}

// LoadPresets replaces the topic table. Must be called during startup,
// before the engine serves shortlists.
func LoadPresets(presets []Preset) {
	presetsByTopic = indexPresets(presets)
}

// PresetFor looks up the preset for a topic. Unknown topics degrade to a
// generic preset: the topic string itself as an any-mode query with the
// generic ranking terms and no fallback.
func PresetFor(topic string) Preset {
	if p, ok := presetsByTopic[strings.ToLower(topic)]; ok {
		return p
	}
	return Preset{
		Topic:        topic,
		PrimaryQuery: topic,
		PrimaryMode:  search.ModeAny,
		RankingTerms: genericRankingTerms,
	}
}
