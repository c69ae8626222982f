package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/max2697/SXSW-for-agents/internal/search"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"ai", "and", "the", "future"}, search.Tokenize("AI and the Future"))
	assert.Equal(t, []string{"web3", "101"}, search.Tokenize("  Web3:  101! "))
	assert.Empty(t, search.Tokenize(""))
	assert.Empty(t, search.Tokenize("  ...  "))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ai and the future", search.Normalize("  AI   and\tthe Future "))
	assert.Equal(t, "", search.Normalize("   "))
}

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, "ai", search.Canonicalize("llm"))
	assert.Equal(t, "ai", search.Canonicalize("gpt"))
	assert.Equal(t, "developer", search.Canonicalize("programming"))
	assert.Equal(t, "agent", search.Canonicalize("copilots"))

	// Unknown tokens pass through.
	assert.Equal(t, "barbecue", search.Canonicalize("barbecue"))
}

func TestCanonicalizeIdempotent(t *testing.T) {
	for _, g := range search.DefaultSynonymGroups {
		for _, v := range g.Variants {
			once := search.Canonicalize(v)
			assert.Equal(t, once, search.Canonicalize(once), "canonicalize(%q) not idempotent", v)
		}
	}
	assert.Equal(t, "unknown", search.Canonicalize(search.Canonicalize("unknown")))
}

func TestCanonicalizeText(t *testing.T) {
	assert.Equal(t, "ai tooling for developer", search.CanonicalizeText("LLM tools, for programmers!"))
	assert.Equal(t, "", search.CanonicalizeText(""))
}
