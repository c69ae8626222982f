package search

import (
	"fmt"
	"strings"
)

// Mode selects how query tokens are combined against an event.
type Mode string

const (
	ModeAny    Mode = "any"    // at least one token must hit a field
	ModeAll    Mode = "all"    // every distinct token must hit some field
	ModePhrase Mode = "phrase" // the query must appear as a substring of a blob
)

// Score bonuses on top of per-field weights.
const (
	allModeBonus = 3 // exact multi-term coverage beats "any" on equal overlap
	phraseBonus  = 4 // exact phrase proximity beats incidental token overlap
)

// ParseMode validates a caller-supplied mode string. The empty string
// defaults to ModeAny. The matcher itself assumes a valid mode; this is
// the boundary where bad input gets rejected.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeAny, nil
	case ModeAny, ModeAll, ModePhrase:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid query mode %q (want any, all or phrase)", s)
}

// MatchResult reports the outcome of evaluating one query against one event.
type MatchResult struct {
	Matches       bool     `json:"matches"`
	Score         int      `json:"score"`
	MatchedTerms  []string `json:"matchedTerms"`  // canonical tokens, query order
	MatchedFields []string `json:"matchedFields"` // field names, sorted
}

func noMatch() MatchResult {
	return MatchResult{MatchedTerms: []string{}, MatchedFields: []string{}}
}

// QueryTokens tokenizes and canonicalizes a query into a de-duplicated
// list preserving first-occurrence order.
func QueryTokens(query string) []string {
	raw := Tokenize(query)
	seen := make(map[string]struct{}, len(raw))
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		canonical := Canonicalize(tok)
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		tokens = append(tokens, canonical)
	}
	return tokens
}

// Evaluate runs a query against one event index under the given mode.
// A blank query trivially matches with score 0, so filter-only requests
// flow through the same path.
func Evaluate(idx *Index, query string, mode Mode) MatchResult {
	tokens := QueryTokens(query)
	if len(tokens) == 0 {
		result := noMatch()
		result.Matches = true
		return result
	}

	switch mode {
	case ModeAny:
		score, terms, fields := scoreTokens(idx, tokens)
		if len(terms) == 0 {
			return noMatch()
		}
		return MatchResult{Matches: true, Score: score, MatchedTerms: terms, MatchedFields: fields}

	case ModeAll:
		score, terms, fields := scoreTokens(idx, tokens)
		if len(terms) != len(tokens) {
			return noMatch()
		}
		return MatchResult{Matches: true, Score: score + allModeBonus, MatchedTerms: terms, MatchedFields: fields}

	case ModePhrase:
		raw := Normalize(query)
		canonical := CanonicalizeText(query)
		if !strings.Contains(idx.RawBlob, raw) && !strings.Contains(idx.CanonicalBlob, canonical) {
			return noMatch()
		}
		score, terms, fields := scoreTokens(idx, tokens)
		return MatchResult{Matches: true, Score: score + phraseBonus, MatchedTerms: terms, MatchedFields: fields}
	}

	// Unrecognized modes are a caller contract violation; stay total and
	// report no match rather than panicking.
	return noMatch()
}
