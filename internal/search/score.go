package search

import (
	"sort"

	"github.com/max2697/SXSW-for-agents/internal/event"
)

// scoreTokens scans every field's token set for every query token. Each
// field hit contributes the field weight; a token with at least one hit
// joins the matched-term list once, in query order. A flat bonus of one
// point per matched term is added at the end.
func scoreTokens(idx *Index, tokens []string) (score int, terms []string, fields []string) {
	terms = make([]string, 0, len(tokens))
	hitFields := make(map[event.Field]struct{})

	for _, tok := range tokens {
		hit := false
		for _, f := range event.Fields {
			if _, ok := idx.TokensByField[f][tok]; ok {
				score += f.Weight()
				hitFields[f] = struct{}{}
				hit = true
			}
		}
		if hit {
			terms = append(terms, tok)
		}
	}

	score += len(terms)

	fields = make([]string, 0, len(hitFields))
	for f := range hitFields {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)
	return score, terms, fields
}
