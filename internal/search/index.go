package search

import (
	"strings"

	"github.com/max2697/SXSW-for-agents/internal/event"
)

// Index is the per-event search structure. It is rebuilt from the event on
// every query evaluation and owned by that evaluation alone; building twice
// from the same event yields identical structures.
type Index struct {
	TokensByField map[event.Field]map[string]struct{}
	RawBlob       string // lowercased field values in field order, space-joined
	CanonicalBlob string // RawBlob with every token replaced by its canonical form
}

// BuildIndex derives the search index for one event: a canonical token set
// per field plus the raw and canonical blobs used for phrase matching.
func BuildIndex(ev event.Event) *Index {
	tokensByField := make(map[event.Field]map[string]struct{}, len(event.Fields))
	parts := make([]string, 0, len(event.Fields))

	for _, f := range event.Fields {
		text := ev.Text(f)
		set := make(map[string]struct{})
		for _, tok := range Tokenize(text) {
			set[Canonicalize(tok)] = struct{}{}
		}
		tokensByField[f] = set
		if normalized := Normalize(text); normalized != "" {
			parts = append(parts, normalized)
		}
	}

	raw := strings.Join(parts, " ")
	return &Index{
		TokensByField: tokensByField,
		RawBlob:       raw,
		CanonicalBlob: CanonicalizeText(raw),
	}
}
