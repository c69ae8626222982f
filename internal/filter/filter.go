// Package filter narrows the event list before the search core runs.
package filter

import (
	"strings"

	"github.com/max2697/SXSW-for-agents/internal/event"
)

// Filters holds the optional pre-search criteria from a request. Date is an
// exact match; the rest are case-insensitive substring matches.
type Filters struct {
	Date        string
	Category    string
	Venue       string
	Type        string
	Contributor string
}

// IsZero reports whether no criteria are set.
func (f Filters) IsZero() bool {
	return f == Filters{}
}

// Apply returns the events passing every set criterion, preserving input
// order. A zero filter returns the input slice unchanged.
func Apply(events []event.Event, f Filters) []event.Event {
	if f.IsZero() {
		return events
	}
	out := make([]event.Event, 0, len(events))
	for _, ev := range events {
		if f.matches(ev) {
			out = append(out, ev)
		}
	}
	return out
}

func (f Filters) matches(ev event.Event) bool {
	if f.Date != "" && ev.Date != f.Date {
		return false
	}
	if !containsFold(ev.Category, f.Category) {
		return false
	}
	if !containsFold(ev.VenueName, f.Venue) {
		return false
	}
	if !containsFold(ev.EventType, f.Type) {
		return false
	}
	if f.Contributor != "" && !containsFold(ev.ContributorNames(), f.Contributor) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
