package event

import "strings"

// UnknownDate is the sentinel used when a source record carries no usable date.
const UnknownDate = "unknown"

// Contributor is a speaker, performer or other person attached to an event.
type Contributor struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Event is a single catalog entry. Records are supplied by the snapshot
// layer and are read-only to everything downstream.
type Event struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Category     string        `json:"category,omitempty"`
	EventType    string        `json:"eventType,omitempty"`
	VenueName    string        `json:"venueName,omitempty"`
	Contributors []Contributor `json:"contributors,omitempty"`
	StartTime    string        `json:"startTime,omitempty"` // ISO-8601, empty when TBD
	EndTime      string        `json:"endTime,omitempty"`
	Date         string        `json:"date"` // YYYY-MM-DD or UnknownDate
}

// ContributorNames joins all contributor names with single spaces.
func (e Event) ContributorNames() string {
	names := make([]string, 0, len(e.Contributors))
	for _, c := range e.Contributors {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}
	return strings.Join(names, " ")
}
