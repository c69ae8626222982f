package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/max2697/SXSW-for-agents/internal/event"
)

func TestFieldWeights(t *testing.T) {
	assert.Equal(t, 5, event.FieldName.Weight())
	assert.Equal(t, 4, event.FieldContributors.Weight())
	assert.Equal(t, 2, event.FieldCategory.Weight())
	assert.Equal(t, 2, event.FieldVenue.Weight())
	assert.Equal(t, 2, event.FieldEventType.Weight())

	// Unknown fields fall back to the defensive default.
	assert.Equal(t, 1, event.Field("description").Weight())
}

func TestFieldText(t *testing.T) {
	ev := event.Event{
		Name:      "AI Panel",
		Category:  "Technology",
		EventType: "panel",
		VenueName: "Convention Center",
		Contributors: []event.Contributor{
			{Name: "Jane Doe"},
			{Name: ""},
			{Name: "John Roe"},
		},
	}

	assert.Equal(t, "AI Panel", ev.Text(event.FieldName))
	assert.Equal(t, "Technology", ev.Text(event.FieldCategory))
	assert.Equal(t, "panel", ev.Text(event.FieldEventType))
	assert.Equal(t, "Convention Center", ev.Text(event.FieldVenue))
	assert.Equal(t, "Jane Doe John Roe", ev.Text(event.FieldContributors))
	assert.Equal(t, "", ev.Text(event.Field("description")))
}

func TestContributorNamesEmpty(t *testing.T) {
	assert.Equal(t, "", event.Event{}.ContributorNames())
}
