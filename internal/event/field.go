package event

// Field identifies one searchable portion of an event record.
type Field string

const (
	FieldName         Field = "name"
	FieldCategory     Field = "category"
	FieldVenue        Field = "venue"
	FieldEventType    Field = "event_type"
	FieldContributors Field = "contributors"
)

// Fields lists the searchable fields in the order they are concatenated
// into the search blobs.
var Fields = []Field{FieldName, FieldCategory, FieldVenue, FieldEventType, FieldContributors}

// fieldWeights is the score contribution of one query-token hit per field.
var fieldWeights = map[Field]int{
	FieldName:         5,
	FieldContributors: 4,
	FieldCategory:     2,
	FieldVenue:        2,
	FieldEventType:    2,
}

// Weight returns the scoring weight for the field, defaulting to 1 for
// fields outside the known set.
func (f Field) Weight() int {
	if w, ok := fieldWeights[f]; ok {
		return w
	}
	return 1
}

// Text extracts the raw text of the field from an event.
func (e Event) Text(f Field) string {
	switch f {
	case FieldName:
		return e.Name
	case FieldCategory:
		return e.Category
	case FieldVenue:
		return e.VenueName
	case FieldEventType:
		return e.EventType
	case FieldContributors:
		return e.ContributorNames()
	}
	return ""
}
