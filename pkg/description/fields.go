package description

// Fields holds the values of one tab plane. It is implemented only by the
// field types of this package.
type Fields interface {
	Tab() Tab
	tag() string
}

// GeneralFields is the general plane: an optional tag and free text.
type GeneralFields struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

// TravelFields is the travel plane: a trip between two places.
type TravelFields struct {
	Tag       string    `json:"tag"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Direction Direction `json:"direction"`
}

// BusFields is the bus plane: a bus route between two stops.
type BusFields struct {
	Tag   string `json:"tag"`
	Route string `json:"route"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// RecurringFields is the recurring plane: the selected recurring item and
// its template rendered for the reference date.
type RecurringFields struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

func (GeneralFields) Tab() Tab   { return TabGeneral }
func (TravelFields) Tab() Tab    { return TabTravel }
func (BusFields) Tab() Tab       { return TabBus }
func (RecurringFields) Tab() Tab { return TabRecurring }

func (f GeneralFields) tag() string   { return f.Tag }
func (f TravelFields) tag() string    { return f.Tag }
func (f BusFields) tag() string       { return f.Tag }
func (f RecurringFields) tag() string { return f.Key }

// EmptyFields returns the reset state of a tab plane.
func EmptyFields(tab Tab) Fields {
	switch tab {
	case TabTravel:
		return TravelFields{Direction: DefaultDirection}
	case TabBus:
		return BusFields{}
	case TabRecurring:
		return RecurringFields{}
	default:
		return GeneralFields{}
	}
}

// Annotation is the repeat count and note appended to any description.
type Annotation struct {
	Quantity int    `json:"quantity,omitempty"`
	Note     string `json:"note,omitempty"`
}

// IsZero reports whether the annotation renders to nothing.
func (a Annotation) IsZero() bool {
	return a.Quantity <= 1 && a.Note == ""
}

// Decoded is the result of decoding a description.
type Decoded struct {
	Tab        Tab
	Fields     Fields
	Annotation Annotation
}

// Tag returns the tag of the decoded plane. For the recurring plane it is
// the recurring item key.
func (d Decoded) Tag() string {
	if d.Fields == nil {
		return ""
	}
	return d.Fields.tag()
}
