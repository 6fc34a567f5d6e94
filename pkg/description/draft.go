package description

import "fmt"

// Draft is the flat form of a plane's fields, as entered on a command line
// or sent in a request body. Only the fields used by Tab are read.
type Draft struct {
	Tab       Tab    `json:"tab"`
	Tag       string `json:"tag,omitempty"`
	Text      string `json:"text,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Direction string `json:"direction,omitempty"`
	Route     string `json:"route,omitempty"`
	Key       string `json:"key,omitempty"`
}

// Fields converts the draft into the fields of its plane. A recurring draft
// carries only the key; the text is rendered by the editor.
func (d Draft) Fields() (Fields, error) {
	switch d.Tab {
	case TabGeneral:
		return GeneralFields{Tag: d.Tag, Text: d.Text}, nil
	case TabTravel:
		direction, err := ParseDirection(d.Direction)
		if err != nil {
			return nil, err
		}
		return TravelFields{Tag: d.Tag, From: d.From, To: d.To, Direction: direction}, nil
	case TabBus:
		return BusFields{Tag: d.Tag, Route: d.Route, From: d.From, To: d.To}, nil
	case TabRecurring:
		return RecurringFields{Key: d.Key}, nil
	}
	return nil, fmt.Errorf("unknown tab: %v", d.Tab)
}

// Fill loads a draft into the editor: recurring drafts select the item by
// key, every other plane is updated with the draft's fields.
func (e *Editor) Fill(d Draft) error {
	fields, err := d.Fields()
	if err != nil {
		return err
	}
	if f, ok := fields.(RecurringFields); ok {
		return e.SelectRecurring(f.Key)
	}
	e.Update(fields)
	return nil
}
