// Package description implements the description editor of a journal-entry
// line item: a codec between a description string and the structured fields
// of the editor's tab planes, field validation, and the per-side editor state.
//
// A description is built from segments joined by an em dash, optionally
// followed by an annotation suffix:
//
//	Lunch—Sandwich                 general
//	Taxi—Station→Office            travel (one way)
//	Flight—Taipei↔Tokyo            travel (round trip)
//	Bus—307—Station→Office×2(late) bus, repeated twice, with a note
package description

import (
	"fmt"
	"strings"
)

// Separator joins the segments of a description.
const Separator = "—"

// Tab is a description-entry plane of the editor.
type Tab int

const (
	TabGeneral Tab = iota
	TabTravel
	TabBus
	TabRecurring
)

var tabNames = [...]string{"general", "travel", "bus", "recurring"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return fmt.Sprintf("Tab(%d)", int(t))
	}
	return tabNames[t]
}

// Tabs lists every tab in display order.
func Tabs() []Tab {
	return []Tab{TabGeneral, TabTravel, TabBus, TabRecurring}
}

// ParseTab parses a tab name.
func ParseTab(s string) (Tab, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range tabNames {
		if n == name {
			return Tab(i), nil
		}
	}
	return TabGeneral, fmt.Errorf("unknown tab: %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tab) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tab) UnmarshalText(text []byte) error {
	parsed, err := ParseTab(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Direction is the arrow between the origin and destination of a trip.
type Direction string

const (
	OneWay    Direction = "→"
	RoundTrip Direction = "↔"
)

// DefaultDirection is preselected when the travel plane is reset.
const DefaultDirection = OneWay

// Directions lists the known direction glyphs.
func Directions() []Direction {
	return []Direction{OneWay, RoundTrip}
}

// ParseDirection accepts either the glyph or its name.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "one-way", "oneway", string(OneWay):
		return OneWay, nil
	case "round-trip", "roundtrip", string(RoundTrip):
		return RoundTrip, nil
	}
	return DefaultDirection, fmt.Errorf("unknown direction: %q", s)
}

// Name returns the human-readable name of the direction.
func (d Direction) Name() string {
	if d == RoundTrip {
		return "round-trip"
	}
	return "one-way"
}

// Side is the debit or credit side of a journal entry.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// ParseSide parses "debit" or "credit".
func ParseSide(s string) (Side, error) {
	switch Side(strings.ToLower(strings.TrimSpace(s))) {
	case SideDebit:
		return SideDebit, nil
	case SideCredit:
		return SideCredit, nil
	}
	return "", fmt.Errorf("unknown side: %q", s)
}

// Account is an account code and its display title.
type Account struct {
	Code  string `json:"code" yaml:"code"`
	Title string `json:"title" yaml:"title"`
}

func (a Account) String() string {
	if a.Title == "" {
		return a.Code
	}
	return a.Code + " " + a.Title
}
