package description

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shunichi-ikebuchi/description-editor/pkg/recurring"
)

// QuantityMark precedes the repeat count when encoding. AltQuantityMark is
// also accepted when decoding.
const (
	QuantityMark    = "×"
	AltQuantityMark = "*"
)

var (
	// base, quantity, note
	annotationPattern = regexp.MustCompile(`(?s)^(.*?)(?:[*×]([0-9]+))?(?:\(([^()]*)\))?$`)

	// tag, route, from, to
	busPattern = regexp.MustCompile(`(?s)^([^—]+)—([^—]+)—([^—→]+)→(.+)$`)

	// tag, from, arrow, to
	travelPattern = regexp.MustCompile(`(?s)^([^—]+)—([^—→↔]+)([→↔])(.+)$`)
)

// RecurringMatcher finds the recurring item whose text, rendered for date,
// equals a description.
type RecurringMatcher interface {
	Match(text string, date time.Time) (recurring.Item, bool)
}

// ParseAnnotation splits the annotation suffix off a description. A repeat
// count of 1 is returned as 0 since it is never rendered. A count too large
// for an int is not an annotation and stays in the base.
func ParseAnnotation(desc string) (string, Annotation) {
	loc := annotationPattern.FindStringSubmatchIndex(desc)
	if loc == nil {
		return desc, Annotation{}
	}

	base := desc[loc[2]:loc[3]]
	var annotation Annotation
	if loc[6] >= 0 {
		annotation.Note = desc[loc[6]:loc[7]]
	}
	if loc[4] >= 0 {
		n, err := strconv.Atoi(desc[loc[4]:loc[5]])
		if err != nil {
			// Keep the mark and digits; only the note is split off.
			end := len(desc)
			if loc[6] >= 0 {
				end = loc[6] - 1
			}
			return desc[:end], annotation
		}
		if n > 1 {
			annotation.Quantity = n
		}
	}
	return base, annotation
}

// StripAnnotation returns desc without its annotation suffix.
func StripAnnotation(desc string) string {
	base, _ := ParseAnnotation(desc)
	return base
}

// Suffix renders the annotation: "×N" when N > 1, then "(note)" when the
// note is not empty.
func (a Annotation) Suffix() string {
	var sb strings.Builder
	if a.Quantity > 1 {
		sb.WriteString(QuantityMark)
		sb.WriteString(strconv.Itoa(a.Quantity))
	}
	if a.Note != "" {
		sb.WriteString("(")
		sb.WriteString(a.Note)
		sb.WriteString(")")
	}
	return sb.String()
}

// Apply replaces any annotation suffix of desc with a.
func (a Annotation) Apply(desc string) string {
	return StripAnnotation(desc) + a.Suffix()
}

// Decode splits desc into the fields of the plane that claims it. Planes are
// tried in the order recurring, bus, travel, general; general always
// matches, so Decode never fails. matcher may be nil.
func Decode(desc string, date time.Time, matcher RecurringMatcher) Decoded {
	base, annotation := ParseAnnotation(desc)

	if matcher != nil {
		if item, ok := matcher.Match(desc, date); ok {
			return Decoded{
				Tab:        TabRecurring,
				Fields:     RecurringFields{Key: item.Key, Text: item.Text},
				Annotation: Annotation{},
			}
		}
		if !annotation.IsZero() {
			if item, ok := matcher.Match(base, date); ok {
				return Decoded{
					Tab:        TabRecurring,
					Fields:     RecurringFields{Key: item.Key, Text: item.Text},
					Annotation: annotation,
				}
			}
		}
	}

	if found := busPattern.FindStringSubmatch(base); found != nil {
		return Decoded{
			Tab:        TabBus,
			Fields:     BusFields{Tag: found[1], Route: found[2], From: found[3], To: found[4]},
			Annotation: annotation,
		}
	}

	if found := travelPattern.FindStringSubmatch(base); found != nil {
		return Decoded{
			Tab:        TabTravel,
			Fields:     TravelFields{Tag: found[1], From: found[2], Direction: Direction(found[3]), To: found[4]},
			Annotation: annotation,
		}
	}

	return Decoded{
		Tab:        TabGeneral,
		Fields:     decodeGeneral(base),
		Annotation: annotation,
	}
}

func decodeGeneral(base string) GeneralFields {
	tag, text, found := strings.Cut(base, Separator)
	if !found || tag == "" {
		return GeneralFields{Text: base}
	}
	return GeneralFields{Tag: tag, Text: text}
}

// EncodeBase renders the fields of a plane without any annotation.
func EncodeBase(fields Fields) string {
	switch f := fields.(type) {
	case GeneralFields:
		if f.Tag == "" {
			return f.Text
		}
		return f.Tag + Separator + f.Text
	case TravelFields:
		direction := f.Direction
		if direction == "" {
			direction = DefaultDirection
		}
		return f.Tag + Separator + f.From + string(direction) + f.To
	case BusFields:
		return f.Tag + Separator + f.Route + Separator + f.From + string(OneWay) + f.To
	case RecurringFields:
		return f.Text
	}
	return ""
}

// Encode renders the fields of a plane followed by the annotation suffix.
func Encode(fields Fields, annotation Annotation) string {
	return EncodeBase(fields) + annotation.Suffix()
}
