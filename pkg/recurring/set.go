package recurring

import (
	"fmt"
	"time"
)

// Template is a recurring description template.
type Template struct {
	Key         string // Stable identifier (e.g. "water")
	Name        string // Label shown on the recurring tab
	Description string // Template text with placeholders
}

// Item is a Template rendered for a reference date.
type Item struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Text string `json:"text"`
}

// Set is an ordered collection of templates sharing one month-name table.
type Set struct {
	templates []Template
	byKey     map[string]int
	names     MonthNames
}

// NewSet creates a Set. Keys must be unique and non-empty.
func NewSet(templates []Template, names MonthNames) (*Set, error) {
	set := &Set{
		templates: make([]Template, 0, len(templates)),
		byKey:     make(map[string]int, len(templates)),
		names:     names,
	}

	for _, t := range templates {
		if t.Key == "" {
			return nil, fmt.Errorf("recurring template %q has no key", t.Name)
		}
		if _, ok := set.byKey[t.Key]; ok {
			return nil, fmt.Errorf("duplicate recurring template key: %s", t.Key)
		}
		set.byKey[t.Key] = len(set.templates)
		set.templates = append(set.templates, t)
	}

	return set, nil
}

// Len returns the number of templates.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.templates)
}

// Lookup returns the template with the given key.
func (s *Set) Lookup(key string) (Template, bool) {
	if s == nil {
		return Template{}, false
	}
	i, ok := s.byKey[key]
	if !ok {
		return Template{}, false
	}
	return s.templates[i], true
}

// Render renders the template with the given key for date.
func (s *Set) Render(key string, date time.Time) (Item, error) {
	t, ok := s.Lookup(key)
	if !ok {
		return Item{}, fmt.Errorf("unknown recurring item: %s", key)
	}
	return s.render(t, date), nil
}

// Expand renders every template for date, in declaration order.
func (s *Set) Expand(date time.Time) []Item {
	if s == nil {
		return nil
	}
	items := make([]Item, 0, len(s.templates))
	for _, t := range s.templates {
		items = append(items, s.render(t, date))
	}
	return items
}

// Match returns the first item whose rendered text equals text exactly.
func (s *Set) Match(text string, date time.Time) (Item, bool) {
	for _, item := range s.Expand(date) {
		if item.Text == text {
			return item, true
		}
	}
	return Item{}, false
}

func (s *Set) render(t Template, date time.Time) Item {
	return Item{
		Key:  t.Key,
		Name: t.Name,
		Text: Render(t.Description, date, s.names),
	}
}
