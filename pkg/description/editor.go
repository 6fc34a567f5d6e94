package description

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shunichi-ikebuchi/description-editor/pkg/recurring"
)

// EditorOptions are the collaborators of an Editor.
type EditorOptions struct {
	// Recurring holds the recurring templates. Optional.
	Recurring *recurring.Set
	// Suggester supplies the suggested accounts of a tag. Optional.
	Suggester Suggester
}

// Result is what an editor hands to its line item on submit.
type Result struct {
	Side        Side     `json:"side"`
	Tab         Tab      `json:"tab"`
	Tag         string   `json:"tag,omitempty"`
	Description string   `json:"description"`
	Account     *Account `json:"account,omitempty"`
}

// Editor is the description editor of one side of a journal entry. It keeps
// the fields of every plane, the annotation and the composed description.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	side      Side
	recurring *recurring.Set
	suggester Suggester

	date        time.Time
	tab         Tab
	planes      [len(tabNames)]Fields
	annotation  Annotation
	description string

	suggestions []Account
	selected    *Account
	// suggestedFor is the tab and tag the suggestions were looked up for.
	suggestedFor string
}

// NewEditor creates an editor for side in its reset state.
func NewEditor(side Side, opts EditorOptions) *Editor {
	e := &Editor{
		side:      side,
		recurring: opts.Recurring,
		suggester: opts.Suggester,
		date:      time.Now(),
	}
	e.Reset()
	return e
}

// Reset returns every plane to its empty state and activates the general plane.
func (e *Editor) Reset() {
	e.tab = TabGeneral
	for _, tab := range Tabs() {
		e.planes[tab] = EmptyFields(tab)
	}
	e.annotation = Annotation{}
	e.description = ""
	e.clearSuggestions()
}

// Open resets the editor and populates it from an existing description,
// activating the plane that claims it. The description is composed again
// from the decoded fields, so a non-canonical annotation such as "×1" or
// "*2" comes back in its encoded form.
func (e *Editor) Open(desc string, date time.Time) Decoded {
	e.Reset()
	e.date = date

	decoded := Decode(desc, date, e.matcher())
	e.tab = decoded.Tab
	e.planes[decoded.Tab] = decoded.Fields
	e.annotation = decoded.Annotation
	e.compose()

	e.suggest(decoded.Tab, decoded.Tag())
	return decoded
}

// SetDate changes the reference date. A selected recurring item is
// rendered again for the new month.
func (e *Editor) SetDate(date time.Time) {
	e.date = date

	f, ok := e.planes[TabRecurring].(RecurringFields)
	if !ok || f.Key == "" || e.recurring == nil {
		return
	}
	item, err := e.recurring.Render(f.Key, date)
	if err != nil {
		return
	}
	e.planes[TabRecurring] = RecurringFields{Key: item.Key, Text: item.Text}
	if e.tab == TabRecurring {
		e.compose()
	}
}

// SwitchTab activates a plane and composes the description from its
// fields. The suggested accounts are cleared.
func (e *Editor) SwitchTab(tab Tab) {
	if tab == e.tab || tab < 0 || int(tab) >= len(e.planes) {
		return
	}
	e.tab = tab
	e.compose()
	e.clearSuggestions()
}

// Update stores the fields of a plane, activates it and recomposes the
// description. Suggestions are looked up again only when the tag changes,
// so an account chosen with SelectAccount survives edits of other fields.
func (e *Editor) Update(fields Fields) {
	if fields == nil {
		return
	}
	if f, ok := fields.(TravelFields); ok && f.Direction == "" {
		f.Direction = DefaultDirection
		fields = f
	}

	tab := fields.Tab()
	e.tab = tab
	e.planes[tab] = fields
	e.compose()
	if suggestionKey(tab, fields.tag()) != e.suggestedFor {
		e.suggest(tab, fields.tag())
	}
}

// SelectRecurring selects a recurring item; its template rendered for the
// reference date replaces the description.
func (e *Editor) SelectRecurring(key string) error {
	if e.recurring == nil {
		return fmt.Errorf("no recurring items configured")
	}
	item, err := e.recurring.Render(key, e.date)
	if err != nil {
		return err
	}
	e.Update(RecurringFields{Key: item.Key, Text: item.Text})
	return nil
}

// SetAnnotation replaces the annotation and recomposes the description.
func (e *Editor) SetAnnotation(annotation Annotation) {
	if annotation.Quantity < 0 {
		annotation.Quantity = 0
	}
	e.annotation = annotation
	e.compose()
}

// SelectAccount overrides the preselected suggested account.
func (e *Editor) SelectAccount(account Account) {
	e.selected = &account
}

// Submit validates the active plane and returns the description and the
// selected account. On failure the error is ValidationErrors.
func (e *Editor) Submit() (Result, error) {
	fields := e.planes[e.tab]
	if err := Validate(fields); err != nil {
		return Result{}, err
	}

	result := Result{
		Side:        e.side,
		Tab:         e.tab,
		Tag:         fields.tag(),
		Description: e.description,
	}
	if e.selected != nil {
		account := *e.selected
		result.Account = &account
	}
	return result, nil
}

// Side returns the side the editor belongs to.
func (e *Editor) Side() Side { return e.side }

// Tab returns the active plane.
func (e *Editor) Tab() Tab { return e.tab }

// Date returns the reference date.
func (e *Editor) Date() time.Time { return e.date }

// Fields returns the fields of the active plane.
func (e *Editor) Fields() Fields { return e.planes[e.tab] }

// Plane returns the fields of any plane.
func (e *Editor) Plane(tab Tab) Fields {
	if tab < 0 || int(tab) >= len(e.planes) {
		return nil
	}
	return e.planes[tab]
}

// Annotation returns the current annotation.
func (e *Editor) Annotation() Annotation { return e.annotation }

// Description returns the composed description.
func (e *Editor) Description() string { return e.description }

// Suggestions returns the suggested accounts of the current tag.
func (e *Editor) Suggestions() []Account {
	return append([]Account(nil), e.suggestions...)
}

// SelectedAccount returns the preselected or chosen account.
func (e *Editor) SelectedAccount() (Account, bool) {
	if e.selected == nil {
		return Account{}, false
	}
	return *e.selected, true
}

func (e *Editor) compose() {
	e.description = Encode(e.planes[e.tab], e.annotation)
}

func (e *Editor) matcher() RecurringMatcher {
	if e.recurring == nil {
		return nil
	}
	return e.recurring
}

func suggestionKey(tab Tab, tag string) string {
	return tab.String() + "\x00" + strings.TrimSpace(tag)
}

func (e *Editor) suggest(tab Tab, tag string) {
	e.clearSuggestions()
	e.suggestedFor = suggestionKey(tab, tag)
	if e.suggester == nil || strings.TrimSpace(tag) == "" {
		return
	}

	accounts, err := e.suggester.SuggestAccounts(tab, tag)
	if err != nil {
		slog.Warn("Failed to suggest accounts", "side", e.side, "tab", tab, "tag", tag, "error", err)
		return
	}
	if len(accounts) == 0 {
		return
	}

	e.suggestions = accounts
	first := accounts[0]
	e.selected = &first
}

func (e *Editor) clearSuggestions() {
	e.suggestions = nil
	e.selected = nil
	e.suggestedFor = ""
}

// EditorPair holds the debit and credit editors of one journal entry form.
type EditorPair struct {
	Debit  *Editor
	Credit *Editor
}

// NewEditorPair creates both editors with the same collaborators.
func NewEditorPair(opts EditorOptions) *EditorPair {
	return &EditorPair{
		Debit:  NewEditor(SideDebit, opts),
		Credit: NewEditor(SideCredit, opts),
	}
}

// Editor returns the editor of side.
func (p *EditorPair) Editor(side Side) (*Editor, error) {
	switch side {
	case SideDebit:
		return p.Debit, nil
	case SideCredit:
		return p.Credit, nil
	}
	return nil, fmt.Errorf("unknown side: %q", side)
}
