package description

import "strings"

// Suggester returns the accounts associated with a tag on a plane. For the
// recurring plane the tag is the recurring item key.
type Suggester interface {
	SuggestAccounts(tab Tab, tag string) ([]Account, error)
}

// SuggesterFunc adapts a function to a Suggester.
type SuggesterFunc func(tab Tab, tag string) ([]Account, error)

// SuggestAccounts calls f.
func (f SuggesterFunc) SuggestAccounts(tab Tab, tag string) ([]Account, error) {
	return f(tab, tag)
}

// Suggesters asks each suggester in order and returns the first non-empty
// answer. An error is returned only when no suggester had an answer.
type Suggesters []Suggester

// SuggestAccounts implements Suggester.
func (s Suggesters) SuggestAccounts(tab Tab, tag string) ([]Account, error) {
	if strings.TrimSpace(tag) == "" {
		return nil, nil
	}

	var firstErr error
	for _, suggester := range s {
		if suggester == nil {
			continue
		}
		accounts, err := suggester.SuggestAccounts(tab, tag)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if len(accounts) > 0 {
			return accounts, nil
		}
	}
	return nil, firstErr
}
