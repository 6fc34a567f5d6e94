// Package catalog loads the description editor catalog: the accounts, the
// tags offered on each tab plane with their suggested accounts, and the
// recurring items.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shunichi-ikebuchi/description-editor/pkg/description"
	"github.com/shunichi-ikebuchi/description-editor/pkg/recurring"
)

// AccountEntry is an account that tags may suggest.
type AccountEntry struct {
	Code  string `yaml:"code"`
	Title string `yaml:"title"`
}

// TagEntry is a tag offered on a plane and its suggested account codes.
type TagEntry struct {
	Name     string   `yaml:"name"`
	Accounts []string `yaml:"accounts"`
}

// RecurringEntry is a recurring item and its suggested account codes.
type RecurringEntry struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Accounts    []string `yaml:"accounts"`
}

// Config is the catalog file layout.
type Config struct {
	MonthNames []string       `yaml:"month_names"`
	Accounts   []AccountEntry `yaml:"accounts"`
	Tags       struct {
		General []TagEntry `yaml:"general"`
		Travel  []TagEntry `yaml:"travel"`
		Bus     []TagEntry `yaml:"bus"`
	} `yaml:"tags"`
	Recurring []RecurringEntry `yaml:"recurring"`
}

// Catalog answers tag and account lookups for the editor.
type Catalog struct {
	config       Config
	accountTitle map[string]string
	tagAccounts  map[description.Tab]map[string][]string
	tagNames     map[description.Tab][]string
	recurring    *recurring.Set
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML data.
func Parse(data []byte) (*Catalog, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return New(config)
}

// New builds a catalog from an already decoded Config.
func New(config Config) (*Catalog, error) {
	c := &Catalog{
		config:       config,
		accountTitle: make(map[string]string),
		tagAccounts:  make(map[description.Tab]map[string][]string),
		tagNames:     make(map[description.Tab][]string),
	}

	if err := c.buildMaps(); err != nil {
		return nil, err
	}
	return c, nil
}

// buildMaps builds the lookup maps from the configuration.
func (c *Catalog) buildMaps() error {
	names := recurring.DefaultMonthNames
	if len(c.config.MonthNames) > 0 {
		var err error
		names, err = recurring.NewMonthNames(c.config.MonthNames)
		if err != nil {
			return fmt.Errorf("invalid month_names: %w", err)
		}
	}

	// Accounts
	for _, account := range c.config.Accounts {
		if account.Code == "" {
			return fmt.Errorf("account %q has no code", account.Title)
		}
		c.accountTitle[account.Code] = account.Title
	}

	// Tags
	c.addTags(description.TabGeneral, c.config.Tags.General)
	c.addTags(description.TabTravel, c.config.Tags.Travel)
	c.addTags(description.TabBus, c.config.Tags.Bus)

	// Recurring items
	templates := make([]recurring.Template, 0, len(c.config.Recurring))
	recurringAccounts := make(map[string][]string, len(c.config.Recurring))
	for _, item := range c.config.Recurring {
		templates = append(templates, recurring.Template{
			Key:         item.Key,
			Name:        item.Name,
			Description: item.Description,
		})
		recurringAccounts[item.Key] = item.Accounts
	}

	set, err := recurring.NewSet(templates, names)
	if err != nil {
		return fmt.Errorf("invalid recurring items: %w", err)
	}
	c.recurring = set
	c.tagAccounts[description.TabRecurring] = recurringAccounts

	return nil
}

func (c *Catalog) addTags(tab description.Tab, entries []TagEntry) {
	accounts := make(map[string][]string, len(entries))
	for _, entry := range entries {
		if entry.Name == "" {
			continue
		}
		if _, ok := accounts[entry.Name]; !ok {
			c.tagNames[tab] = append(c.tagNames[tab], entry.Name)
		}
		accounts[entry.Name] = append(accounts[entry.Name], entry.Accounts...)
	}
	c.tagAccounts[tab] = accounts
}

// Account returns the account with the given code. Unknown codes yield an
// account with an empty title.
func (c *Catalog) Account(code string) description.Account {
	return description.Account{Code: code, Title: c.accountTitle[code]}
}

// Accounts returns every declared account.
func (c *Catalog) Accounts() []description.Account {
	accounts := make([]description.Account, 0, len(c.config.Accounts))
	for _, entry := range c.config.Accounts {
		accounts = append(accounts, description.Account{Code: entry.Code, Title: entry.Title})
	}
	return accounts
}

// Tags returns the tag names offered on a plane, in file order.
func (c *Catalog) Tags(tab description.Tab) []string {
	return append([]string(nil), c.tagNames[tab]...)
}

// Recurring returns the recurring templates.
func (c *Catalog) Recurring() *recurring.Set {
	return c.recurring
}

// SuggestAccounts returns the accounts configured for a tag on a plane.
// On the recurring plane the tag is the recurring item key.
func (c *Catalog) SuggestAccounts(tab description.Tab, tag string) ([]description.Account, error) {
	codes := c.tagAccounts[tab][tag]
	if len(codes) == 0 {
		return nil, nil
	}

	accounts := make([]description.Account, 0, len(codes))
	for _, code := range codes {
		accounts = append(accounts, c.Account(code))
	}
	return accounts, nil
}

// HasTag reports whether a plane offers the tag.
func (c *Catalog) HasTag(tab description.Tab, tag string) bool {
	_, ok := c.tagAccounts[tab][tag]
	return ok
}
