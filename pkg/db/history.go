package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shunichi-ikebuchi/description-editor/pkg/description"
)

// DefaultSuggestionLimit caps the accounts returned by SuggestAccounts.
const DefaultSuggestionLimit = 5

// UsageRecord represents one submitted description.
type UsageRecord struct {
	ID          int64
	Side        description.Side
	Tab         description.Tab
	Tag         string
	Description string
	AccountCode string
	UsedAt      time.Time
}

// TagCount is a tag and how often it was used.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// History records submitted descriptions and derives tag and account
// suggestions from them.
type History struct {
	conn    *Connection
	resolve func(code string) description.Account
}

// NewHistory creates a new History instance.
func NewHistory(conn *Connection) *History {
	return &History{
		conn: conn,
		resolve: func(code string) description.Account {
			return description.Account{Code: code}
		},
	}
}

// ResolveAccountsWith sets the function that fills in account titles.
func (h *History) ResolveAccountsWith(resolve func(code string) description.Account) {
	if resolve != nil {
		h.resolve = resolve
	}
}

// RecordUse records a submitted description.
func (h *History) RecordUse(record UsageRecord) error {
	query := `
		INSERT INTO description_usage (side, tab, tag, description, account_code)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := h.conn.Exec(query,
		string(record.Side),
		record.Tab.String(),
		record.Tag,
		record.Description,
		record.AccountCode,
	)

	if err != nil {
		return fmt.Errorf("failed to record usage: %w", err)
	}

	return nil
}

// RecordResult records the result of an editor submit.
func (h *History) RecordResult(result description.Result) error {
	record := UsageRecord{
		Side:        result.Side,
		Tab:         result.Tab,
		Tag:         result.Tag,
		Description: result.Description,
	}
	if result.Account != nil {
		record.AccountCode = result.Account.Code
	}
	return h.RecordUse(record)
}

// RecordResults records several submits atomically, such as the debit and
// credit sides of one entry.
func (h *History) RecordResults(results ...description.Result) error {
	query := `
		INSERT INTO description_usage (side, tab, tag, description, account_code)
		VALUES (?, ?, ?, ?, ?)
	`

	return h.conn.Transaction(func(tx *sql.Tx) error {
		for _, result := range results {
			var code string
			if result.Account != nil {
				code = result.Account.Code
			}
			if _, err := tx.Exec(query, string(result.Side), result.Tab.String(), result.Tag, result.Description, code); err != nil {
				return fmt.Errorf("failed to record %s usage: %w", result.Side, err)
			}
		}
		return nil
	})
}

// TopTags returns the most used tags of a plane, most used first.
func (h *History) TopTags(tab description.Tab, limit int) ([]TagCount, error) {
	query := `
		SELECT tag, COUNT(*) AS uses FROM description_usage
		WHERE tab = ? AND tag != ''
		GROUP BY tag
		ORDER BY uses DESC, MAX(id) DESC
		LIMIT ?
	`

	rows, err := h.conn.Query(query, tab.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top tags: %w", err)
	}
	defer rows.Close()

	var tags []TagCount
	for rows.Next() {
		var tc TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tc)
	}

	return tags, rows.Err()
}

// SuggestAccounts returns the accounts most often used with a tag on a
// plane. It implements description.Suggester.
func (h *History) SuggestAccounts(tab description.Tab, tag string) ([]description.Account, error) {
	query := `
		SELECT account_code FROM description_usage
		WHERE tab = ? AND tag = ? AND account_code != ''
		GROUP BY account_code
		ORDER BY COUNT(*) DESC, MAX(id) DESC
		LIMIT ?
	`

	rows, err := h.conn.Query(query, tab.String(), tag, DefaultSuggestionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest accounts: %w", err)
	}
	defer rows.Close()

	var accounts []description.Account
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan account code: %w", err)
		}
		accounts = append(accounts, h.resolve(code))
	}

	return accounts, rows.Err()
}

// GetRecords returns the usage records of a tag, newest first.
func (h *History) GetRecords(tab description.Tab, tag string) ([]UsageRecord, error) {
	query := `
		SELECT id, side, tab, tag, description, account_code, used_at
		FROM description_usage
		WHERE tab = ? AND tag = ?
		ORDER BY id DESC
	`

	rows, err := h.conn.Query(query, tab.String(), tag)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage records: %w", err)
	}
	defer rows.Close()

	var records []UsageRecord
	for rows.Next() {
		var record UsageRecord
		var side, tabName string

		if err := rows.Scan(
			&record.ID,
			&side,
			&tabName,
			&record.Tag,
			&record.Description,
			&record.AccountCode,
			&record.UsedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan usage record: %w", err)
		}

		record.Side = description.Side(side)
		if record.Tab, err = description.ParseTab(tabName); err != nil {
			return nil, fmt.Errorf("invalid tab in usage record %d: %w", record.ID, err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// DeleteTag forgets every use of a tag on a plane.
func (h *History) DeleteTag(tab description.Tab, tag string) (int64, error) {
	query := `DELETE FROM description_usage WHERE tab = ? AND tag = ?`

	result, err := h.conn.Exec(query, tab.String(), tag)
	if err != nil {
		return 0, fmt.Errorf("failed to delete tag: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}

// Stats represents usage statistics.
type Stats struct {
	Total    int
	ByTab    map[description.Tab]int
	LastUsed sql.NullString
}

// GetStats retrieves usage statistics.
func (h *History) GetStats() (*Stats, error) {
	stats := Stats{ByTab: make(map[description.Tab]int)}

	rows, err := h.conn.Query(`SELECT tab, COUNT(*) FROM description_usage GROUP BY tab`)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tabName string
		var count int
		if err := rows.Scan(&tabName, &count); err != nil {
			return nil, fmt.Errorf("failed to scan usage count: %w", err)
		}
		tab, err := description.ParseTab(tabName)
		if err != nil {
			continue
		}
		stats.ByTab[tab] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read usage counts: %w", err)
	}

	err = h.conn.QueryRow(`SELECT MAX(used_at) FROM description_usage`).Scan(&stats.LastUsed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get last use time: %w", err)
	}

	return &stats, nil
}

// GetMetadata retrieves a metadata value.
func (h *History) GetMetadata(key string) (string, error) {
	query := `SELECT value FROM editor_metadata WHERE key = ?`

	var value string
	err := h.conn.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata: %w", err)
	}

	return value, nil
}

// SetMetadata sets a metadata value.
func (h *History) SetMetadata(key, value string) error {
	query := `
		INSERT INTO editor_metadata (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := h.conn.Exec(query, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}

	return nil
}
