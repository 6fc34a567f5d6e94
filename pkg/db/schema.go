// Package db provides SQLite storage for description usage history.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Description usage
-- One row per submitted line item description
CREATE TABLE IF NOT EXISTS description_usage (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    side TEXT NOT NULL,                -- 'debit' or 'credit'
    tab TEXT NOT NULL,                 -- 'general', 'travel', 'bus' or 'recurring'
    tag TEXT NOT NULL DEFAULT '',      -- tag, or recurring item key
    description TEXT NOT NULL,
    account_code TEXT NOT NULL DEFAULT '',
    used_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_description_usage_tab_tag
    ON description_usage(tab, tag);

CREATE INDEX IF NOT EXISTS idx_description_usage_account
    ON description_usage(account_code);

-- Editor metadata
CREATE TABLE IF NOT EXISTS editor_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// InitializeSchema creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
