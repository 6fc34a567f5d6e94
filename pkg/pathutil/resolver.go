// Package pathutil provides centralized path management for the editor's data files.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathResolver manages paths for the catalog and the usage history database.
type PathResolver struct {
	dataRoot     string
	catalogPath  string
	databasePath string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// DataRoot is the directory holding the catalog and history (e.g., ~/.desc-editor)
	DataRoot string
	// CatalogPath is the path to the YAML catalog of accounts, tags and recurring items
	CatalogPath string
	// DatabasePath is the path to the SQLite database file for usage history
	DatabasePath string
}

// New creates a new PathResolver with the given configuration.
// If CatalogPath is empty, it defaults to {DataRoot}/catalog.yaml
// If DatabasePath is empty, it defaults to {DataRoot}/.history/history.db
func New(config Config) *PathResolver {
	catalogPath := config.CatalogPath
	if catalogPath == "" {
		catalogPath = filepath.Join(config.DataRoot, "catalog.yaml")
	}

	dbPath := config.DatabasePath
	if dbPath == "" {
		dbPath = filepath.Join(config.DataRoot, ".history", "history.db")
	}

	return &PathResolver{
		dataRoot:     config.DataRoot,
		catalogPath:  catalogPath,
		databasePath: dbPath,
	}
}

// GetDataRoot returns the data root directory.
func (p *PathResolver) GetDataRoot() string {
	return p.dataRoot
}

// GetCatalogPath returns the catalog file path.
func (p *PathResolver) GetCatalogPath() string {
	return p.catalogPath
}

// GetDatabasePath returns the database file path.
func (p *PathResolver) GetDatabasePath() string {
	return p.databasePath
}

// EnsureDir creates a directory if it doesn't exist.
// It creates all parent directories as needed (like mkdir -p).
func (p *PathResolver) EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}
	return nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func (p *PathResolver) EnsureParentDir(filePath string) error {
	dir := filepath.Dir(filePath)
	return p.EnsureDir(dir)
}

// FileExists checks if a file exists.
func (p *PathResolver) FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	return err == nil && !info.IsDir()
}
