package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shunichi-ikebuchi/description-editor/pkg/catalog"
	"github.com/shunichi-ikebuchi/description-editor/pkg/config"
	"github.com/shunichi-ikebuchi/description-editor/pkg/db"
	"github.com/shunichi-ikebuchi/description-editor/pkg/description"
	"github.com/shunichi-ikebuchi/description-editor/pkg/pathutil"
)

const dateLayout = "2006-01-02"

// environment holds what every command needs: configuration, catalog and
// usage history.
type environment struct {
	cfg     *config.Config
	paths   *pathutil.PathResolver
	catalog *catalog.Catalog
	conn    *db.Connection
	history *db.History
}

// loadEnvironment loads the configuration, the catalog and the usage
// history, exiting on failure.
func loadEnvironment() *environment {
	slog.Debug("Loading configuration")

	// Load configuration
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	// Validate required fields
	if err := cfg.Validate([]string{"storage", "dataRoot"}); err != nil {
		exitOnError(err, "invalid configuration")
	}

	// Initialize PathResolver
	pathResolver := pathutil.New(pathutil.Config{
		DataRoot:     cfg.Storage.DataRoot,
		CatalogPath:  cfg.Storage.CatalogPath,
		DatabasePath: cfg.Storage.DBPath,
	})

	// Load catalog
	cat, err := loadCatalog(pathResolver)
	exitOnError(err, "failed to load catalog")

	// Open database
	dbPath := pathResolver.GetDatabasePath()
	slog.Debug("Opening database", "path", dbPath)
	exitOnError(pathResolver.EnsureParentDir(dbPath), "failed to prepare database directory")

	conn, err := db.Open(dbPath)
	exitOnError(err, "failed to open database")

	history := db.NewHistory(conn)
	history.ResolveAccountsWith(cat.Account)

	env := &environment{
		cfg:     cfg,
		paths:   pathResolver,
		catalog: cat,
		conn:    conn,
		history: history,
	}
	onExit(env.Close)
	return env
}

// loadCatalog reads the catalog file. A missing file yields an empty
// catalog so the editor still works from history alone.
func loadCatalog(paths *pathutil.PathResolver) (*catalog.Catalog, error) {
	path := paths.GetCatalogPath()
	if !paths.FileExists(path) {
		slog.Warn("Catalog not found, continuing without tags or recurring items", "path", path)
		return catalog.New(catalog.Config{})
	}

	slog.Debug("Loading catalog", "path", path)
	return catalog.Load(path)
}

// Close closes the history database. It is safe to call more than once.
func (e *environment) Close() {
	if e.conn == nil {
		return
	}
	if err := e.conn.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
	e.conn = nil
}

// suggester consults the catalog first and the usage history second.
func (e *environment) suggester() description.Suggester {
	return description.Suggesters{e.catalog, e.history}
}

func (e *environment) newEditor(side description.Side) *description.Editor {
	return description.NewEditor(side, description.EditorOptions{
		Recurring: e.catalog.Recurring(),
		Suggester: e.suggester(),
	})
}

// parseDate parses a --date flag; an empty value means today in the
// configured time zone.
func (e *environment) parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now().In(e.cfg.Location), nil
	}
	date, err := time.ParseInLocation(dateLayout, value, e.cfg.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return date, nil
}
