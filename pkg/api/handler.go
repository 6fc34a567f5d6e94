// Package api serves the description editor over JSON HTTP.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shunichi-ikebuchi/description-editor/pkg/catalog"
	"github.com/shunichi-ikebuchi/description-editor/pkg/db"
	"github.com/shunichi-ikebuchi/description-editor/pkg/description"
)

// DateLayout is the layout of reference dates in requests.
const DateLayout = "2006-01-02"

// DefaultTagLimit caps the frequent tags returned by the tags endpoint.
const DefaultTagLimit = 10

// Handler handles the description editor endpoints.
type Handler struct {
	catalog  *catalog.Catalog
	history  *db.History
	location *time.Location
	now      func() time.Time
}

// NewHandler creates a new Handler. history may be nil, in which case
// suggestions come from the catalog only and nothing is recorded.
func NewHandler(cat *catalog.Catalog, history *db.History, location *time.Location) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		catalog:  cat,
		history:  history,
		location: location,
		now:      time.Now,
	}
}

// NewRouter builds the router serving h.
func NewRouter(h *Handler, timeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Route("/api/1", func(r chi.Router) {
		// Descriptions endpoints.
		r.Route("/descriptions", func(r chi.Router) {
			r.Post("/decode", h.Decode)
			r.Post("/encode", h.Encode)
		})

		r.Get("/recurring", h.Recurring)
		r.Get("/tags", h.Tags)
		r.Get("/suggestions", h.Suggestions)
	})

	// Health check endpoint.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}

// suggester consults the catalog first and the usage history second.
func (h *Handler) suggester() description.Suggester {
	suggesters := description.Suggesters{h.catalog}
	if h.history != nil {
		suggesters = append(suggesters, h.history)
	}
	return suggesters
}

func (h *Handler) newEditor(side description.Side) *description.Editor {
	return description.NewEditor(side, description.EditorOptions{
		Recurring: h.catalog.Recurring(),
		Suggester: h.suggester(),
	})
}

// parseDate parses a reference date; an empty value means today.
func (h *Handler) parseDate(value string) (time.Time, error) {
	if value == "" {
		return h.now().In(h.location), nil
	}
	date, err := time.ParseInLocation(DateLayout, value, h.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return date, nil
}
