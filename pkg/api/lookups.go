package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/shunichi-ikebuchi/description-editor/pkg/db"
	"github.com/shunichi-ikebuchi/description-editor/pkg/description"
)

// RecurringItem is a recurring item rendered for the reference date.
type RecurringItem struct {
	Key      string                `json:"key"`
	Name     string                `json:"name"`
	Text     string                `json:"text"`
	Accounts []description.Account `json:"accounts"`
}

// TagsResponse lists the tags of a plane.
type TagsResponse struct {
	Tab      description.Tab `json:"tab"`
	Tags     []string        `json:"tags"`
	Frequent []db.TagCount   `json:"frequent"`
}

// Recurring handles GET /api/1/recurring.
func (h *Handler) Recurring(w http.ResponseWriter, r *http.Request) {
	date, err := h.parseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	items := []RecurringItem{}
	for _, item := range h.catalog.Recurring().Expand(date) {
		accounts, _ := h.catalog.SuggestAccounts(description.TabRecurring, item.Key)
		if accounts == nil {
			accounts = []description.Account{}
		}
		items = append(items, RecurringItem{
			Key:      item.Key,
			Name:     item.Name,
			Text:     item.Text,
			Accounts: accounts,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":  date.Format(DateLayout),
		"items": items,
	})
}

// Tags handles GET /api/1/tags.
func (h *Handler) Tags(w http.ResponseWriter, r *http.Request) {
	tabName := r.URL.Query().Get("tab")
	if tabName == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "tab is required")
		return
	}
	tab, err := description.ParseTab(tabName)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	response := TagsResponse{
		Tab:      tab,
		Tags:     h.catalog.Tags(tab),
		Frequent: []db.TagCount{},
	}
	if response.Tags == nil {
		response.Tags = []string{}
	}

	if h.history != nil {
		frequent, err := h.history.TopTags(tab, DefaultTagLimit)
		if err != nil {
			slog.Error("Failed to get frequent tags", "error", err, "tab", tab)
			writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to get frequent tags")
			return
		}
		if frequent != nil {
			response.Frequent = frequent
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// Suggestions handles GET /api/1/suggestions.
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	tab, err := description.ParseTab(query.Get("tab"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	tag := strings.TrimSpace(query.Get("tag"))
	if tag == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "tag is required")
		return
	}

	accounts, err := h.suggester().SuggestAccounts(tab, tag)
	if err != nil {
		slog.Error("Failed to suggest accounts", "error", err, "tab", tab, "tag", tag)
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to suggest accounts")
		return
	}
	if accounts == nil {
		accounts = []description.Account{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"accounts": accounts,
	})
}
