package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shunichi-ikebuchi/description-editor/pkg/description"
)

// DecodeRequest is the body of POST /api/1/descriptions/decode.
type DecodeRequest struct {
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
	Side        string `json:"side,omitempty"`
}

// DecodeResponse is the editor state after opening a description.
type DecodeResponse struct {
	Tab         description.Tab        `json:"tab"`
	Tag         string                 `json:"tag,omitempty"`
	Fields      description.Fields     `json:"fields"`
	Annotation  description.Annotation `json:"annotation"`
	Suggestions []description.Account  `json:"suggestions"`
	Account     *description.Account   `json:"account,omitempty"`
}

// EncodeRequest is the body of POST /api/1/descriptions/encode.
type EncodeRequest struct {
	description.Draft
	Annotation  description.Annotation `json:"annotation"`
	Date        string                 `json:"date,omitempty"`
	Side        string                 `json:"side,omitempty"`
	AccountCode string                 `json:"account_code,omitempty"`
	Record      bool                   `json:"record,omitempty"`
}

// Decode handles POST /api/1/descriptions/decode.
func (h *Handler) Decode(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	date, err := h.parseDate(req.Date)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	side, err := parseSide(req.Side)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	editor := h.newEditor(side)
	decoded := editor.Open(req.Description, date)

	response := DecodeResponse{
		Tab:         decoded.Tab,
		Tag:         decoded.Tag(),
		Fields:      decoded.Fields,
		Annotation:  decoded.Annotation,
		Suggestions: editor.Suggestions(),
	}
	if account, ok := editor.SelectedAccount(); ok {
		response.Account = &account
	}
	if response.Suggestions == nil {
		response.Suggestions = []description.Account{}
	}

	writeJSON(w, http.StatusOK, response)
}

// Encode handles POST /api/1/descriptions/encode.
func (h *Handler) Encode(w http.ResponseWriter, r *http.Request) {
	var req EncodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	date, err := h.parseDate(req.Date)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	side, err := parseSide(req.Side)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	if req.Record && h.history == nil {
		writeJSONError(w, http.StatusConflict, "history_unavailable", "Usage history is not configured")
		return
	}

	editor := h.newEditor(side)
	editor.SetDate(date)
	if err := editor.Fill(req.Draft); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	editor.SetAnnotation(req.Annotation)
	if req.AccountCode != "" {
		editor.SelectAccount(h.catalog.Account(req.AccountCode))
	}

	result, err := editor.Submit()
	if err != nil {
		var validationErrs description.ValidationErrors
		if errors.As(err, &validationErrs) {
			writeValidationError(w, validationErrs)
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to encode description")
		return
	}

	status := http.StatusOK
	if req.Record {
		if err := h.history.RecordResult(result); err != nil {
			slog.Error("Failed to record usage", "error", err, "tab", result.Tab, "tag", result.Tag)
			writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to record usage")
			return
		}
		slog.Debug("Recorded usage", "side", result.Side, "tab", result.Tab, "tag", result.Tag)
		status = http.StatusCreated
	}

	writeJSON(w, status, result)
}

func parseSide(value string) (description.Side, error) {
	if value == "" {
		return description.SideDebit, nil
	}
	return description.ParseSide(value)
}
