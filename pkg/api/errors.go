package api

import (
	"encoding/json"
	"net/http"

	"github.com/shunichi-ikebuchi/description-editor/pkg/description"
)

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error            string                   `json:"error"`
	ErrorDescription string                   `json:"error_description,omitempty"`
	Fields           []description.FieldError `json:"fields,omitempty"`
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, status int, error, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:            error,
		ErrorDescription: message,
	})
}

// writeValidationError writes the failing fields of a submit.
func writeValidationError(w http.ResponseWriter, errs description.ValidationErrors) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error:            "validation_failed",
		ErrorDescription: errs.Error(),
		Fields:           errs,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
