package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/crucial707/exercise-tracker/internal/middleware"
	"github.com/crucial707/exercise-tracker/internal/service"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// ErrMessageInternal is the generic message for 500 responses. Do not expose internal details to clients.
const ErrMessageInternal = "internal server error"

// JSONError sends a JSON error response with a single "error" field.
func JSONError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}

// JSONValidationError sends a JSON error response with "error" and optional "fields" for field-level details.
// status is typically http.StatusBadRequest (400).
func JSONValidationError(w http.ResponseWriter, message string, fields map[string]string, status int) {
	out := map[string]interface{}{"error": message}
	if len(fields) > 0 {
		out["fields"] = fields
	}
	writeJSON(w, status, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeServiceError maps service errors onto status codes. Anything unrecognised
// is logged and answered with a bare 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var inputErr *service.InputError
	switch {
	case errors.As(err, &inputErr):
		JSONValidationError(w, "validation failed", map[string]string{inputErr.Field: inputErr.Reason}, http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidInput):
		JSONError(w, "validation failed", http.StatusBadRequest)
	case errors.Is(err, service.ErrNotFound):
		JSONError(w, service.ErrNotFound.Error(), http.StatusNotFound)
	default:
		slog.ErrorContext(r.Context(), op+" failed",
			"request_id", chimw.GetReqID(r.Context()),
			"err", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
	}
}

// parseForm reads an urlencoded or multipart body. It writes the error response itself and
// reports false when the body cannot be read.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(32 << 10)
	} else {
		err = r.ParseForm()
	}
	switch {
	case err == nil:
		return true
	case middleware.IsBodyTooLarge(err):
		JSONError(w, "request body too large", http.StatusRequestEntityTooLarge)
	default:
		JSONError(w, "invalid form body", http.StatusBadRequest)
	}
	return false
}
