package handlers

import (
	"net/http"

	"github.com/crucial707/exercise-tracker/internal/service"
	"github.com/go-chi/chi/v5"
)

// LogHandler serves GET /api/users/{_id}/logs.
type LogHandler struct {
	Logs *service.LogService
}

func (h *LogHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.Logs.GetLogs(r.Context(), service.LogQuery{
		UserID: chi.URLParam(r, "_id"),
		From:   q.Get("from"),
		To:     q.Get("to"),
		Limit:  q.Get("limit"),
	})
	if err != nil {
		writeServiceError(w, r, "get logs", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
