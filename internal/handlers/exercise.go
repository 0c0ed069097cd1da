package handlers

import (
	"net/http"

	"github.com/crucial707/exercise-tracker/internal/metrics"
	"github.com/crucial707/exercise-tracker/internal/service"
	"github.com/go-chi/chi/v5"
)

// ExerciseHandler serves POST /api/users/{_id}/exercises.
type ExerciseHandler struct {
	Exercises *service.ExerciseService
}

// LogExercise records one exercise from the form fields description, duration and date.
func (h *ExerciseHandler) LogExercise(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	rec, err := h.Exercises.LogExercise(r.Context(), service.LogExerciseInput{
		UserID:      chi.URLParam(r, "_id"),
		Description: r.PostFormValue("description"),
		Duration:    r.PostFormValue("duration"),
		Date:        r.PostFormValue("date"),
	})
	if err != nil {
		writeServiceError(w, r, "log exercise", err)
		return
	}
	metrics.IncExercisesLogged()

	writeJSON(w, http.StatusOK, rec)
}
