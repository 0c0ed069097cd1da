package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crucial707/exercise-tracker/internal/repo"
	"github.com/crucial707/exercise-tracker/internal/service"
	"github.com/go-chi/chi/v5"
)

// requestWithChiURLParams returns a request with chi route context and URL params set.
// A non-nil form is sent as an urlencoded body.
func requestWithChiURLParams(method, path string, form url.Values, params map[string]string) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	r := httptest.NewRequest(method, path, body)
	if form != nil {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

type testServices struct {
	users     *service.UserService
	exercises *service.ExerciseService
	logs      *service.LogService
}

func newTestServices(db *sql.DB) testServices {
	userRepo := repo.NewUserRepo(db)
	exerciseRepo := repo.NewExerciseRepo(db)
	return testServices{
		users:     service.NewUserService(userRepo),
		exercises: service.NewExerciseService(userRepo, exerciseRepo),
		logs:      service.NewLogService(userRepo, exerciseRepo),
	}
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
