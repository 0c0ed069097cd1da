package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crucial707/exercise-tracker/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		CORSAllowedOrigins: []string{"*"},
		MaxBodyBytes:       1 << 20,
	}
}

// TestAPI_CreateUserLogExerciseGetLogs drives the full router with a sqlmock-backed DB:
// register alice, log one run on 2023-01-01, then read the log back.
func TestAPI_CreateUserLogExerciseGetLogs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	const id = "3d1f7a52-8c4b-4e2a-9f60-1b2c3d4e5f60"
	day := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	userRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "username", "created_at"}).AddRow(id, "alice", time.Now())
	}

	// POST /api/users
	mock.ExpectQuery(`INSERT INTO users \(id, username\)`).
		WithArgs(sqlmock.AnyArg(), "alice").
		WillReturnRows(userRow())
	// POST /api/users/{_id}/exercises
	mock.ExpectQuery(`SELECT id, username, created_at FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(userRow())
	mock.ExpectQuery(`INSERT INTO exercises`).
		WithArgs(id, "run", 30, day).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	// GET /api/users/{_id}/logs
	mock.ExpectQuery(`SELECT id, username, created_at FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(userRow())
	mock.ExpectQuery(`SELECT id, user_id, description, duration, date FROM exercises WHERE user_id = \$1 ORDER BY date, id`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "description", "duration", "date"}).
			AddRow(1, id, "run", 30, day))

	srv := httptest.NewServer(newRouter(db, testConfig()))
	defer srv.Close()

	// 1) Create user
	resp, err := http.PostForm(srv.URL+"/api/users", url.Values{"username": {"alice"}})
	if err != nil {
		t.Fatalf("create user request: %v", err)
	}
	var user struct {
		Username string `json:"username"`
		ID       string `json:"_id"`
	}
	decodeResponse(t, resp, http.StatusOK, &user)
	if user.Username != "alice" || user.ID != id {
		t.Fatalf("unexpected user: %+v", user)
	}

	// 2) Log exercise
	resp, err = http.PostForm(srv.URL+"/api/users/"+user.ID+"/exercises",
		url.Values{"description": {"run"}, "duration": {"30"}, "date": {"2023-01-01"}})
	if err != nil {
		t.Fatalf("log exercise request: %v", err)
	}
	var rec map[string]any
	decodeResponse(t, resp, http.StatusOK, &rec)
	if rec["_id"] != id || rec["username"] != "alice" || rec["description"] != "run" ||
		rec["duration"] != float64(30) || rec["date"] != "Sun Jan 01 2023" {
		t.Errorf("unexpected exercise: %v", rec)
	}

	// 3) Get logs
	resp, err = http.Get(srv.URL + "/api/users/" + user.ID + "/logs")
	if err != nil {
		t.Fatalf("logs request: %v", err)
	}
	var logs struct {
		ID       string `json:"_id"`
		Username string `json:"username"`
		Count    int    `json:"count"`
		Log      []struct {
			Description string `json:"description"`
			Duration    int    `json:"duration"`
			Date        string `json:"date"`
		} `json:"log"`
	}
	decodeResponse(t, resp, http.StatusOK, &logs)
	if logs.ID != id || logs.Username != "alice" || logs.Count != 1 || len(logs.Log) != 1 {
		t.Fatalf("unexpected logs: %+v", logs)
	}
	if e := logs.Log[0]; e.Description != "run" || e.Duration != 30 || e.Date != "Sun Jan 01 2023" {
		t.Errorf("unexpected log entry: %+v", e)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAPI_LogExercise_UnknownUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, created_at FROM users WHERE id = \$1`).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "created_at"}))

	srv := httptest.NewServer(newRouter(db, testConfig()))
	defer srv.Close()

	resp, err := http.PostForm(srv.URL+"/api/users/nope/exercises", url.Values{"description": {"run"}, "duration": {"30"}})
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var out map[string]string
	decodeResponse(t, resp, http.StatusNotFound, &out)
	if out["error"] == "" {
		t.Error("404 response must carry an error message")
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS header: got %q, want *", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

// TestAPI_Health is a quick smoke test for the health endpoint.
func TestAPI_Health(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	srv := httptest.NewServer(newRouter(db, testConfig()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /health status: got %d, want 200", resp.StatusCode)
	}
}

// TestAPI_Ready checks that /ready pings the DB and returns 200 when DB is reachable.
func TestAPI_Ready(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	mock.ExpectPing()

	srv := httptest.NewServer(newRouter(db, testConfig()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/ready")
	if err != nil {
		t.Fatalf("ready request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /ready status: got %d, want 200", resp.StatusCode)
	}
}

func TestAPI_IndexAndMetrics(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	srv := httptest.NewServer(newRouter(db, testConfig()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("index request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "/api/users") {
		t.Errorf("GET / : got %d", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics request: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "http_requests_total") {
		t.Error("metrics output missing http_requests_total")
	}
}

func TestAPI_UnknownRoute(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	srv := httptest.NewServer(newRouter(db, testConfig()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/nothing")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var out map[string]string
	decodeResponse(t, resp, http.StatusNotFound, &out)
	if out["error"] != "not found" {
		t.Errorf("unexpected body: %v", out)
	}
}

func decodeResponse(t *testing.T, resp *http.Response, wantStatus int, v any) {
	t.Helper()
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("%s %s status: got %d, want %d: %s", resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, wantStatus, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
