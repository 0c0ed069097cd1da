package service

import (
	"context"
	"sort"
	"sync"

	"github.com/crucial707/exercise-tracker/internal/models"
	"github.com/crucial707/exercise-tracker/internal/repo"
	"github.com/lib/pq"
)

// memStore is an in-memory UserStore and ExerciseStore that mimics the
// postgres constraints the services depend on.
type memStore struct {
	mu        sync.Mutex
	users     []models.User
	exercises []models.Exercise
	nextID    int64

	createErr error
	listErr   error
}

func (m *memStore) Create(ctx context.Context, id, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	for _, u := range m.users {
		if u.Username == username || u.ID == id {
			return nil, &repo.StorageError{Op: "insert user", Err: &pq.Error{Code: "23505"}}
		}
	}
	u := models.User{ID: id, Username: username}
	m.users = append(m.users, u)
	return &u, nil
}

func (m *memStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memStore) List(ctx context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]models.User(nil), m.users...), nil
}

// exerciseStore exposes the exercise half of memStore under the ExerciseStore method names.
type exerciseStore struct{ *memStore }

func (s exerciseStore) Create(ctx context.Context, e models.Exercise) (*models.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	known := false
	for _, u := range s.users {
		if u.ID == e.UserID {
			known = true
		}
	}
	if !known {
		return nil, &repo.StorageError{Op: "insert exercise", Err: &pq.Error{Code: "23503"}}
	}
	s.nextID++
	e.ID = s.nextID
	s.exercises = append(s.exercises, e)
	return &e, nil
}

func (s exerciseStore) ListByUser(ctx context.Context, f repo.ExerciseFilter) ([]models.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Exercise
	for _, e := range s.exercises {
		if e.UserID != f.UserID {
			continue
		}
		if f.From != nil && e.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && e.Date.After(*f.To) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// failingUsers is a UserStore whose GetByID always fails with err.
type failingUsers struct {
	memStore
	err error
}

func (f *failingUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, f.err
}
