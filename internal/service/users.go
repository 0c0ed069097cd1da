package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/crucial707/exercise-tracker/internal/models"
	"github.com/crucial707/exercise-tracker/internal/repo"
	"github.com/google/uuid"
)

// UserStore is the persistence the user, exercise and log services need.
type UserStore interface {
	Create(ctx context.Context, id, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type createUserInput struct {
	Username string `form:"username" validate:"required,max=255"`
}

// UserService registers and lists users.
type UserService struct {
	store UserStore
	newID func() string
}

// NewUserService builds a UserService that issues random UUIDs as user ids.
func NewUserService(store UserStore) *UserService {
	return &UserService{store: store, newID: uuid.NewString}
}

// CreateOrGet inserts a user, or returns the existing one when the username is
// taken. created is false in the latter case. Concurrent calls for the same
// name converge on one row through the store's unique constraint.
func (s *UserService) CreateOrGet(ctx context.Context, username string) (user *models.User, created bool, err error) {
	in := createUserInput{Username: strings.TrimSpace(username)}
	if err := validateInput(in); err != nil {
		return nil, false, err
	}

	user, err = s.store.Create(ctx, s.newID(), in.Username)
	if err == nil {
		return user, true, nil
	}
	if !repo.IsUniqueViolation(err) {
		return nil, false, fmt.Errorf("create user: %w", err)
	}

	existing, err := s.store.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, false, fmt.Errorf("fetch existing user: %w", err)
	}
	if existing == nil {
		// The conflict was on the generated id, not the username.
		return nil, false, fmt.Errorf("create user %q: id collision", in.Username)
	}
	return existing, false, nil
}

// List returns every user; an empty store yields an empty slice.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}
