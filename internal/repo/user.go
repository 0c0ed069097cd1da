package repo

import (
	"context"
	"database/sql"

	"github.com/crucial707/exercise-tracker/internal/models"
)

// ==========================
// UserRepo
// ==========================
type UserRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

// ==========================
// Create User
// ==========================

// Create inserts a user. A duplicate username fails with an error for which
// IsUniqueViolation is true.
func (r *UserRepo) Create(ctx context.Context, id, username string) (*models.User, error) {
	query := `
		INSERT INTO users (id, username)
		VALUES ($1, $2)
		RETURNING id, username, created_at
	`

	user := &models.User{}

	err := r.DB.QueryRowContext(ctx, query, id, username).
		Scan(&user.ID, &user.Username, &user.CreatedAt)

	if err != nil {
		return nil, storageErr("insert user", err)
	}

	return user, nil
}

// ==========================
// Get By ID
// ==========================

// GetByID returns nil, nil when no user has that id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, username, created_at
		FROM users
		WHERE id = $1
	`
	return r.getOne(ctx, "get user by id", query, id)
}

// ==========================
// Get By Username
// ==========================

// GetByUsername returns nil, nil when no user has that username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, created_at
		FROM users
		WHERE username = $1
	`
	return r.getOne(ctx, "get user by username", query, username)
}

func (r *UserRepo) getOne(ctx context.Context, op, query string, arg any) (*models.User, error) {
	user := &models.User{}

	err := r.DB.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Username, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(op, err)
	}

	return user, nil
}

// ==========================
// List Users
// ==========================
func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, username, created_at FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, storageErr("list users", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
			return nil, storageErr("scan user", err)
		}
		users = append(users, u)
	}

	return users, storageErr("list users", rows.Err())
}
