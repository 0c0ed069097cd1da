package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/crucial707/exercise-tracker/internal/models"
)

// ExerciseRepo persists exercise log rows.
type ExerciseRepo struct {
	DB *sql.DB
}

// NewExerciseRepo returns a new ExerciseRepo.
func NewExerciseRepo(db *sql.DB) *ExerciseRepo {
	return &ExerciseRepo{DB: db}
}

// ExerciseFilter narrows ListByUser. Nil From/To and Limit <= 0 mean "no bound".
type ExerciseFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int
}

// Create inserts an exercise and returns it with id set. An unknown user fails
// with an error for which IsForeignKeyViolation is true.
func (r *ExerciseRepo) Create(ctx context.Context, e models.Exercise) (*models.Exercise, error) {
	query := `
		INSERT INTO exercises (user_id, description, duration, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, e.UserID, e.Description, e.Duration, e.Date).Scan(&e.ID)
	if err != nil {
		return nil, storageErr("insert exercise", err)
	}
	return &e, nil
}

// ListByUser returns a user's exercises in date order (id breaks ties), bounded
// inclusively by From/To and capped at Limit.
func (r *ExerciseRepo) ListByUser(ctx context.Context, f ExerciseFilter) ([]models.Exercise, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, user_id, description, duration, date FROM exercises WHERE user_id = $1`)
	args := []any{f.UserID}

	if f.From != nil {
		args = append(args, *f.From)
		fmt.Fprintf(&sb, " AND date >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		fmt.Fprintf(&sb, " AND date <= $%d", len(args))
	}
	sb.WriteString(" ORDER BY date, id")
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := r.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, storageErr("list exercises", err)
	}
	defer rows.Close()

	list := []models.Exercise{}
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date); err != nil {
			return nil, storageErr("scan exercise", err)
		}
		list = append(list, e)
	}
	return list, storageErr("list exercises", rows.Err())
}
