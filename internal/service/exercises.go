package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/crucial707/exercise-tracker/internal/models"
	"github.com/crucial707/exercise-tracker/internal/repo"
)

// ExerciseStore is the exercise persistence used by ExerciseService and LogService.
type ExerciseStore interface {
	Create(ctx context.Context, e models.Exercise) (*models.Exercise, error)
	ListByUser(ctx context.Context, f repo.ExerciseFilter) ([]models.Exercise, error)
}

// LogExerciseInput carries the raw form values of a new exercise.
type LogExerciseInput struct {
	UserID      string `form:"_id" validate:"required"`
	Description string `form:"description" validate:"required"`
	Duration    string `form:"duration" validate:"required"`
	Date        string `form:"date"`
}

type ExerciseService struct {
	users     UserStore
	exercises ExerciseStore
	now       func() time.Time
}

func NewExerciseService(users UserStore, exercises ExerciseStore) *ExerciseService {
	return &ExerciseService{users: users, exercises: exercises, now: time.Now}
}

// LogExercise appends an exercise for an existing user. An empty date means today.
func (s *ExerciseService) LogExercise(ctx context.Context, in LogExerciseInput) (*models.ExerciseRecord, error) {
	in.Description = strings.TrimSpace(in.Description)
	in.Duration = strings.TrimSpace(in.Duration)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	date := startOfDay(s.now())
	if strings.TrimSpace(in.Date) != "" {
		if date, err = parseOptionalDate("date", in.Date); err != nil {
			return nil, err
		}
	}

	// The column is a postgres INTEGER, so anything outside int32 is rejected here.
	duration, err := strconv.ParseInt(in.Duration, 10, 32)
	if err != nil || duration < 0 {
		return nil, &InputError{Field: "duration", Reason: "must be a non-negative integer"}
	}

	e, err := s.exercises.Create(ctx, models.Exercise{
		UserID:      user.ID,
		Description: in.Description,
		Duration:    int(duration),
		Date:        date,
	})
	if repo.IsForeignKeyViolation(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("log exercise: %w", err)
	}

	return &models.ExerciseRecord{
		UserID:      user.ID,
		Username:    user.Username,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        FormatDate(e.Date),
	}, nil
}
