package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/crucial707/exercise-tracker/internal/models"
	"github.com/crucial707/exercise-tracker/internal/repo"
)

// LogQuery carries the raw query parameters of a log request.
type LogQuery struct {
	UserID string `form:"_id" validate:"required"`
	From   string `form:"from"`
	To     string `form:"to"`
	Limit  string `form:"limit" validate:"omitempty,number"`
}

type LogService struct {
	users     UserStore
	exercises ExerciseStore
}

func NewLogService(users UserStore, exercises ExerciseStore) *LogService {
	return &LogService{users: users, exercises: exercises}
}

// GetLogs returns a user's exercises between From and To (inclusive) in date
// order, capped at Limit rows.
func (s *LogService) GetLogs(ctx context.Context, q LogQuery) (*models.LogResult, error) {
	q.Limit = strings.TrimSpace(q.Limit)
	if err := validateInput(q); err != nil {
		return nil, err
	}

	filter := repo.ExerciseFilter{UserID: q.UserID}
	var err error
	if filter.From, err = parseBound("from", q.From); err != nil {
		return nil, err
	}
	if filter.To, err = parseBound("to", q.To); err != nil {
		return nil, err
	}
	if q.Limit != "" {
		n, err := strconv.Atoi(q.Limit)
		if err != nil || n < 1 {
			return nil, &InputError{Field: "limit", Reason: "must be a positive integer"}
		}
		filter.Limit = n
	}

	user, err := s.users.GetByID(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	exercises, err := s.exercises.ListByUser(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	log := make([]models.LogEntry, 0, len(exercises))
	for _, e := range exercises {
		log = append(log, models.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        FormatDate(e.Date),
		})
	}

	return &models.LogResult{
		UserID:   user.ID,
		Username: user.Username,
		Count:    len(log),
		Log:      log,
	}, nil
}
