package service

import (
	"strings"
	"time"

	"github.com/crucial707/exercise-tracker/internal/models"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate accepts yyyy-mm-dd, RFC 3339 or yyyy-mm-ddThh:mm:ss and returns
// midnight UTC of that calendar day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return startOfDay(t), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// FormatDate renders t as "Sun Jan 01 2023".
func FormatDate(t time.Time) string {
	return t.UTC().Format(models.DateLayout)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// parseOptionalDate returns the zero time for an empty value.
func parseOptionalDate(field, s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, &InputError{Field: field, Reason: "must be a date (yyyy-mm-dd)"}
	}
	return t, nil
}

// parseBound is parseOptionalDate for range filters: an empty value yields nil,
// so any parsed date, year 1 included, bounds the range.
func parseBound(field, s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := parseOptionalDate(field, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
