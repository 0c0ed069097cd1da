package models

import "time"

// Exercise is one logged activity row. Date is always midnight UTC of the calendar day.
type Exercise struct {
	ID          int64
	UserID      string
	Description string
	Duration    int
	Date        time.Time
}

// DateLayout renders dates as "Sun Jan 01 2023".
const DateLayout = "Mon Jan 02 2006"

// ExerciseRecord is the response for a newly logged exercise.
type ExerciseRecord struct {
	UserID      string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogEntry is one exercise inside a LogResult.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResult is a user's filtered exercise log.
type LogResult struct {
	UserID   string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}
