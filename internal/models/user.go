package models

import "time"

// User is a registered account. The JSON shape ({_id, username}) is the public API contract.
type User struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"-"`
}
