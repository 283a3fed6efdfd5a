package entity

import "time"

// User represents a registered account. Usernames are unique across the
// system and immutable after signup.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
