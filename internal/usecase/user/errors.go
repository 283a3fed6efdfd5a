// Package user provides use cases for account registration and
// credential verification. Passwords are stored as bcrypt hashes.
package user

import "errors"

// Sentinel errors for user use case operations.
var (
	// ErrInvalidCredentials indicates that the username/password pair
	// does not match a registered account. Unknown usernames and wrong
	// passwords report the same error.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidUserID indicates that the provided user ID is invalid.
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrUserNotFound indicates that the requested user was not found.
	ErrUserNotFound = errors.New("user not found")
)
