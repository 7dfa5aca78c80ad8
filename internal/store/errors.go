package store

import "errors"

var (
	// ErrNotFound means no record matched the lookup key.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken and ErrUsernameTaken surface a uniqueness-constraint
	// violation on user insert, so the handler can name the offending field
	// even when the pre-insert existence check raced with another writer.
	ErrEmailTaken    = errors.New("email already in use")
	ErrUsernameTaken = errors.New("username already in use")
)
