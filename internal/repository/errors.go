package repository

import "errors"

// ErrNotFound is returned when a record does not exist, or exists but is not
// visible to the caller. Repositories never distinguish the two.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned when inserting a user whose email is taken.
var ErrDuplicateEmail = errors.New("email already registered")
