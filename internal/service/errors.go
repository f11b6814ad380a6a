package service

import "errors"

var (
	// ErrNotFound covers both a missing record and one owned by another
	// user; callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned on registration with a taken email.
	ErrDuplicateEmail = errors.New("user with this email already exists")

	// ErrInvalidCredentials is returned when login fails, without saying why.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRefreshToken is returned for an unknown or expired refresh token.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrUnknownSubject is returned when a valid token names a user that no
	// longer resolves to a stored account.
	ErrUnknownSubject = errors.New("unknown subject")
)

// ValidationError marks a schema-level field failure, surfaced as HTTP 422.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// RuleError marks a domain-rule violation, surfaced as HTTP 400.
type RuleError struct {
	Detail string
}

func (e *RuleError) Error() string {
	return e.Detail
}
