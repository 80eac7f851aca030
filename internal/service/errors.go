package service

import "errors"

var (
	// ErrNotFound is returned for an unknown course id.
	ErrNotFound = errors.New("course not found")

	// ErrInvalidCredentials is returned when no account matches a sign-in.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotSignedIn is returned when an operation needs a session.
	ErrNotSignedIn = errors.New("not signed in")
)
