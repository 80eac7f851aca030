package repository

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a key has no stored value.
	ErrNotFound = errors.New("not found")

	// ErrMalformed is returned when a stored value cannot be decoded.
	ErrMalformed = errors.New("malformed stored value")
)

// Well-known store keys.
const (
	KeyCourses     = "courses"
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyLoggedIn    = "user"
	KeyTheme       = "theme"
)

// KVStore is the persistent key-value port. Values are JSON documents.
// Get returns ErrNotFound (wrapped) for a missing key.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
