package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// GetJSON reads key and decodes it into v. found is false when the key is
// missing; a decode failure wraps ErrMalformed.
func GetJSON(ctx context.Context, s KVStore, key string, v any) (found bool, err error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("decoding key %q: %w: %w", key, ErrMalformed, err)
	}
	return true, nil
}

// SetJSON encodes v and writes it under key.
func SetJSON(ctx context.Context, s KVStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding key %q: %w", key, err)
	}
	return s.Set(ctx, key, data)
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
