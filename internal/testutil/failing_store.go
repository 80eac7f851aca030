package testutil

import (
	"context"
	"sync/atomic"
)

type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// FailOnNthSetStore wraps a store and injects Err on the Nth Set call.
// Set calls are counted starting at 1; FailOn <= 0 fails every Set.
// Get and Delete pass through.
type FailOnNthSetStore struct {
	Store  kvStore
	FailOn int32
	Err    error

	count atomic.Int32
}

func (f *FailOnNthSetStore) Get(ctx context.Context, key string) ([]byte, error) {
	return f.Store.Get(ctx, key)
}

func (f *FailOnNthSetStore) Set(ctx context.Context, key string, value []byte) error {
	n := f.count.Add(1)
	if f.FailOn <= 0 || n == f.FailOn {
		return f.Err
	}
	return f.Store.Set(ctx, key, value)
}

func (f *FailOnNthSetStore) Delete(ctx context.Context, key string) error {
	return f.Store.Delete(ctx, key)
}

// Sets returns how many Set calls were attempted.
func (f *FailOnNthSetStore) Sets() int {
	return int(f.count.Load())
}
