package repository

import (
	"context"

	"github.com/alexanderramin/folio/internal/db"
)

// Transactor runs fn against a store whose writes commit together or not
// at all.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, store KVStore) error) error
}

// SQLiteTransactor adapts a db.UnitOfWork to Transactor.
type SQLiteTransactor struct {
	uow db.UnitOfWork
}

// NewSQLiteTransactor wraps uow.
func NewSQLiteTransactor(uow db.UnitOfWork) *SQLiteTransactor {
	return &SQLiteTransactor{uow: uow}
}

func (t *SQLiteTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, store KVStore) error) error {
	return t.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, NewSQLiteKVStore(tx))
	})
}

// WithinTx runs fn against the memory store and restores the previous
// contents if fn fails.
func (s *MemoryKVStore) WithinTx(ctx context.Context, fn func(ctx context.Context, store KVStore) error) error {
	s.mu.Lock()
	snapshot := make(map[string][]byte, len(s.values))
	for k, v := range s.values {
		snapshot[k] = v
	}
	s.mu.Unlock()

	if err := fn(ctx, s); err != nil {
		s.mu.Lock()
		s.values = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}
