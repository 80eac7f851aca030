package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/folio/internal/db"
	"github.com/alexanderramin/folio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteTransactor_CommitsBothKeys(t *testing.T) {
	database := testutil.NewTestDB(t)
	tx := NewSQLiteTransactor(db.NewSQLiteUnitOfWork(database))
	ctx := context.Background()

	err := tx.WithinTx(ctx, func(ctx context.Context, s KVStore) error {
		if err := s.Set(ctx, KeyLoggedIn, []byte(`true`)); err != nil {
			return err
		}
		return s.Set(ctx, KeyCurrentUser, []byte(`{"username":"admin"}`))
	})
	require.NoError(t, err)

	store := NewSQLiteKVStore(database)
	_, err = store.Get(ctx, KeyLoggedIn)
	assert.NoError(t, err)
	_, err = store.Get(ctx, KeyCurrentUser)
	assert.NoError(t, err)
}

func TestSQLiteTransactor_RollsBackOnError(t *testing.T) {
	database := testutil.NewTestDB(t)
	tx := NewSQLiteTransactor(db.NewSQLiteUnitOfWork(database))
	ctx := context.Background()

	err := tx.WithinTx(ctx, func(ctx context.Context, s KVStore) error {
		if err := s.Set(ctx, KeyLoggedIn, []byte(`true`)); err != nil {
			return err
		}
		return errors.New("second write failed")
	})
	require.Error(t, err)

	_, err = NewSQLiteKVStore(database).Get(ctx, KeyLoggedIn)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryKVStore_WithinTxRestoresOnError(t *testing.T) {
	store := NewMemoryKVStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, KeyTheme, []byte(`"light"`)))

	err := store.WithinTx(ctx, func(ctx context.Context, s KVStore) error {
		_ = s.Set(ctx, KeyTheme, []byte(`"dark"`))
		_ = s.Set(ctx, KeyLoggedIn, []byte(`true`))
		return errors.New("boom")
	})
	require.Error(t, err)

	got, err := store.Get(ctx, KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, `"light"`, string(got))
	_, err = store.Get(ctx, KeyLoggedIn)
	assert.ErrorIs(t, err, ErrNotFound)
}
