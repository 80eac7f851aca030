package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceService_DefaultsToLight(t *testing.T) {
	svc := NewPreferenceService(repository.NewMemoryKVStore())

	theme, err := svc.Theme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}

func TestPreferenceService_ToggleRoundTrip(t *testing.T) {
	store := repository.NewMemoryKVStore()
	svc := NewPreferenceService(store)
	ctx := context.Background()

	next, err := svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, next)

	raw, err := store.Get(ctx, repository.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, `"dark"`, string(raw))

	next, err = svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, next)
}

func TestPreferenceService_ReadsBareWord(t *testing.T) {
	store := repository.NewMemoryKVStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, repository.KeyTheme, []byte(`dark`)))

	theme, err := NewPreferenceService(store).Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)
}

func TestPreferenceService_RejectsUnknownTheme(t *testing.T) {
	svc := NewPreferenceService(repository.NewMemoryKVStore())

	err := svc.SetTheme(context.Background(), domain.Theme("sepia"))
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestPreferenceService_SetThemeStoresNormalizedValue(t *testing.T) {
	store := repository.NewMemoryKVStore()
	svc := NewPreferenceService(store)
	ctx := context.Background()

	require.NoError(t, svc.SetTheme(ctx, domain.Theme(" Dark ")))

	raw, err := store.Get(ctx, repository.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, `"dark"`, string(raw))
}
