package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/repository"
)

type preferenceService struct {
	store    repository.KVStore
	observer UseCaseObserver
}

// NewPreferenceService creates a PreferenceService. The theme defaults to
// light until one is stored.
func NewPreferenceService(store repository.KVStore, observers ...UseCaseObserver) PreferenceService {
	return &preferenceService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *preferenceService) Theme(ctx context.Context) (domain.Theme, error) {
	raw, err := s.store.Get(ctx, repository.KeyTheme)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ThemeLight, nil
		}
		return "", err
	}

	// Older stores hold the bare word rather than a JSON string.
	value := string(raw)
	var decoded string
	if json.Unmarshal(raw, &decoded) == nil {
		value = decoded
	}
	theme, err := domain.ParseTheme(value)
	if err != nil {
		return domain.ThemeLight, nil
	}
	return theme, nil
}

func (s *preferenceService) SetTheme(ctx context.Context, theme domain.Theme) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "preference.set_theme", startedAt, map[string]any{"theme": string(theme)}, &err)

	normalized, err := domain.ParseTheme(string(theme))
	if err != nil {
		return err
	}
	if err = repository.SetJSON(ctx, s.store, repository.KeyTheme, normalized); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

func (s *preferenceService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	current, err := s.Theme(ctx)
	if err != nil {
		return "", err
	}
	next := current.Toggle()
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
