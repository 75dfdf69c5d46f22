package repository

import (
	"context"
	"fmt"

	"github.com/vistastore/storefront/internal/storage"
)

// PrefsRepository stores small UI preferences. Only the theme exists today.
type PrefsRepository interface {
	Theme(ctx context.Context) string
	SetTheme(ctx context.Context, theme string) error
}

type kvPrefsRepo struct {
	store storage.Store
}

func NewPrefsRepository(store storage.Store) PrefsRepository {
	return &kvPrefsRepo{store: store}
}

func (r *kvPrefsRepo) Theme(ctx context.Context) string {
	var theme string
	if !r.store.Get(ctx, storage.KeyTheme, &theme) {
		return ""
	}
	return theme
}

func (r *kvPrefsRepo) SetTheme(ctx context.Context, theme string) error {
	if err := r.store.Set(ctx, storage.KeyTheme, theme); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	return nil
}
