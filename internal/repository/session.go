package repository

import (
	"context"
	"fmt"

	"github.com/vistastore/storefront/internal/model"
	"github.com/vistastore/storefront/internal/storage"
)

// SessionRepository owns the single active-session slot. Current never
// fails: a malformed stored record reads as signed-out.
type SessionRepository interface {
	Current(ctx context.Context) *model.Session
	Save(ctx context.Context, session model.Session) error
	Clear(ctx context.Context) error
}

type kvSessionRepo struct {
	store storage.Store
}

func NewSessionRepository(store storage.Store) SessionRepository {
	return &kvSessionRepo{store: store}
}

func (r *kvSessionRepo) Current(ctx context.Context) *model.Session {
	var session model.Session
	if !r.store.Get(ctx, storage.KeySession, &session) {
		return nil
	}
	if session.ID == "" {
		return nil
	}
	return &session
}

func (r *kvSessionRepo) Save(ctx context.Context, session model.Session) error {
	if err := r.store.Set(ctx, storage.KeySession, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *kvSessionRepo) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, storage.KeySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
