package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vistastore/storefront/internal/catalog"
	"github.com/vistastore/storefront/internal/model"
	"github.com/vistastore/storefront/internal/storage"
)

// UserRepository merges the base users document with the local override
// list, keyed by email with override entries winning. An unreachable base
// document is treated as empty, never as a failure.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

type kvUserRepo struct {
	source catalog.Source
	store  storage.Store
}

func NewUserRepository(source catalog.Source, store storage.Store) UserRepository {
	return &kvUserRepo{source: source, store: store}
}

func (r *kvUserRepo) List(ctx context.Context) ([]model.User, error) {
	base, err := r.source.Users(ctx)
	if err != nil {
		base = nil
	}
	override := r.override(ctx)

	order := make([]string, 0, len(base)+len(override))
	byEmail := make(map[string]model.User, len(base)+len(override))
	for _, u := range base {
		if _, ok := byEmail[u.Email]; !ok {
			order = append(order, u.Email)
		}
		byEmail[u.Email] = u
	}
	for _, u := range override {
		if _, ok := byEmail[u.Email]; !ok {
			order = append(order, u.Email)
		}
		byEmail[u.Email] = u
	}

	out := make([]model.User, 0, len(order))
	for _, email := range order {
		out = append(out, byEmail[email])
	}
	return out, nil
}

func (r *kvUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *kvUserRepo) Create(ctx context.Context, user *model.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()

	override := append(r.override(ctx), *user)
	if err := r.store.Set(ctx, storage.KeyUsers, override); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *kvUserRepo) override(ctx context.Context) []model.User {
	override := []model.User{}
	if !r.store.Get(ctx, storage.KeyUsers, &override) {
		return []model.User{}
	}
	return override
}
