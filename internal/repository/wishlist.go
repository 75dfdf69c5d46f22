package repository

import (
	"context"
	"fmt"

	"github.com/vistastore/storefront/internal/storage"
)

// WishlistRepository maintains the liked-product id list, newest first.
type WishlistRepository interface {
	List(ctx context.Context) []string
	Toggle(ctx context.Context, productID string) ([]string, error)
	Contains(ctx context.Context, productID string) bool
}

type kvWishlistRepo struct {
	store storage.Store
}

func NewWishlistRepository(store storage.Store) WishlistRepository {
	return &kvWishlistRepo{store: store}
}

func (r *kvWishlistRepo) List(ctx context.Context) []string {
	ids := []string{}
	if !r.store.Get(ctx, storage.KeyWishlist, &ids) {
		return []string{}
	}
	return ids
}

func (r *kvWishlistRepo) Toggle(ctx context.Context, productID string) ([]string, error) {
	ids := r.List(ctx)
	next := make([]string, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == productID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append([]string{productID}, ids...)
	}
	if err := r.store.Set(ctx, storage.KeyWishlist, next); err != nil {
		return nil, fmt.Errorf("write wishlist: %w", err)
	}
	return next, nil
}

func (r *kvWishlistRepo) Contains(ctx context.Context, productID string) bool {
	for _, id := range r.List(ctx) {
		if id == productID {
			return true
		}
	}
	return false
}
