package repository

import (
	"context"
	"fmt"

	"github.com/vistastore/storefront/internal/model"
	"github.com/vistastore/storefront/internal/storage"
)

// CartRepository maintains the line-item list. At most one line exists per
// product id; quantities never drop below one. Mutations return the new
// cart state for the caller to re-render.
type CartRepository interface {
	Get(ctx context.Context) []model.CartLine
	Add(ctx context.Context, productID string, qty int) ([]model.CartLine, error)
	UpdateQty(ctx context.Context, productID string, qty int) ([]model.CartLine, error)
	Remove(ctx context.Context, productID string) ([]model.CartLine, error)
	Clear(ctx context.Context) error
}

type kvCartRepo struct {
	store storage.Store
}

func NewCartRepository(store storage.Store) CartRepository {
	return &kvCartRepo{store: store}
}

func (r *kvCartRepo) Get(ctx context.Context) []model.CartLine {
	lines := []model.CartLine{}
	if !r.store.Get(ctx, storage.KeyCart, &lines) {
		return []model.CartLine{}
	}
	return lines
}

func (r *kvCartRepo) Add(ctx context.Context, productID string, qty int) ([]model.CartLine, error) {
	if qty < 1 {
		qty = 1
	}
	lines := r.Get(ctx)
	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Qty += qty
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, model.CartLine{ProductID: productID, Qty: qty})
	}
	return lines, r.write(ctx, lines)
}

func (r *kvCartRepo) UpdateQty(ctx context.Context, productID string, qty int) ([]model.CartLine, error) {
	if qty < 1 {
		qty = 1
	}
	lines := r.Get(ctx)
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Qty = qty
		}
	}
	return lines, r.write(ctx, lines)
}

func (r *kvCartRepo) Remove(ctx context.Context, productID string) ([]model.CartLine, error) {
	lines := r.Get(ctx)
	kept := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	return kept, r.write(ctx, kept)
}

func (r *kvCartRepo) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, storage.KeyCart); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (r *kvCartRepo) write(ctx context.Context, lines []model.CartLine) error {
	if err := r.store.Set(ctx, storage.KeyCart, lines); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return nil
}
