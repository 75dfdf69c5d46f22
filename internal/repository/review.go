package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vistastore/storefront/internal/model"
	"github.com/vistastore/storefront/internal/storage"
)

// ReviewRepository keeps per-product review lists in a single map slot.
// Reviews are append-only; the product repository reads the same slot to
// derive rating aggregates.
type ReviewRepository interface {
	ListForProduct(ctx context.Context, productID string) []model.Review
	Add(ctx context.Context, productID string, review model.Review) ([]model.Review, error)
}

type kvReviewRepo struct {
	store storage.Store
}

func NewReviewRepository(store storage.Store) ReviewRepository {
	return &kvReviewRepo{store: store}
}

func (r *kvReviewRepo) ListForProduct(ctx context.Context, productID string) []model.Review {
	all := r.all(ctx)
	if list, ok := all[productID]; ok {
		return list
	}
	return []model.Review{}
}

func (r *kvReviewRepo) Add(ctx context.Context, productID string, review model.Review) ([]model.Review, error) {
	review.ID = uuid.NewString()
	review.ProductID = productID
	review.Date = time.Now().UTC()

	all := r.all(ctx)
	all[productID] = append(all[productID], review)
	if err := r.store.Set(ctx, storage.KeyReviews, all); err != nil {
		return nil, fmt.Errorf("add review: %w", err)
	}
	return all[productID], nil
}

func (r *kvReviewRepo) all(ctx context.Context) map[string][]model.Review {
	all := map[string][]model.Review{}
	if !r.store.Get(ctx, storage.KeyReviews, &all) {
		return map[string][]model.Review{}
	}
	return all
}
