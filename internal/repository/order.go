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

// OrderRepository reads the concatenation of the base orders document
// (empty when unavailable) and the local override list, base first. Placed
// orders only ever append; there is no update or delete.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	Place(ctx context.Context, draft model.Order) (model.Order, error)
}

type kvOrderRepo struct {
	source catalog.Source
	store  storage.Store
}

func NewOrderRepository(source catalog.Source, store storage.Store) OrderRepository {
	return &kvOrderRepo{source: source, store: store}
}

func (r *kvOrderRepo) List(ctx context.Context) ([]model.Order, error) {
	base, err := r.source.Orders(ctx)
	if err != nil {
		base = nil
	}
	return append(base, r.override(ctx)...), nil
}

func (r *kvOrderRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil
}

func (r *kvOrderRepo) Place(ctx context.Context, draft model.Order) (model.Order, error) {
	draft.ID = uuid.NewString()
	draft.CreatedAt = time.Now().UTC()
	draft.Status = model.OrderStatusProcessing

	override := append(r.override(ctx), draft)
	if err := r.store.Set(ctx, storage.KeyOrders, override); err != nil {
		return model.Order{}, fmt.Errorf("place order: %w", err)
	}
	return draft, nil
}

func (r *kvOrderRepo) override(ctx context.Context) []model.Order {
	override := []model.Order{}
	if !r.store.Get(ctx, storage.KeyOrders, &override) {
		return []model.Order{}
	}
	return override
}
