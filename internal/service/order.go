package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vistastore/storefront/internal/model"
	"github.com/vistastore/storefront/internal/repository"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderAccessDenied = errors.New("access denied")
)

type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, productRepo repository.ProductRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, cartRepo: cartRepo, productRepo: productRepo}
}

// Checkout turns the current cart into an order. The total is computed
// against the effective catalog at placement time and frozen; lines whose
// product vanished from the catalog are excluded. The cart is cleared on
// success.
func (s *OrderService) Checkout(ctx context.Context, userID string, shipping map[string]string) (*model.Order, error) {
	lines := s.cartRepo.Get(ctx)
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			continue
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Qty))))
		items = append(items, model.OrderItem{ProductID: line.ProductID, Qty: line.Qty})
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order, err := s.orderRepo.Place(ctx, model.Order{
		UserID:   userID,
		Items:    items,
		Total:    total,
		Shipping: shipping,
	})
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	if err := s.cartRepo.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	return &order, nil
}

func (s *OrderService) GetByID(ctx context.Context, orderID, userID string) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrOrderAccessDenied
	}
	return order, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]model.Order, error) {
	all, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	mine := make([]model.Order, 0, len(all))
	for _, o := range all {
		if o.UserID == userID {
			mine = append(mine, o)
		}
	}
	return mine, nil
}
