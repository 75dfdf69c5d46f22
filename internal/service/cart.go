package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vistastore/storefront/internal/dto"
	"github.com/vistastore/storefront/internal/model"
	"github.com/vistastore/storefront/internal/repository"
)

type CartService struct {
	cartRepo     repository.CartRepository
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, wishlistRepo: wishlistRepo, productRepo: productRepo}
}

// View joins cart lines with the effective catalog. Lines whose product no
// longer exists are dropped from the view (they stay in storage until
// removed explicitly).
func (s *CartService) View(ctx context.Context) (*dto.CartViewResponse, error) {
	lines := s.cartRepo.Get(ctx)
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	view := &dto.CartViewResponse{Lines: []dto.CartLineResponse{}, Total: decimal.Zero}
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			continue
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Qty)))
		view.Lines = append(view.Lines, dto.CartLineResponse{
			ProductID: line.ProductID,
			Title:     product.Title,
			Price:     product.Price,
			Qty:       line.Qty,
			Subtotal:  subtotal,
		})
		view.Total = view.Total.Add(subtotal)
	}
	return view, nil
}

func (s *CartService) AddItem(ctx context.Context, productID string, qty int) ([]model.CartLine, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return s.cartRepo.Add(ctx, productID, qty)
}

func (s *CartService) UpdateQty(ctx context.Context, productID string, qty int) ([]model.CartLine, error) {
	return s.cartRepo.UpdateQty(ctx, productID, qty)
}

func (s *CartService) RemoveItem(ctx context.Context, productID string) ([]model.CartLine, error) {
	return s.cartRepo.Remove(ctx, productID)
}

func (s *CartService) Clear(ctx context.Context) error {
	return s.cartRepo.Clear(ctx)
}

func (s *CartService) Wishlist(ctx context.Context) []string {
	return s.wishlistRepo.List(ctx)
}

func (s *CartService) ToggleWishlist(ctx context.Context, productID string) ([]string, error) {
	return s.wishlistRepo.Toggle(ctx, productID)
}

func (s *CartService) InWishlist(ctx context.Context, productID string) bool {
	return s.wishlistRepo.Contains(ctx, productID)
}
