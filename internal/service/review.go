package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vistastore/storefront/internal/dto"
	"github.com/vistastore/storefront/internal/model"
	"github.com/vistastore/storefront/internal/repository"
)

type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

func (s *ReviewService) List(ctx context.Context, productID string) []model.Review {
	return s.reviewRepo.ListForProduct(ctx, productID)
}

// Add records a review and returns the product's updated review list.
func (s *ReviewService) Add(ctx context.Context, productID string, req dto.AddReviewRequest) ([]model.Review, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return s.reviewRepo.Add(ctx, productID, model.Review{
		User:   req.User,
		Rating: decimal.NewFromFloat(req.Rating),
		Text:   req.Text,
	})
}
