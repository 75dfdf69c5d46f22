package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vistastore/storefront/internal/dto"
	"github.com/vistastore/storefront/internal/model"
	"github.com/vistastore/storefront/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

const (
	SortPopular   = "popular"
	SortPriceAsc  = "lth"
	SortPriceDesc = "htl"
)

type ProductService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List applies the browse filters (category, price range, minimum rating)
// and sort order to the effective catalog.
func (s *ProductService) List(ctx context.Context, req dto.ListProductsRequest) (*dto.ProductListResponse, error) {
	all, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	minPrice := decimal.NewFromFloat(req.MinPrice)
	maxPrice := decimal.NewFromFloat(req.MaxPrice)
	minRating := decimal.NewFromFloat(req.MinRating)

	filtered := make([]model.Product, 0, len(all))
	for _, p := range all {
		if req.Category != "" && req.Category != "All" && p.Category != req.Category {
			continue
		}
		if p.Price.LessThan(minPrice) || p.Price.GreaterThan(maxPrice) {
			continue
		}
		if p.Rating.LessThan(minRating) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch req.Sort {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.LessThan(filtered[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.GreaterThan(filtered[j].Price)
		})
	case SortPopular:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ReviewsCount > filtered[j].ReviewsCount
		})
	}

	resp := dto.ToProductListResponse(filtered)
	return &resp, nil
}

func (s *ProductService) ListFeatured(ctx context.Context) (*dto.ProductListResponse, error) {
	all, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	featured := make([]model.Product, 0, len(all))
	for _, p := range all {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	resp := dto.ToProductListResponse(featured)
	return &resp, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	resp := dto.ToProductResponse(*product)
	return &resp, nil
}

// Search backs the suggestion dropdown: at most six matches, catalog order.
func (s *ProductService) Search(ctx context.Context, query string) ([]dto.ProductResponse, error) {
	all, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	matches := repository.Search(all, query)
	out := make([]dto.ProductResponse, 0, len(matches))
	for _, p := range matches {
		out = append(out, dto.ToProductResponse(p))
	}
	return out, nil
}

func (s *ProductService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	created, err := s.productRepo.Create(ctx, model.Product{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		CompareAt:   req.CompareAt,
		Category:    req.Category,
		Images:      req.Images,
		Tags:        req.Tags,
		Featured:    req.Featured,
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	resp := dto.ToProductResponse(created)
	return &resp, nil
}

func (s *ProductService) Update(ctx context.Context, id string, req dto.UpdateProductRequest) error {
	// The edit log does not validate ids; a stale update is dropped at
	// replay time.
	patch := model.ProductPatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		CompareAt:   req.CompareAt,
		Category:    req.Category,
		Images:      req.Images,
		Tags:        req.Tags,
		Featured:    req.Featured,
	}
	if err := s.productRepo.Update(ctx, id, patch); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
