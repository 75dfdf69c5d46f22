package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vistastore/storefront/internal/model"
)

// --- Auth ---

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func ToSessionResponse(s model.Session) SessionResponse {
	return SessionResponse{ID: s.ID, Name: s.Name, Email: s.Email, Role: s.Role}
}

// --- Product ---

type CreateProductRequest struct {
	ID          string           `json:"id"`
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	CompareAt   *decimal.Decimal `json:"compareAt"`
	Category    string           `json:"category"`
	Images      []string         `json:"images"`
	Tags        []string         `json:"tags"`
	Featured    bool             `json:"featured"`
}

type UpdateProductRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CompareAt   *decimal.Decimal `json:"compareAt"`
	Category    *string          `json:"category"`
	Images      *[]string        `json:"images"`
	Tags        *[]string        `json:"tags"`
	Featured    *bool            `json:"featured"`
}

type ListProductsRequest struct {
	Category  string  `form:"cat,default=All"`
	MinPrice  float64 `form:"min"`
	MaxPrice  float64 `form:"max,default=9999"`
	MinRating float64 `form:"rating"`
	Sort      string  `form:"sort,default=popular" binding:"oneof=popular lth htl"`
}

type ProductResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description,omitempty"`
	Price        decimal.Decimal  `json:"price"`
	CompareAt    *decimal.Decimal `json:"compareAt,omitempty"`
	Category     string           `json:"category,omitempty"`
	Images       []string         `json:"images,omitempty"`
	Tags         []string         `json:"tags,omitempty"`
	Rating       decimal.Decimal  `json:"rating"`
	ReviewsCount int              `json:"reviewsCount"`
	Featured     bool             `json:"featured,omitempty"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

func ToProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		CompareAt:    p.CompareAt,
		Category:     p.Category,
		Images:       p.Images,
		Tags:         p.Tags,
		Rating:       p.Rating,
		ReviewsCount: p.ReviewsCount,
		Featured:     p.Featured,
	}
}

func ToProductListResponse(products []model.Product) ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return ProductListResponse{Products: items, Total: len(items)}
}

// --- Cart ---

type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       int    `json:"qty"`
}

// UpdateCartQtyRequest carries no minimum binding: out-of-range quantities
// are clamped, not rejected.
type UpdateCartQtyRequest struct {
	Qty int `json:"qty"`
}

type CartLineResponse struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Qty       int             `json:"qty"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartViewResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total decimal.Decimal    `json:"total"`
}

type WishlistResponse struct {
	ProductIDs []string `json:"productIds"`
}

// --- Order ---

type CheckoutRequest struct {
	Shipping map[string]string `json:"shipping" binding:"required"`
}

type OrderResponse struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	Items     []model.OrderItem `json:"items"`
	Total     decimal.Decimal   `json:"total"`
	Shipping  map[string]string `json:"shipping,omitempty"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

func ToOrderResponse(o model.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Items:     o.Items,
		Total:     o.Total,
		Shipping:  o.Shipping,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

// --- Review ---

type AddReviewRequest struct {
	User   string  `json:"user" binding:"required"`
	Rating float64 `json:"rating" binding:"required,min=1,max=5"`
	Text   string  `json:"text" binding:"required"`
}

// --- Prefs ---

type ThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"`
}
