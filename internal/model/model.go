package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleUser     = "user"
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

const OrderStatusProcessing = "processing"

// Product is a single catalog entry. Rating and ReviewsCount are derived
// fields: the values from the base document are overlaid with locally
// recorded reviews at read time.
type Product struct {
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

// ProductPatch is a partial product carried by update edits. Only non-nil
// fields are applied.
type ProductPatch struct {
	Title        *string          `json:"title,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	CompareAt    *decimal.Decimal `json:"compareAt,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Images       *[]string        `json:"images,omitempty"`
	Tags         *[]string        `json:"tags,omitempty"`
	Rating       *decimal.Decimal `json:"rating,omitempty"`
	ReviewsCount *int             `json:"reviewsCount,omitempty"`
	Featured     *bool            `json:"featured,omitempty"`
}

// Apply shallow-merges the patch onto p.
func (patch ProductPatch) Apply(p *Product) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.CompareAt != nil {
		p.CompareAt = patch.CompareAt
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.ReviewsCount != nil {
		p.ReviewsCount = *patch.ReviewsCount
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
}

type EditAction string

const (
	EditCreate EditAction = "create"
	EditUpdate EditAction = "update"
	EditDelete EditAction = "delete"
)

// ProductEdit is one entry of the append-only edit log layered over the
// base catalog. Create carries a full Product, update carries the target ID
// and a Patch, delete carries only the target ID.
type ProductEdit struct {
	Action  EditAction    `json:"action"`
	ID      string        `json:"id,omitempty"`
	Product *Product      `json:"product,omitempty"`
	Patch   *ProductPatch `json:"patch,omitempty"`
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the public projection of the signed-in user. At most one
// session record exists at a time.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) Session() Session {
	return Session{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

type CartLine struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

type OrderItem struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// Order is immutable once placed. Total is computed at placement time and
// never recomputed.
type Order struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	Items     []OrderItem       `json:"items"`
	Total     decimal.Decimal   `json:"total"`
	Shipping  map[string]string `json:"shipping,omitempty"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

type Review struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	User      string          `json:"user"`
	Rating    decimal.Decimal `json:"rating"`
	Text      string          `json:"text"`
	Date      time.Time       `json:"date"`
}
