// Package storage provides the key-value slots all local state lives in.
// Every collection (edit log, user overrides, cart, wishlist, reviews,
// session, theme) occupies one slot holding a JSON document; mutations are
// whole-slot read-modify-write with no cross-key transactions.
package storage

import "context"

// Storage keys, one per entity collection.
const (
	KeyProductEdits = "db_products_edits"
	KeyUsers        = "db_users"
	KeyOrders       = "db_orders"
	KeyReviews      = "db_reviews"
	KeyCart         = "cart_items"
	KeyWishlist     = "wishlist_items"
	KeySession      = "auth_user"
	KeyTheme        = "ec_theme"
)

// Store is a typed accessor over a persistent key-value medium.
//
// Get decodes the stored JSON into out and reports whether it succeeded.
// An absent key or undecodable content returns false, never an error; when
// Get returns false the contents of out are undefined and the caller falls
// back to its own default. Set marshals v and overwrites the whole slot.
type Store interface {
	Get(ctx context.Context, key string, out any) bool
	Set(ctx context.Context, key string, v any) error
	Remove(ctx context.Context, key string) error
}
