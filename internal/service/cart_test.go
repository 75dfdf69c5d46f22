package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistastore/storefront/internal/model"
	"github.com/vistastore/storefront/internal/repository"
	"github.com/vistastore/storefront/internal/storage"
)

func newCartService(source *fakeSource) *CartService {
	store := storage.NewMemory()
	return NewCartService(
		repository.NewCartRepository(store),
		repository.NewWishlistRepository(store),
		repository.NewProductRepository(source, store),
	)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	svc := newCartService(&fakeSource{})

	_, err := svc.AddItem(context.Background(), "nope", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartService_AddItem(t *testing.T) {
	svc := newCartService(&fakeSource{products: []model.Product{
		catalogProduct("a", "Audio", "10", 0),
	}})
	ctx := context.Background()

	lines, err := svc.AddItem(ctx, "a", 2)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Qty)
}

func TestCartService_View(t *testing.T) {
	svc := newCartService(&fakeSource{products: []model.Product{
		catalogProduct("a", "Audio", "10", 0),
		catalogProduct("b", "Audio", "4", 0),
	}})
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "a", 2)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "b", 1)
	require.NoError(t, err)

	view, err := svc.View(ctx)
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)
	assert.True(t, view.Lines[0].Subtotal.Equal(d("20")))
	assert.True(t, view.Total.Equal(d("24")), "got %s", view.Total)
}

func TestCartService_View_DropsOrphanedLines(t *testing.T) {
	source := &fakeSource{products: []model.Product{catalogProduct("a", "Audio", "10", 0)}}
	store := storage.NewMemory()
	cartRepo := repository.NewCartRepository(store)
	svc := NewCartService(cartRepo, repository.NewWishlistRepository(store),
		repository.NewProductRepository(source, store))
	ctx := context.Background()

	// Line for a product that no longer exists in the catalog.
	_, err := cartRepo.Add(ctx, "gone", 1)
	require.NoError(t, err)
	_, err = cartRepo.Add(ctx, "a", 1)
	require.NoError(t, err)

	view, err := svc.View(ctx)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "a", view.Lines[0].ProductID)
	// The orphaned line stays in storage.
	assert.Len(t, cartRepo.Get(ctx), 2)
}

func TestCartService_WishlistPassthrough(t *testing.T) {
	svc := newCartService(&fakeSource{})
	ctx := context.Background()

	ids, err := svc.ToggleWishlist(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)
	assert.True(t, svc.InWishlist(ctx, "a"))
	assert.Equal(t, []string{"a"}, svc.Wishlist(ctx))
}
