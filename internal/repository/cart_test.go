package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistastore/storefront/internal/model"
	"github.com/vistastore/storefront/internal/storage"
)

func TestCartAdd_MergesLinesPerProduct(t *testing.T) {
	repo := NewCartRepository(storage.NewMemory())
	ctx := context.Background()

	_, err := repo.Add(ctx, "x", 1)
	require.NoError(t, err)
	lines, err := repo.Add(ctx, "x", 2)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, model.CartLine{ProductID: "x", Qty: 3}, lines[0])
}

func TestCartAdd_ZeroQtyDefaultsToOne(t *testing.T) {
	repo := NewCartRepository(storage.NewMemory())

	lines, err := repo.Add(context.Background(), "x", 0)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Qty)
}

func TestCartUpdateQty_ClampsToOne(t *testing.T) {
	repo := NewCartRepository(storage.NewMemory())
	ctx := context.Background()

	_, err := repo.Add(ctx, "x", 5)
	require.NoError(t, err)

	lines, err := repo.UpdateQty(ctx, "x", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, lines[0].Qty)

	lines, err = repo.UpdateQty(ctx, "x", -3)
	require.NoError(t, err)
	assert.Equal(t, 1, lines[0].Qty)
}

func TestCartRemove(t *testing.T) {
	repo := NewCartRepository(storage.NewMemory())
	ctx := context.Background()

	_, err := repo.Add(ctx, "x", 1)
	require.NoError(t, err)
	_, err = repo.Add(ctx, "y", 1)
	require.NoError(t, err)

	lines, err := repo.Remove(ctx, "x")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "y", lines[0].ProductID)

	// Removing an absent product is a no-op.
	lines, err = repo.Remove(ctx, "zzz")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestCartClear(t *testing.T) {
	repo := NewCartRepository(storage.NewMemory())
	ctx := context.Background()

	_, err := repo.Add(ctx, "x", 2)
	require.NoError(t, err)
	require.NoError(t, repo.Clear(ctx))
	assert.Empty(t, repo.Get(ctx))
}

func TestCartGet_CorruptSlotFallsBackToEmpty(t *testing.T) {
	store := storage.NewMemory()
	store.Corrupt(storage.KeyCart, []byte("!!"))
	repo := NewCartRepository(store)

	assert.Empty(t, repo.Get(context.Background()))
}

func TestWishlistToggle_PairRestoresOriginal(t *testing.T) {
	repo := NewWishlistRepository(storage.NewMemory())
	ctx := context.Background()

	_, err := repo.Toggle(ctx, "a")
	require.NoError(t, err)
	before := repo.List(ctx)

	_, err = repo.Toggle(ctx, "b")
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, "b")
	require.NoError(t, err)

	assert.Equal(t, before, repo.List(ctx))
}

func TestWishlistToggle_PrependsNewest(t *testing.T) {
	repo := NewWishlistRepository(storage.NewMemory())
	ctx := context.Background()

	_, err := repo.Toggle(ctx, "a")
	require.NoError(t, err)
	ids, err := repo.Toggle(ctx, "b")
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, ids)
}

func TestWishlistContains(t *testing.T) {
	repo := NewWishlistRepository(storage.NewMemory())
	ctx := context.Background()

	assert.False(t, repo.Contains(ctx, "a"))
	_, err := repo.Toggle(ctx, "a")
	require.NoError(t, err)
	assert.True(t, repo.Contains(ctx, "a"))
}
