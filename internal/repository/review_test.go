package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistastore/storefront/internal/model"
	"github.com/vistastore/storefront/internal/storage"
)

func TestReviewAdd_AssignsIDAndDate(t *testing.T) {
	repo := NewReviewRepository(storage.NewMemory())

	list, err := repo.Add(context.Background(), "p1", model.Review{
		User: "Ann", Rating: decimal.NewFromInt(5), Text: "great",
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotEmpty(t, list[0].ID)
	assert.Equal(t, "p1", list[0].ProductID)
	assert.False(t, list[0].Date.IsZero())
}

func TestReviewAdd_AppendsPerProduct(t *testing.T) {
	repo := NewReviewRepository(storage.NewMemory())
	ctx := context.Background()

	_, err := repo.Add(ctx, "p1", model.Review{User: "Ann", Rating: decimal.NewFromInt(5)})
	require.NoError(t, err)
	_, err = repo.Add(ctx, "p2", model.Review{User: "Ben", Rating: decimal.NewFromInt(2)})
	require.NoError(t, err)
	list, err := repo.Add(ctx, "p1", model.Review{User: "Cam", Rating: decimal.NewFromInt(4)})
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, "Ann", list[0].User)
	assert.Equal(t, "Cam", list[1].User)
	assert.Len(t, repo.ListForProduct(ctx, "p2"), 1)
}

func TestReviewList_EmptyWhenNoneRecorded(t *testing.T) {
	repo := NewReviewRepository(storage.NewMemory())
	assert.Empty(t, repo.ListForProduct(context.Background(), "p1"))
}
