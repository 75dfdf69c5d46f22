package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistastore/storefront/internal/model"
	"github.com/vistastore/storefront/internal/storage"
)

func TestUserList_OverrideWinsByEmail(t *testing.T) {
	source := &fakeSource{users: []model.User{
		{ID: "u1", Name: "Base Alice", Email: "alice@example.com"},
		{ID: "u2", Name: "Bob", Email: "bob@example.com"},
	}}
	store := storage.NewMemory()
	repo := NewUserRepository(source, store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Name: "Local Alice", Email: "alice@example.com"}))
	require.NoError(t, repo.Create(ctx, &model.User{Name: "Carol", Email: "carol@example.com"}))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	// Base order first, override-only entries after.
	assert.Equal(t, "Local Alice", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
	assert.Equal(t, "Carol", users[2].Name)
}

func TestUserList_BaseUnavailableTreatedAsEmpty(t *testing.T) {
	source := &fakeSource{usersErr: errors.New("boom")}
	repo := NewUserRepository(source, storage.NewMemory())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Name: "Carol", Email: "carol@example.com"}))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "carol@example.com", users[0].Email)
}

func TestUserCreate_AssignsIDAndTimestamp(t *testing.T) {
	repo := NewUserRepository(&fakeSource{}, storage.NewMemory())

	u := &model.User{Name: "Dave", Email: "dave@example.com"}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestUserGetByEmail(t *testing.T) {
	source := &fakeSource{users: []model.User{{ID: "u1", Email: "alice@example.com"}}}
	repo := NewUserRepository(source, storage.NewMemory())
	ctx := context.Background()

	found, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "u1", found.ID)

	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSessionLifecycle(t *testing.T) {
	repo := NewSessionRepository(storage.NewMemory())
	ctx := context.Background()

	assert.Nil(t, repo.Current(ctx))

	require.NoError(t, repo.Save(ctx, model.Session{ID: "u1", Email: "a@b.c", Role: model.RoleCustomer}))
	sess := repo.Current(ctx)
	require.NotNil(t, sess)
	assert.Equal(t, "u1", sess.ID)

	require.NoError(t, repo.Clear(ctx))
	assert.Nil(t, repo.Current(ctx))
	// Clearing twice is idempotent.
	require.NoError(t, repo.Clear(ctx))
}

func TestSession_CorruptRecordReadsAsSignedOut(t *testing.T) {
	store := storage.NewMemory()
	store.Corrupt(storage.KeySession, []byte("{{"))
	repo := NewSessionRepository(store)

	assert.Nil(t, repo.Current(context.Background()))
}

func TestOrderList_BaseThenOverride(t *testing.T) {
	source := &fakeSource{orders: []model.Order{{ID: "base1", UserID: "u1"}}}
	repo := NewOrderRepository(source, storage.NewMemory())
	ctx := context.Background()

	placed, err := repo.Place(ctx, model.Order{UserID: "u2"})
	require.NoError(t, err)
	assert.NotEmpty(t, placed.ID)
	assert.Equal(t, model.OrderStatusProcessing, placed.Status)
	assert.False(t, placed.CreatedAt.IsZero())

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "base1", orders[0].ID)
	assert.Equal(t, placed.ID, orders[1].ID)
}

func TestOrderList_BaseUnavailableTreatedAsEmpty(t *testing.T) {
	source := &fakeSource{ordersErr: errors.New("boom")}
	repo := NewOrderRepository(source, storage.NewMemory())
	ctx := context.Background()

	_, err := repo.Place(ctx, model.Order{UserID: "u1"})
	require.NoError(t, err)

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderGetByID(t *testing.T) {
	repo := NewOrderRepository(&fakeSource{}, storage.NewMemory())
	ctx := context.Background()

	placed, err := repo.Place(ctx, model.Order{UserID: "u1"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, placed.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
