package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistastore/storefront/internal/dto"
	"github.com/vistastore/storefront/internal/model"
	"github.com/vistastore/storefront/internal/repository"
	"github.com/vistastore/storefront/internal/storage"
)

func newAuthService(source *fakeSource) (*AuthService, repository.UserRepository) {
	store := storage.NewMemory()
	userRepo := repository.NewUserRepository(source, store)
	return NewAuthService(userRepo, repository.NewSessionRepository(store)), userRepo
}

func TestAuthService_Register(t *testing.T) {
	svc, _ := newAuthService(&fakeSource{})
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{
		Name: "Ann", Email: "ann@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, model.RoleCustomer, user.Role)
	assert.False(t, user.CreatedAt.IsZero())

	// Registration signs the user in.
	session := svc.Current(ctx)
	require.NotNil(t, session)
	assert.Equal(t, user.ID, session.ID)
	assert.Equal(t, "ann@example.com", session.Email)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, userRepo := newAuthService(&fakeSource{users: []model.User{
		{ID: "u1", Email: "ann@example.com"},
	}})
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{
		Name: "Ann", Email: "ann@example.com", Password: "secret1",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Stored state is untouched: base user only, no session.
	users, err := userRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Nil(t, svc.Current(ctx))
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newAuthService(&fakeSource{users: []model.User{
		{ID: "u1", Name: "Ann", Email: "ann@example.com", Password: "secret1", Role: model.RoleAdmin},
	}})
	ctx := context.Background()

	user, err := svc.Login(ctx, dto.LoginRequest{Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	session := svc.Current(ctx)
	require.NotNil(t, session)
	assert.Equal(t, model.RoleAdmin, session.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newAuthService(&fakeSource{users: []model.User{
		{ID: "u1", Email: "ann@example.com", Password: "secret1"},
	}})

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "ann@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newAuthService(&fakeSource{})

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "nobody@example.com", Password: "x",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_OverrideWinsOnCollision(t *testing.T) {
	svc, userRepo := newAuthService(&fakeSource{users: []model.User{
		{ID: "u1", Email: "ann@example.com", Password: "old"},
	}})
	ctx := context.Background()

	// A locally registered user with the same email shadows the base entry.
	require.NoError(t, userRepo.Create(ctx, &model.User{
		Name: "Ann", Email: "ann@example.com", Password: "new", Role: model.RoleCustomer,
	}))

	_, err := svc.Login(ctx, dto.LoginRequest{Email: "ann@example.com", Password: "old"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	user, err := svc.Login(ctx, dto.LoginRequest{Email: "ann@example.com", Password: "new"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	svc, _ := newAuthService(&fakeSource{users: []model.User{
		{ID: "u1", Email: "ann@example.com", Password: "secret1"},
	}})
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	assert.Nil(t, svc.Current(ctx))
	require.NoError(t, svc.Logout(ctx))
}

func TestAuthService_RequireAdmin(t *testing.T) {
	svc, _ := newAuthService(&fakeSource{users: []model.User{
		{ID: "u1", Email: "ann@example.com", Password: "secret1", Role: model.RoleCustomer},
		{ID: "u2", Email: "root@example.com", Password: "secret2", Role: model.RoleAdmin},
	}})
	ctx := context.Background()

	_, err := svc.RequireAdmin(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = svc.RequireAdmin(ctx)
	assert.ErrorIs(t, err, ErrAdminOnly)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "root@example.com", Password: "secret2"})
	require.NoError(t, err)
	session, err := svc.RequireAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u2", session.ID)
}
