package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vistastore/storefront/internal/dto"
	"github.com/vistastore/storefront/internal/model"
	"github.com/vistastore/storefront/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrAdminOnly          = errors.New("admin only")
)

// AuthService owns registration, login and the single active session.
// Credentials compare by plain equality: this is a demo store, there is no
// hashing anywhere by design.
type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) *AuthService {
	return &AuthService{userRepo: userRepo, sessionRepo: sessionRepo}
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.RoleCustomer,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.sessionRepo.Save(ctx, user.Session()); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil || user.Password != req.Password {
		return nil, ErrInvalidCredentials
	}

	if err := s.sessionRepo.Save(ctx, user.Session()); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessionRepo.Clear(ctx)
}

func (s *AuthService) Current(ctx context.Context) *model.Session {
	return s.sessionRepo.Current(ctx)
}

func (s *AuthService) RequireSession(ctx context.Context) (*model.Session, error) {
	session := s.sessionRepo.Current(ctx)
	if session == nil {
		return nil, ErrNotAuthenticated
	}
	return session, nil
}

func (s *AuthService) RequireAdmin(ctx context.Context) (*model.Session, error) {
	session, err := s.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	if session.Role != model.RoleAdmin {
		return nil, ErrAdminOnly
	}
	return session, nil
}
