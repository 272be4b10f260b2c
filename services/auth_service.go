package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"furniture-shop/models"
	"furniture-shop/repositories"
	"furniture-shop/utils"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService is the authentication collaborator: email/password account
// creation and sign-in over credential hashes stored alongside the
// profile documents.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (*models.User, error) {
	existing, _, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
	}

	if err := s.users.Create(ctx, user, hash); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	user, hash, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	valid, err := utils.VerifyPassword(hash, password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
