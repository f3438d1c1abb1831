package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/esportivai/backend/models"
	"github.com/esportivai/backend/repositories"
	"github.com/esportivai/backend/utils"
)

type LoginInput struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{
		userRepo: userRepo,
	}
}

// Login resolves the user by email and verifies the password. An unknown
// email and a wrong password are distinct failures: the API reports the
// former as not found and the latter as unauthorized.
func (s *authService) Login(ctx context.Context, input LoginInput) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	if !utils.CheckPasswordHash(input.Senha, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	user.PasswordHash = ""

	return user, nil
}
