package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/esportivai/backend/models"
	"github.com/esportivai/backend/repositories"
	"github.com/esportivai/backend/utils"
)

type CreateUserInput struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// UpdateUserInput requires nome and email; senha is optional and, when
// empty, the stored password is kept.
type UpdateUserInput struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, input CreateUserInput) (*models.User, error)
	Update(ctx context.Context, id int, input UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, id int) error
	GetProfile(ctx context.Context, id int) (*models.UserProfile, error)
	ListOrganizedEvents(ctx context.Context, userID int) ([]models.Event, error)
	ListParticipationSummaries(ctx context.Context, userID int) ([]models.UserParticipation, error)
	ListJoinedEvents(ctx context.Context, userID int, window repositories.EventWindow) ([]models.UserEvent, error)
}

type userService struct {
	userRepo          repositories.UserRepository
	eventRepo         repositories.EventRepository
	participationRepo repositories.ParticipationRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	eventRepo repositories.EventRepository,
	participationRepo repositories.ParticipationRepository,
) UserService {
	return &userService{
		userRepo:          userRepo,
		eventRepo:         eventRepo,
		participationRepo: participationRepo,
	}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *userService) Create(ctx context.Context, input CreateUserInput) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(input.Senha)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         input.Nome,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id int, input UpdateUserInput) (*models.User, error) {
	user := &models.User{
		ID:    id,
		Name:  input.Nome,
		Email: input.Email,
	}

	// An empty hash tells the repository to keep the stored password.
	if input.Senha != "" {
		hashedPassword, err := utils.HashPassword(input.Senha)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hashedPassword
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *userService) GetProfile(ctx context.Context, id int) (*models.UserProfile, error) {
	profile, err := s.userRepo.GetProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *userService) ListOrganizedEvents(ctx context.Context, userID int) ([]models.Event, error) {
	return s.eventRepo.ListRawByOrganizer(ctx, userID)
}

func (s *userService) ListParticipationSummaries(ctx context.Context, userID int) ([]models.UserParticipation, error) {
	return s.participationRepo.ListSummariesByUser(ctx, userID)
}

func (s *userService) ListJoinedEvents(ctx context.Context, userID int, window repositories.EventWindow) ([]models.UserEvent, error) {
	return s.eventRepo.ListJoinedByUser(ctx, userID, window)
}
