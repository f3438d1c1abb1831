package services

import (
	"context"
	"errors"

	"github.com/esportivai/backend/models"
	"github.com/esportivai/backend/repositories"
)

type RegisterSportInput struct {
	UserID     int    `json:"id_usuario"`
	SportID    int    `json:"id_esporte"`
	SkillLevel string `json:"nivel_habilidade"`
}

type SportService interface {
	ListByUser(ctx context.Context, userID int) ([]models.UserSportRow, error)
	Register(ctx context.Context, input RegisterSportInput) (*models.UserSport, error)
	UpdateSkillLevel(ctx context.Context, id int, skillLevel string) error
	Remove(ctx context.Context, id int) error
}

type sportService struct {
	userSportRepo repositories.UserSportRepository
}

func NewSportService(userSportRepo repositories.UserSportRepository) SportService {
	return &sportService{
		userSportRepo: userSportRepo,
	}
}

func (s *sportService) ListByUser(ctx context.Context, userID int) ([]models.UserSportRow, error) {
	return s.userSportRepo.ListByUser(ctx, userID)
}

// Register creates a sport registration after checking the (user, sport)
// pair is not already present. The check precedes the insert and is not
// transactional; concurrent duplicate registrations can slip through.
func (s *sportService) Register(ctx context.Context, input RegisterSportInput) (*models.UserSport, error) {
	exists, err := s.userSportRepo.Exists(ctx, input.UserID, input.SportID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSportAlreadyRegistered
	}

	registration := &models.UserSport{
		UserID:     input.UserID,
		SportID:    input.SportID,
		SkillLevel: input.SkillLevel,
	}
	if err := s.userSportRepo.Create(ctx, registration); err != nil {
		return nil, err
	}
	return registration, nil
}

func (s *sportService) UpdateSkillLevel(ctx context.Context, id int, skillLevel string) error {
	if err := s.userSportRepo.UpdateSkillLevel(ctx, id, skillLevel); err != nil {
		if errors.Is(err, repositories.ErrUserSportNotFound) {
			return ErrUserSportNotFound
		}
		return err
	}
	return nil
}

func (s *sportService) Remove(ctx context.Context, id int) error {
	if err := s.userSportRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrUserSportNotFound) {
			return ErrUserSportNotFound
		}
		return err
	}
	return nil
}
