package services

import (
	"context"
	"errors"

	"github.com/esportivai/backend/models"
	"github.com/esportivai/backend/repositories"
)

type ParticipationService interface {
	ListByUser(ctx context.Context, userID int) ([]models.ParticipationDetail, error)
	Update(ctx context.Context, id, userID, eventID int) (*models.Participation, error)
	Delete(ctx context.Context, id int) error
}

type participationService struct {
	participationRepo repositories.ParticipationRepository
}

func NewParticipationService(participationRepo repositories.ParticipationRepository) ParticipationService {
	return &participationService{
		participationRepo: participationRepo,
	}
}

// ListByUser reports not found when the user has no participations, so
// the handler answers 404 instead of an empty array.
func (s *participationService) ListByUser(ctx context.Context, userID int) ([]models.ParticipationDetail, error) {
	details, err := s.participationRepo.ListDetailsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrParticipationNotFound
	}
	return details, nil
}

func (s *participationService) Update(ctx context.Context, id, userID, eventID int) (*models.Participation, error) {
	participation := &models.Participation{
		ID:      id,
		UserID:  userID,
		EventID: eventID,
	}
	if err := s.participationRepo.Update(ctx, participation); err != nil {
		if errors.Is(err, repositories.ErrParticipationNotFound) {
			return nil, ErrParticipationNotFound
		}
		return nil, err
	}
	return participation, nil
}

func (s *participationService) Delete(ctx context.Context, id int) error {
	if err := s.participationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrParticipationNotFound) {
			return ErrParticipationNotFound
		}
		return err
	}
	return nil
}
