package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/esportivai/backend/models"
	"github.com/esportivai/backend/repositories"
	"golang.org/x/sync/errgroup"
)

const (
	eventDateLayout = "2006-01-02"
	eventTimeLayout = "15:04"
)

type CreateEventInput struct {
	Nome             string `json:"nome"`
	IDEsporte        int    `json:"id_esporte"`
	Data             string `json:"data"`
	Horario          string `json:"horario"`
	Local            string `json:"local"`
	MaxParticipantes int    `json:"max_participantes"`
	NivelHabilidade  string `json:"nivel_habilidade"`
}

type EventService interface {
	ListEligible(ctx context.Context, userID int) ([]models.EligibleEvent, error)
	GetDetail(ctx context.Context, id int) (*models.EventDetail, error)
	ListByOrganizer(ctx context.Context, organizerID int) ([]models.OrganizerEvent, error)
	Create(ctx context.Context, organizerID int, input CreateEventInput) (*models.Event, *models.Participation, error)
	Update(ctx context.Context, id int, input CreateEventInput) (*models.Event, error)
	Delete(ctx context.Context, id int) error
	Participate(ctx context.Context, eventID, userID int) (int, error)
	ListParticipants(ctx context.Context, eventID int) ([]models.User, error)
}

type eventService struct {
	eventRepo         repositories.EventRepository
	participationRepo repositories.ParticipationRepository
}

func NewEventService(
	eventRepo repositories.EventRepository,
	participationRepo repositories.ParticipationRepository,
) EventService {
	return &eventService{
		eventRepo:         eventRepo,
		participationRepo: participationRepo,
	}
}

func (s *eventService) ListEligible(ctx context.Context, userID int) ([]models.EligibleEvent, error) {
	return s.eventRepo.ListEligibleForUser(ctx, userID)
}

// GetDetail fetches the event row and its participant count concurrently
// and merges them into one response.
func (s *eventService) GetDetail(ctx context.Context, id int) (*models.EventDetail, error) {
	var (
		detail *models.EventDetail
		count  int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail, err = s.eventRepo.GetDetailByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = s.eventRepo.CountParticipants(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	detail.ParticipantCount = count
	return detail, nil
}

func (s *eventService) ListByOrganizer(ctx context.Context, organizerID int) ([]models.OrganizerEvent, error) {
	return s.eventRepo.ListByOrganizer(ctx, organizerID)
}

// Create inserts the event and then enrolls the organizer as its first
// participant. The two writes are separate statements, not a transaction:
// a failed enrollment leaves the event without participants.
func (s *eventService) Create(ctx context.Context, organizerID int, input CreateEventInput) (*models.Event, *models.Participation, error) {
	if err := validateEventSchedule(input); err != nil {
		return nil, nil, err
	}

	event := &models.Event{
		Name:            input.Nome,
		SportID:         input.IDEsporte,
		Date:            input.Data,
		Time:            input.Horario,
		Location:        input.Local,
		MaxParticipants: input.MaxParticipantes,
		SkillLevel:      input.NivelHabilidade,
		OrganizerID:     organizerID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, nil, err
	}

	participation := &models.Participation{
		UserID:  organizerID,
		EventID: event.ID,
	}
	if err := s.participationRepo.Create(ctx, participation); err != nil {
		return nil, nil, fmt.Errorf("failed to enroll organizer: %w", err)
	}

	return event, participation, nil
}

func (s *eventService) Update(ctx context.Context, id int, input CreateEventInput) (*models.Event, error) {
	if err := validateEventSchedule(input); err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:              id,
		Name:            input.Nome,
		SportID:         input.IDEsporte,
		Date:            input.Data,
		Time:            input.Horario,
		Location:        input.Local,
		MaxParticipants: input.MaxParticipantes,
		SkillLevel:      input.NivelHabilidade,
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id int) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	return nil
}

// Participate records the participation as-is. Sport, skill and capacity
// rules apply only to the eligibility listing, not to this write path,
// and duplicate (user, event) rows are not rejected.
func (s *eventService) Participate(ctx context.Context, eventID, userID int) (int, error) {
	participation := &models.Participation{
		UserID:  userID,
		EventID: eventID,
	}
	if err := s.participationRepo.Create(ctx, participation); err != nil {
		return 0, err
	}
	return participation.ID, nil
}

func (s *eventService) ListParticipants(ctx context.Context, eventID int) ([]models.User, error) {
	return s.participationRepo.ListParticipants(ctx, eventID)
}

func validateEventSchedule(input CreateEventInput) error {
	if _, err := time.Parse(eventDateLayout, input.Data); err != nil {
		return ErrInvalidEventDate
	}
	if _, err := time.Parse(eventTimeLayout, input.Horario); err != nil {
		return ErrInvalidEventTime
	}
	return nil
}
