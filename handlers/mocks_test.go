package handlers

import (
	"context"
	"errors"

	"github.com/esportivai/backend/models"
	"github.com/esportivai/backend/repositories"
	"github.com/esportivai/backend/services"
)

var errUnexpectedCall = errors.New("unexpected service call")

type mockAuthService struct {
	LoginFunc func(ctx context.Context, input services.LoginInput) (*models.User, error)
}

func (m *mockAuthService) Login(ctx context.Context, input services.LoginInput) (*models.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, input)
	}
	return nil, errUnexpectedCall
}

type mockUserService struct {
	ListFunc                       func(ctx context.Context) ([]models.User, error)
	CreateFunc                     func(ctx context.Context, input services.CreateUserInput) (*models.User, error)
	UpdateFunc                     func(ctx context.Context, id int, input services.UpdateUserInput) (*models.User, error)
	DeleteFunc                     func(ctx context.Context, id int) error
	GetProfileFunc                 func(ctx context.Context, id int) (*models.UserProfile, error)
	ListOrganizedEventsFunc        func(ctx context.Context, userID int) ([]models.Event, error)
	ListParticipationSummariesFunc func(ctx context.Context, userID int) ([]models.UserParticipation, error)
	ListJoinedEventsFunc           func(ctx context.Context, userID int, window repositories.EventWindow) ([]models.UserEvent, error)
}

func (m *mockUserService) List(ctx context.Context) ([]models.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errUnexpectedCall
}

func (m *mockUserService) Create(ctx context.Context, input services.CreateUserInput) (*models.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	return nil, errUnexpectedCall
}

func (m *mockUserService) Update(ctx context.Context, id int, input services.UpdateUserInput) (*models.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, input)
	}
	return nil, errUnexpectedCall
}

func (m *mockUserService) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errUnexpectedCall
}

func (m *mockUserService) GetProfile(ctx context.Context, id int) (*models.UserProfile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, id)
	}
	return nil, errUnexpectedCall
}

func (m *mockUserService) ListOrganizedEvents(ctx context.Context, userID int) ([]models.Event, error) {
	if m.ListOrganizedEventsFunc != nil {
		return m.ListOrganizedEventsFunc(ctx, userID)
	}
	return nil, errUnexpectedCall
}

func (m *mockUserService) ListParticipationSummaries(ctx context.Context, userID int) ([]models.UserParticipation, error) {
	if m.ListParticipationSummariesFunc != nil {
		return m.ListParticipationSummariesFunc(ctx, userID)
	}
	return nil, errUnexpectedCall
}

func (m *mockUserService) ListJoinedEvents(ctx context.Context, userID int, window repositories.EventWindow) ([]models.UserEvent, error) {
	if m.ListJoinedEventsFunc != nil {
		return m.ListJoinedEventsFunc(ctx, userID, window)
	}
	return nil, errUnexpectedCall
}

type mockSportService struct {
	ListByUserFunc       func(ctx context.Context, userID int) ([]models.UserSportRow, error)
	RegisterFunc         func(ctx context.Context, input services.RegisterSportInput) (*models.UserSport, error)
	UpdateSkillLevelFunc func(ctx context.Context, id int, skillLevel string) error
	RemoveFunc           func(ctx context.Context, id int) error
}

func (m *mockSportService) ListByUser(ctx context.Context, userID int) ([]models.UserSportRow, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, errUnexpectedCall
}

func (m *mockSportService) Register(ctx context.Context, input services.RegisterSportInput) (*models.UserSport, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	return nil, errUnexpectedCall
}

func (m *mockSportService) UpdateSkillLevel(ctx context.Context, id int, skillLevel string) error {
	if m.UpdateSkillLevelFunc != nil {
		return m.UpdateSkillLevelFunc(ctx, id, skillLevel)
	}
	return errUnexpectedCall
}

func (m *mockSportService) Remove(ctx context.Context, id int) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, id)
	}
	return errUnexpectedCall
}

type mockEventService struct {
	ListEligibleFunc     func(ctx context.Context, userID int) ([]models.EligibleEvent, error)
	GetDetailFunc        func(ctx context.Context, id int) (*models.EventDetail, error)
	ListByOrganizerFunc  func(ctx context.Context, organizerID int) ([]models.OrganizerEvent, error)
	CreateFunc           func(ctx context.Context, organizerID int, input services.CreateEventInput) (*models.Event, *models.Participation, error)
	UpdateFunc           func(ctx context.Context, id int, input services.CreateEventInput) (*models.Event, error)
	DeleteFunc           func(ctx context.Context, id int) error
	ParticipateFunc      func(ctx context.Context, eventID, userID int) (int, error)
	ListParticipantsFunc func(ctx context.Context, eventID int) ([]models.User, error)
}

func (m *mockEventService) ListEligible(ctx context.Context, userID int) ([]models.EligibleEvent, error) {
	if m.ListEligibleFunc != nil {
		return m.ListEligibleFunc(ctx, userID)
	}
	return nil, errUnexpectedCall
}

func (m *mockEventService) GetDetail(ctx context.Context, id int) (*models.EventDetail, error) {
	if m.GetDetailFunc != nil {
		return m.GetDetailFunc(ctx, id)
	}
	return nil, errUnexpectedCall
}

func (m *mockEventService) ListByOrganizer(ctx context.Context, organizerID int) ([]models.OrganizerEvent, error) {
	if m.ListByOrganizerFunc != nil {
		return m.ListByOrganizerFunc(ctx, organizerID)
	}
	return nil, errUnexpectedCall
}

func (m *mockEventService) Create(ctx context.Context, organizerID int, input services.CreateEventInput) (*models.Event, *models.Participation, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, organizerID, input)
	}
	return nil, nil, errUnexpectedCall
}

func (m *mockEventService) Update(ctx context.Context, id int, input services.CreateEventInput) (*models.Event, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, input)
	}
	return nil, errUnexpectedCall
}

func (m *mockEventService) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errUnexpectedCall
}

func (m *mockEventService) Participate(ctx context.Context, eventID, userID int) (int, error) {
	if m.ParticipateFunc != nil {
		return m.ParticipateFunc(ctx, eventID, userID)
	}
	return 0, errUnexpectedCall
}

func (m *mockEventService) ListParticipants(ctx context.Context, eventID int) ([]models.User, error) {
	if m.ListParticipantsFunc != nil {
		return m.ListParticipantsFunc(ctx, eventID)
	}
	return nil, errUnexpectedCall
}

type mockParticipationService struct {
	ListByUserFunc func(ctx context.Context, userID int) ([]models.ParticipationDetail, error)
	UpdateFunc     func(ctx context.Context, id, userID, eventID int) (*models.Participation, error)
	DeleteFunc     func(ctx context.Context, id int) error
}

func (m *mockParticipationService) ListByUser(ctx context.Context, userID int) ([]models.ParticipationDetail, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, errUnexpectedCall
}

func (m *mockParticipationService) Update(ctx context.Context, id, userID, eventID int) (*models.Participation, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, userID, eventID)
	}
	return nil, errUnexpectedCall
}

func (m *mockParticipationService) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errUnexpectedCall
}
