package services

import (
	"context"
	"errors"

	"github.com/esportivai/backend/models"
	"github.com/esportivai/backend/repositories"
)

var errUnexpectedCall = errors.New("unexpected repository call")

type mockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *models.User) error
	GetAllFunc         func(ctx context.Context) ([]models.User, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*models.User, error)
	GetProfileByIDFunc func(ctx context.Context, id int) (*models.UserProfile, error)
	UpdateFunc         func(ctx context.Context, user *models.User) error
	DeleteFunc         func(ctx context.Context, id int) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return errUnexpectedCall
}

func (m *mockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, errUnexpectedCall
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, errUnexpectedCall
}

func (m *mockUserRepository) GetProfileByID(ctx context.Context, id int) (*models.UserProfile, error) {
	if m.GetProfileByIDFunc != nil {
		return m.GetProfileByIDFunc(ctx, id)
	}
	return nil, errUnexpectedCall
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return errUnexpectedCall
}

func (m *mockUserRepository) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errUnexpectedCall
}

type mockUserSportRepository struct {
	CreateFunc           func(ctx context.Context, registration *models.UserSport) error
	ListByUserFunc       func(ctx context.Context, userID int) ([]models.UserSportRow, error)
	ExistsFunc           func(ctx context.Context, userID, sportID int) (bool, error)
	UpdateSkillLevelFunc func(ctx context.Context, id int, skillLevel string) error
	DeleteFunc           func(ctx context.Context, id int) error
}

func (m *mockUserSportRepository) Create(ctx context.Context, registration *models.UserSport) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, registration)
	}
	return errUnexpectedCall
}

func (m *mockUserSportRepository) ListByUser(ctx context.Context, userID int) ([]models.UserSportRow, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, errUnexpectedCall
}

func (m *mockUserSportRepository) Exists(ctx context.Context, userID, sportID int) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, userID, sportID)
	}
	return false, errUnexpectedCall
}

func (m *mockUserSportRepository) UpdateSkillLevel(ctx context.Context, id int, skillLevel string) error {
	if m.UpdateSkillLevelFunc != nil {
		return m.UpdateSkillLevelFunc(ctx, id, skillLevel)
	}
	return errUnexpectedCall
}

func (m *mockUserSportRepository) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errUnexpectedCall
}

type mockEventRepository struct {
	CreateFunc              func(ctx context.Context, event *models.Event) error
	UpdateFunc              func(ctx context.Context, event *models.Event) error
	DeleteFunc              func(ctx context.Context, id int) error
	GetDetailByIDFunc       func(ctx context.Context, id int) (*models.EventDetail, error)
	CountParticipantsFunc   func(ctx context.Context, eventID int) (int, error)
	ListEligibleForUserFunc func(ctx context.Context, userID int) ([]models.EligibleEvent, error)
	ListByOrganizerFunc     func(ctx context.Context, organizerID int) ([]models.OrganizerEvent, error)
	ListRawByOrganizerFunc  func(ctx context.Context, organizerID int) ([]models.Event, error)
	ListJoinedByUserFunc    func(ctx context.Context, userID int, window repositories.EventWindow) ([]models.UserEvent, error)
}

func (m *mockEventRepository) Create(ctx context.Context, event *models.Event) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, event)
	}
	return errUnexpectedCall
}

func (m *mockEventRepository) Update(ctx context.Context, event *models.Event) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, event)
	}
	return errUnexpectedCall
}

func (m *mockEventRepository) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errUnexpectedCall
}

func (m *mockEventRepository) GetDetailByID(ctx context.Context, id int) (*models.EventDetail, error) {
	if m.GetDetailByIDFunc != nil {
		return m.GetDetailByIDFunc(ctx, id)
	}
	return nil, errUnexpectedCall
}

func (m *mockEventRepository) CountParticipants(ctx context.Context, eventID int) (int, error) {
	if m.CountParticipantsFunc != nil {
		return m.CountParticipantsFunc(ctx, eventID)
	}
	return 0, errUnexpectedCall
}

func (m *mockEventRepository) ListEligibleForUser(ctx context.Context, userID int) ([]models.EligibleEvent, error) {
	if m.ListEligibleForUserFunc != nil {
		return m.ListEligibleForUserFunc(ctx, userID)
	}
	return nil, errUnexpectedCall
}

func (m *mockEventRepository) ListByOrganizer(ctx context.Context, organizerID int) ([]models.OrganizerEvent, error) {
	if m.ListByOrganizerFunc != nil {
		return m.ListByOrganizerFunc(ctx, organizerID)
	}
	return nil, errUnexpectedCall
}

func (m *mockEventRepository) ListRawByOrganizer(ctx context.Context, organizerID int) ([]models.Event, error) {
	if m.ListRawByOrganizerFunc != nil {
		return m.ListRawByOrganizerFunc(ctx, organizerID)
	}
	return nil, errUnexpectedCall
}

func (m *mockEventRepository) ListJoinedByUser(ctx context.Context, userID int, window repositories.EventWindow) ([]models.UserEvent, error) {
	if m.ListJoinedByUserFunc != nil {
		return m.ListJoinedByUserFunc(ctx, userID, window)
	}
	return nil, errUnexpectedCall
}

type mockParticipationRepository struct {
	CreateFunc            func(ctx context.Context, participation *models.Participation) error
	UpdateFunc            func(ctx context.Context, participation *models.Participation) error
	DeleteFunc            func(ctx context.Context, id int) error
	ListDetailsByUserFunc func(ctx context.Context, userID int) ([]models.ParticipationDetail, error)
	ListSummariesFunc     func(ctx context.Context, userID int) ([]models.UserParticipation, error)
	ListParticipantsFunc  func(ctx context.Context, eventID int) ([]models.User, error)
}

func (m *mockParticipationRepository) Create(ctx context.Context, participation *models.Participation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, participation)
	}
	return errUnexpectedCall
}

func (m *mockParticipationRepository) Update(ctx context.Context, participation *models.Participation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, participation)
	}
	return errUnexpectedCall
}

func (m *mockParticipationRepository) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errUnexpectedCall
}

func (m *mockParticipationRepository) ListDetailsByUser(ctx context.Context, userID int) ([]models.ParticipationDetail, error) {
	if m.ListDetailsByUserFunc != nil {
		return m.ListDetailsByUserFunc(ctx, userID)
	}
	return nil, errUnexpectedCall
}

func (m *mockParticipationRepository) ListSummariesByUser(ctx context.Context, userID int) ([]models.UserParticipation, error) {
	if m.ListSummariesFunc != nil {
		return m.ListSummariesFunc(ctx, userID)
	}
	return nil, errUnexpectedCall
}

func (m *mockParticipationRepository) ListParticipants(ctx context.Context, eventID int) ([]models.User, error) {
	if m.ListParticipantsFunc != nil {
		return m.ListParticipantsFunc(ctx, eventID)
	}
	return nil, errUnexpectedCall
}
