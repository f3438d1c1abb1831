package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/esportivai/backend/models"
	"github.com/esportivai/backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventRouter(h *EventHandler) *chi.Mux {
	router := chi.NewRouter()
	router.Route("/api/events", func(r chi.Router) {
		r.Get("/{userId}", h.ListEligible)
		r.Get("/byID/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Post("/{eventId}/participate", h.Participate)
		r.Get("/{eventId}/participants", h.ListParticipants)
		r.Route("/organizer/{userId}", func(r chi.Router) {
			r.Get("/", h.ListByOrganizer)
			r.Post("/", h.Create)
		})
	})
	return router
}

func TestEventHandler_ListEligible(t *testing.T) {
	svc := &mockEventService{
		ListEligibleFunc: func(ctx context.Context, userID int) ([]models.EligibleEvent, error) {
			require.Equal(t, 3, userID)
			return []models.EligibleEvent{
				{ID: 7, Name: "Pelada", Sport: "Futebol", SkillLevel: "intermediario", Organizer: "Bruno", MaxParticipants: 10},
			}, nil
		},
	}
	router := eventRouter(NewEventHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/events/3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"esporte":"Futebol"`)
	assert.Contains(t, rec.Body.String(), `"organizador":"Bruno"`)
}

func TestEventHandler_ListEligible_Empty(t *testing.T) {
	svc := &mockEventService{
		ListEligibleFunc: func(ctx context.Context, userID int) ([]models.EligibleEvent, error) {
			return []models.EligibleEvent{}, nil
		},
	}
	router := eventRouter(NewEventHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/events/3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestEventHandler_GetByID(t *testing.T) {
	svc := &mockEventService{
		GetDetailFunc: func(ctx context.Context, id int) (*models.EventDetail, error) {
			if id != 7 {
				return nil, services.ErrEventNotFound
			}
			return &models.EventDetail{ID: 7, Name: "Pelada", Organizer: "Bruno", ParticipantCount: 4}, nil
		},
	}
	router := eventRouter(NewEventHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/events/byID/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"numero_participantes":4`)

	req = httptest.NewRequest(http.MethodGet, "/api/events/byID/8", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventHandler_Create(t *testing.T) {
	svc := &mockEventService{
		CreateFunc: func(ctx context.Context, organizerID int, input services.CreateEventInput) (*models.Event, *models.Participation, error) {
			event := &models.Event{
				ID:              7,
				Name:            input.Nome,
				SportID:         input.IDEsporte,
				Date:            input.Data,
				Time:            input.Horario,
				Location:        input.Local,
				MaxParticipants: input.MaxParticipantes,
				SkillLevel:      input.NivelHabilidade,
				OrganizerID:     organizerID,
			}
			return event, &models.Participation{ID: 11, UserID: organizerID, EventID: 7}, nil
		},
	}
	router := eventRouter(NewEventHandler(svc))

	body := `{"nome":"Pelada","id_esporte":1,"data":"2026-09-05","horario":"16:00","local":"Parque","max_participantes":10,"nivel_habilidade":"intermediario"}`
	req := httptest.NewRequest(http.MethodPost, "/api/events/organizer/3/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, float64(7), response["id"])
	assert.Equal(t, float64(3), response["userId"])
	participacao, ok := response["participacao"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), participacao["id_usuario"])
	assert.Equal(t, float64(7), participacao["id_evento"])
}

func TestEventHandler_Create_MissingFields(t *testing.T) {
	router := eventRouter(NewEventHandler(&mockEventService{}))

	req := httptest.NewRequest(http.MethodPost, "/api/events/organizer/3/", strings.NewReader(`{"nome":"Pelada"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventHandler_Participate(t *testing.T) {
	svc := &mockEventService{
		ParticipateFunc: func(ctx context.Context, eventID, userID int) (int, error) {
			require.Equal(t, 7, eventID)
			require.Equal(t, 3, userID)
			return 55, nil
		},
	}
	router := eventRouter(NewEventHandler(svc))

	req := httptest.NewRequest(http.MethodPost, "/api/events/7/participate", strings.NewReader(`{"userId":3}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"participationId":55`)
}

func TestEventHandler_Participate_MissingUserID(t *testing.T) {
	router := eventRouter(NewEventHandler(&mockEventService{}))

	req := httptest.NewRequest(http.MethodPost, "/api/events/7/participate", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventHandler_Delete_NotFound(t *testing.T) {
	svc := &mockEventService{
		DeleteFunc: func(ctx context.Context, id int) error {
			return services.ErrEventNotFound
		},
	}
	router := eventRouter(NewEventHandler(svc))

	req := httptest.NewRequest(http.MethodDelete, "/api/events/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventHandler_StorageFailureExposesMessage(t *testing.T) {
	svc := &mockEventService{
		ListParticipantsFunc: func(ctx context.Context, eventID int) ([]models.User, error) {
			return nil, assert.AnError
		},
	}
	router := eventRouter(NewEventHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/events/7/participants", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, assert.AnError.Error(), body["error"])
}
