package handlers

import (
	"errors"
	"net/http"

	"github.com/esportivai/backend/services"
)

type EventHandler struct {
	eventService services.EventService
}

func NewEventHandler(eventService services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// ListEligible answers GET /api/events/{userId}: the events the user may
// newly join, per the sport/skill/capacity/not-joined filter.
func (h *EventHandler) ListEligible(w http.ResponseWriter, r *http.Request) {
	userID, err := readIDParam(r, "userId")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	events, err := h.eventService.ListEligible(r.Context(), userID)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, events, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	detail, err := h.eventService.GetDetail(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, detail, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventHandler) ListByOrganizer(w http.ResponseWriter, r *http.Request) {
	userID, err := readIDParam(r, "userId")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	events, err := h.eventService.ListByOrganizer(r.Context(), userID)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, events, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := readIDParam(r, "userId")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.CreateEventInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if input.Nome == "" || input.IDEsporte == 0 || input.Data == "" || input.Horario == "" ||
		input.Local == "" || input.MaxParticipantes == 0 || input.NivelHabilidade == "" {
		badRequestResponse(w, r, errors.New("todos os campos são obrigatórios"))
		return
	}

	event, participation, err := h.eventService.Create(r.Context(), userID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"id":                event.ID,
		"userId":            userID,
		"nome":              event.Name,
		"id_esporte":        event.SportID,
		"data":              event.Date,
		"horario":           event.Time,
		"local":             event.Location,
		"max_participantes": event.MaxParticipants,
		"nivel_habilidade":  event.SkillLevel,
		"participacao":      participation,
	}

	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.CreateEventInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if input.Nome == "" || input.IDEsporte == 0 || input.Data == "" || input.Horario == "" ||
		input.Local == "" || input.MaxParticipantes == 0 || input.NivelHabilidade == "" {
		badRequestResponse(w, r, errors.New("todos os campos são obrigatórios"))
		return
	}

	event, err := h.eventService.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, event, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.eventService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Participate records a participation as requested. Eligibility and
// capacity are not re-checked here; they apply only to the listing.
func (h *EventHandler) Participate(w http.ResponseWriter, r *http.Request) {
	eventID, err := readIDParam(r, "eventId")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		UserID int `json:"userId"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.UserID == 0 {
		badRequestResponse(w, r, errors.New("campo obrigatório: userId"))
		return
	}

	participationID, err := h.eventService.Participate(r.Context(), eventID, input.UserID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"participationId": participationID,
	}

	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	eventID, err := readIDParam(r, "eventId")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participants, err := h.eventService.ListParticipants(r.Context(), eventID)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, participants, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
