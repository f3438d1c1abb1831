package handlers

import (
	"errors"
	"net/http"

	"github.com/esportivai/backend/services"
)

type ParticipationHandler struct {
	participationService services.ParticipationService
}

func NewParticipationHandler(participationService services.ParticipationService) *ParticipationHandler {
	return &ParticipationHandler{
		participationService: participationService,
	}
}

// ListByUser answers GET /api/participations/{id}, where id is a user id.
// No rows is reported as not found, not as an empty array.
func (h *ParticipationHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := readIDParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	details, err := h.participationService.ListByUser(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, details, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ParticipationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		UserID  int `json:"id_usuario"`
		EventID int `json:"id_evento"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.UserID == 0 || input.EventID == 0 {
		badRequestResponse(w, r, errors.New("campos obrigatórios: id_usuario, id_evento"))
		return
	}

	participation, err := h.participationService.Update(r.Context(), id, input.UserID, input.EventID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, participation, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ParticipationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.participationService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
