package handlers

import (
	"errors"
	"net/http"

	"github.com/esportivai/backend/services"
)

type SportHandler struct {
	sportService services.SportService
}

func NewSportHandler(sportService services.SportService) *SportHandler {
	return &SportHandler{
		sportService: sportService,
	}
}

func (h *SportHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := readIDParam(r, "userId")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	registrations, err := h.sportService.ListByUser(r.Context(), userID)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, registrations, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SportHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterSportInput

	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if input.UserID == 0 || input.SportID == 0 || input.SkillLevel == "" {
		badRequestResponse(w, r, errors.New("campos obrigatórios: id_usuario, id_esporte, nivel_habilidade"))
		return
	}

	registration, err := h.sportService.Register(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, registration, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SportHandler) UpdateSkillLevel(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		SkillLevel string `json:"nivel_habilidade"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.SkillLevel == "" {
		badRequestResponse(w, r, errors.New("campo obrigatório: nivel_habilidade"))
		return
	}

	if err := h.sportService.UpdateSkillLevel(r.Context(), id, input.SkillLevel); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"id":               id,
		"nivel_habilidade": input.SkillLevel,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SportHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.sportService.Remove(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
