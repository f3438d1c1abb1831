package handlers

import (
	"errors"
	"net/http"

	"github.com/esportivai/backend/repositories"
	"github.com/esportivai/backend/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, users, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateUserInput

	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if input.Nome == "" || input.Email == "" || input.Senha == "" {
		badRequestResponse(w, r, errors.New("campos obrigatórios: nome, email, senha"))
		return
	}

	user, err := h.userService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, user, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateUserInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	// senha is optional on update; the stored password is kept when absent.
	if input.Nome == "" || input.Email == "" {
		badRequestResponse(w, r, errors.New("campos obrigatórios: nome, email"))
		return
	}

	user, err := h.userService.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, user, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, profile, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *UserHandler) ListOrganizedEvents(w http.ResponseWriter, r *http.Request) {
	userID, err := readIDParam(r, "userId")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	events, err := h.userService.ListOrganizedEvents(r.Context(), userID)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, events, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *UserHandler) ListParticipations(w http.ResponseWriter, r *http.Request) {
	userID, err := readIDParam(r, "userId")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participations, err := h.userService.ListParticipationSummaries(r.Context(), userID)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, participations, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *UserHandler) ListUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	h.listJoinedEvents(w, r, repositories.WindowUpcoming)
}

func (h *UserHandler) ListSubscribedEvents(w http.ResponseWriter, r *http.Request) {
	h.listJoinedEvents(w, r, repositories.WindowSubscribed)
}

func (h *UserHandler) ListPastEvents(w http.ResponseWriter, r *http.Request) {
	h.listJoinedEvents(w, r, repositories.WindowPast)
}

func (h *UserHandler) listJoinedEvents(w http.ResponseWriter, r *http.Request, window repositories.EventWindow) {
	userID, err := readIDParam(r, "userId")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	events, err := h.userService.ListJoinedEvents(r.Context(), userID, window)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, events, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
