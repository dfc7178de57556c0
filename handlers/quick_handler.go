package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/praiaclube/beachtennis-system/services"
)

// QuickHandler serves the "arrive and play" tournaments. They are addressed
// by an unguessable public ID so a shared link is the only credential.
type QuickHandler struct {
	quickService services.QuickService
}

func NewQuickHandler(quickService services.QuickService) *QuickHandler {
	return &QuickHandler{quickService: quickService}
}

func (h *QuickHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateQuickInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	qt, err := h.quickService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": qt}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *QuickHandler) GetByPublicID(w http.ResponseWriter, r *http.Request) {
	publicID := chi.URLParam(r, "publicID")

	qt, err := h.quickService.GetByPublicID(r.Context(), publicID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": qt}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *QuickHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	tournaments, err := h.quickService.List(r.Context(), limit, offset)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": tournaments}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *QuickHandler) ManualPair(w http.ResponseWriter, r *http.Request) {
	publicID := chi.URLParam(r, "publicID")

	var input struct {
		PlayerOneID int `json:"player_one_id"`
		PlayerTwoID int `json:"player_two_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	pair, err := h.quickService.ManualPair(r.Context(), publicID, input.PlayerOneID, input.PlayerTwoID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"pair": pair}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *QuickHandler) RandomizePairs(w http.ResponseWriter, r *http.Request) {
	publicID := chi.URLParam(r, "publicID")

	pairs, leftover, err := h.quickService.RandomizePairs(r.Context(), publicID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"pairs": pairs, "leftover": leftover}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *QuickHandler) RecordMatch(w http.ResponseWriter, r *http.Request) {
	publicID := chi.URLParam(r, "publicID")

	var input services.QuickMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.quickService.RecordMatch(r.Context(), publicID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *QuickHandler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	publicID := chi.URLParam(r, "publicID")
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.QuickMatchScoreInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.quickService.UpdateMatch(r.Context(), publicID, matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *QuickHandler) Standings(w http.ResponseWriter, r *http.Request) {
	publicID := chi.URLParam(r, "publicID")

	standings, err := h.quickService.Standings(r.Context(), publicID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Finalize freezes the tournament and records the podium from the current
// standings.
func (h *QuickHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	publicID := chi.URLParam(r, "publicID")

	qt, err := h.quickService.Finalize(r.Context(), publicID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": qt}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *QuickHandler) Delete(w http.ResponseWriter, r *http.Request) {
	publicID := chi.URLParam(r, "publicID")

	if err := h.quickService.Delete(r.Context(), publicID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
