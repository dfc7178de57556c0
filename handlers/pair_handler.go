package handlers

import (
	"net/http"
	"strconv"

	"github.com/praiaclube/beachtennis-system/models"
	"github.com/praiaclube/beachtennis-system/repositories"
	"github.com/praiaclube/beachtennis-system/services"
)

type PairHandler struct {
	pairService        services.PairService
	participantService services.ParticipantService
}

func NewPairHandler(pairService services.PairService, participantService services.ParticipantService) *PairHandler {
	return &PairHandler{pairService: pairService, participantService: participantService}
}

func (h *PairHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.FormPairInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	pair, err := h.pairService.FormPair(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"pair": pair}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PairHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "pairID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	pair, err := h.pairService.GetPairByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"pair": pair}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PairHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter repositories.ListPairsFilter
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			badRequestResponse(w, r, err)
			return
		}
		filter.CategoryID = &id
	}
	if raw := r.URL.Query().Get("division"); raw != "" {
		division := models.Division(raw)
		filter.Division = &division
	}
	if raw := r.URL.Query().Get("player_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			badRequestResponse(w, r, err)
			return
		}
		filter.PlayerID = &id
	}
	filter.Limit, filter.Offset = paginationParams(r)

	pairs, err := h.pairService.ListPairs(r.Context(), filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"pairs": pairs}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PairHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "pairID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdatePairInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	pair, err := h.pairService.UpdatePair(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"pair": pair}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PairHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "pairID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.pairService.DeletePair(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Randomize proposes pairings for a free-form group of participants without
// persisting anything. Unmatched players come back in "leftover".
func (h *PairHandler) Randomize(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ParticipantIDs []int           `json:"participant_ids"`
		Division       models.Division `json:"division"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participants, err := h.participantService.GetParticipantsByIDs(r.Context(), input.ParticipantIDs)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	pairs, leftover, err := h.pairService.RandomizePairs(participants, input.Division)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"pairs": pairs, "leftover": leftover}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
