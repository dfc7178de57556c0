package handlers

import (
	"errors"
	"net/http"

	"github.com/praiaclube/beachtennis-system/services"
)

const maxLogoUploadSize = 32 << 20 // 32MB

type SponsorHandler struct {
	sponsorService services.SponsorService
}

func NewSponsorHandler(sponsorService services.SponsorService) *SponsorHandler {
	return &SponsorHandler{sponsorService: sponsorService}
}

func (h *SponsorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.SponsorInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	sponsor, err := h.sponsorService.CreateSponsor(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"sponsor": sponsor}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SponsorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "sponsorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	sponsor, err := h.sponsorService.GetSponsorByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"sponsor": sponsor}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SponsorHandler) List(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("active") == "true"

	sponsors, err := h.sponsorService.ListSponsors(r.Context(), onlyActive)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"sponsors": sponsors}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SponsorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "sponsorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.SponsorInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	sponsor, err := h.sponsorService.UpdateSponsor(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"sponsor": sponsor}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadLogo accepts a multipart form with a "logo" file field and stores it
// in object storage.
func (h *SponsorHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "sponsorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxLogoUploadSize); err != nil {
		badRequestResponse(w, r, errors.New("request must be a multipart form with a logo file"))
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		badRequestResponse(w, r, errors.New("logo file is required"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	sponsor, err := h.sponsorService.UploadLogo(r.Context(), id, contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"sponsor": sponsor}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SponsorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "sponsorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.sponsorService.DeleteSponsor(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
