package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/praiaclube/beachtennis-system/brackets"
	"github.com/praiaclube/beachtennis-system/scoring"
	"github.com/praiaclube/beachtennis-system/services"
)

type jsonResponse map[string]interface{}

func getIDFromURL(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s parameter: %q", param, raw)
	}
	return id, nil
}

func paginationParams(r *http.Request) (limit, offset int) {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			offset = n
		}
	}
	return limit, offset
}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case err.Error() == "http: request body too large":
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := jsonResponse{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		slog.ErrorContext(r.Context(), "failed to write error response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "internal server error",
		slog.String("method", r.Method), slog.String("path", r.URL.Path), slog.Any("error", err))
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, http.StatusInternalServerError, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	errorResponse(w, r, http.StatusNotFound, message)
}

func conflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusConflict, message)
}

func unauthorizedResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusUnauthorized, message)
}

func forbiddenResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusForbidden, message)
}

// mapServiceErrorToHTTP translates service and domain sentinels into HTTP
// responses.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	// Not found
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrParticipantNotFound),
		errors.Is(err, services.ErrPairNotFound),
		errors.Is(err, services.ErrTournamentNotFound),
		errors.Is(err, services.ErrMatchNotFound),
		errors.Is(err, services.ErrSponsorNotFound),
		errors.Is(err, services.ErrQuickTournamentNotFound),
		errors.Is(err, services.ErrQuickMatchNotFound),
		errors.Is(err, services.ErrQuickPairNotFound):
		notFoundResponse(w, r)

	// Conflicts
	case errors.Is(err, services.ErrUserEmailConflict),
		errors.Is(err, services.ErrCategoryNameConflict),
		errors.Is(err, services.ErrSponsorNameConflict),
		errors.Is(err, services.ErrPairAlreadyExists),
		errors.Is(err, services.ErrPairAlreadyEnrolled),
		errors.Is(err, services.ErrParticipantAlreadyEnrolled),
		errors.Is(err, services.ErrPlayerAlreadyPaired),
		errors.Is(err, services.ErrCategoryInUse),
		errors.Is(err, services.ErrParticipantInUse),
		errors.Is(err, services.ErrPairInUse),
		errors.Is(err, services.ErrQuickTournamentFinished):
		conflictResponse(w, r, err.Error())

	// Validation and business rules
	case errors.Is(err, services.ErrValidationFailed),
		errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrInvalidCombination),
		errors.Is(err, services.ErrDuplicateParticipant),
		errors.Is(err, services.ErrPairCategoryMismatch),
		errors.Is(err, services.ErrInvalidDivision),
		errors.Is(err, services.ErrInvalidGender),
		errors.Is(err, services.ErrCategoryNameRequired),
		errors.Is(err, services.ErrCategoryIsDefault),
		errors.Is(err, services.ErrParticipantNameRequired),
		errors.Is(err, services.ErrBirthDateInFuture),
		errors.Is(err, services.ErrTournamentNameRequired),
		errors.Is(err, services.ErrTournamentInvalidDateRange),
		errors.Is(err, services.ErrTournamentInvalidMaxSets),
		errors.Is(err, services.ErrTournamentInvalidTieBreak),
		errors.Is(err, services.ErrDivisionMismatch),
		errors.Is(err, services.ErrPairNotEnrolled),
		errors.Is(err, services.ErrNoGroupsAssigned),
		errors.Is(err, services.ErrKnockoutAlreadyFinal),
		errors.Is(err, services.ErrSponsorNameRequired),
		errors.Is(err, services.ErrUnsupportedLogoType),
		errors.Is(err, services.ErrQuickNameRequired),
		errors.Is(err, services.ErrQuickNotEnoughPlayers),
		errors.Is(err, services.ErrQuickNoMatchesToFinalize),
		errors.Is(err, scoring.ErrInvalidPointToken),
		errors.Is(err, scoring.ErrIncompleteSet),
		errors.Is(err, scoring.ErrTieBreakConfigMismatch),
		errors.Is(err, scoring.ErrTooManySets),
		errors.Is(err, scoring.ErrNoSets),
		errors.Is(err, brackets.ErrNotEnoughQualifiers),
		errors.Is(err, brackets.ErrFieldNotPowerOfTwo),
		errors.Is(err, brackets.ErrRoundUnfinished):
		badRequestResponse(w, r, err)

	case errors.Is(err, services.ErrLogoUploadNotConfigured):
		errorResponse(w, r, http.StatusServiceUnavailable, err.Error())

	// Auth
	case errors.Is(err, services.ErrInvalidCredentials):
		unauthorizedResponse(w, r, err.Error())
	case errors.Is(err, services.ErrForbiddenOperation):
		forbiddenResponse(w, r, err.Error())

	default:
		serverErrorResponse(w, r, err)
	}
}
