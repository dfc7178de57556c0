package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/praiaclube/beachtennis-system/brackets"
	"github.com/praiaclube/beachtennis-system/scoring"
	"github.com/praiaclube/beachtennis-system/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapServiceErrorToHTTP(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"pair not found", services.ErrPairNotFound, http.StatusNotFound},
		{"quick tournament not found", services.ErrQuickTournamentNotFound, http.StatusNotFound},
		{"duplicate pair", services.ErrPairAlreadyExists, http.StatusConflict},
		{"participant already enrolled", services.ErrParticipantAlreadyEnrolled, http.StatusConflict},
		{"finished quick tournament", services.ErrQuickTournamentFinished, http.StatusConflict},
		{"category in use", services.ErrCategoryInUse, http.StatusConflict},
		{"gender rules violated", services.ErrInvalidCombination, http.StatusBadRequest},
		{"incomplete set", scoring.ErrIncompleteSet, http.StatusBadRequest},
		{"bad point token", scoring.ErrInvalidPointToken, http.StatusBadRequest},
		{"tie-break mismatch", scoring.ErrTieBreakConfigMismatch, http.StatusBadRequest},
		{"knockout round unfinished", brackets.ErrRoundUnfinished, http.StatusBadRequest},
		{"field not power of two", brackets.ErrFieldNotPowerOfTwo, http.StatusBadRequest},
		{"bad credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", services.ErrForbiddenOperation, http.StatusForbidden},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			mapServiceErrorToHTTP(w, r, tc.err)

			assert.Equal(t, tc.want, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
		})
	}
}

func TestReadJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("decodes a valid body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "Praia"}`))

		var dst payload
		require.NoError(t, readJSON(w, r, &dst))
		assert.Equal(t, "Praia", dst.Name)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nam": "typo"}`))

		var dst payload
		err := readJSON(w, r, &dst)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown key")
	})

	t.Run("rejects an empty body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))

		var dst payload
		assert.EqualError(t, readJSON(w, r, &dst), "body must not be empty")
	})

	t.Run("rejects trailing values", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))

		var dst payload
		assert.EqualError(t, readJSON(w, r, &dst), "body must only contain a single JSON value")
	})
}
