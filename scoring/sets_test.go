package scoring

import (
	"testing"

	"github.com/praiaclube/beachtennis-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func standardConfig() TieBreakConfig {
	return TieBreakConfig{Enabled: true, Target: 7, Margin: 2}
}

func TestCheckSetCompletion(t *testing.T) {
	tests := []struct {
		name    string
		one     int
		two     int
		wantErr error
	}{
		{"six love", 6, 0, nil},
		{"six four", 6, 4, nil},
		{"four six", 4, 6, nil},
		{"seven five", 7, 5, nil},
		{"level games", 4, 4, ErrIncompleteSet},
		{"six five is not over", 6, 5, ErrIncompleteSet},
		{"five three is not over", 5, 3, ErrIncompleteSet},
		{"past seven games", 8, 6, ErrIncompleteSet},
		{"negative games", -1, 6, ErrIncompleteSet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := models.SetScore{PairOneGames: tt.one, PairTwoGames: tt.two}
			err := CheckSet(set, standardConfig())
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckSetTieBreak(t *testing.T) {
	t.Run("7-6 without tie-break points is rejected", func(t *testing.T) {
		set := models.SetScore{PairOneGames: 7, PairTwoGames: 6}
		err := CheckSet(set, standardConfig())
		assert.ErrorIs(t, err, ErrTieBreakConfigMismatch)
	})

	t.Run("7-6 with tie-breaks disabled is rejected", func(t *testing.T) {
		set := models.SetScore{PairOneGames: 7, PairTwoGames: 6, TieBreakPlayed: true,
			PairOneTieBreakPoints: intPtr(7), PairTwoTieBreakPoints: intPtr(3)}
		err := CheckSet(set, TieBreakConfig{Enabled: false, Target: 7, Margin: 2})
		assert.ErrorIs(t, err, ErrTieBreakConfigMismatch)
	})

	t.Run("tie-break on a regular set is rejected", func(t *testing.T) {
		set := models.SetScore{PairOneGames: 6, PairTwoGames: 3, TieBreakPlayed: true,
			PairOneTieBreakPoints: intPtr(7), PairTwoTieBreakPoints: intPtr(2)}
		err := CheckSet(set, standardConfig())
		assert.ErrorIs(t, err, ErrTieBreakConfigMismatch)
	})

	t.Run("valid seven point tie-break", func(t *testing.T) {
		set := models.SetScore{PairOneGames: 7, PairTwoGames: 6, TieBreakPlayed: true,
			PairOneTieBreakPoints: intPtr(7), PairTwoTieBreakPoints: intPtr(4)}
		assert.NoError(t, CheckSet(set, standardConfig()))
	})

	t.Run("extended deuce closes on exactly the margin", func(t *testing.T) {
		set := models.SetScore{PairOneGames: 7, PairTwoGames: 6, TieBreakPlayed: true,
			PairOneTieBreakPoints: intPtr(12), PairTwoTieBreakPoints: intPtr(10)}
		assert.NoError(t, CheckSet(set, standardConfig()))

		set.PairOneTieBreakPoints = intPtr(12)
		set.PairTwoTieBreakPoints = intPtr(9)
		assert.ErrorIs(t, CheckSet(set, standardConfig()), ErrTieBreakConfigMismatch)
	})

	t.Run("winner below target", func(t *testing.T) {
		set := models.SetScore{PairOneGames: 7, PairTwoGames: 6, TieBreakPlayed: true,
			PairOneTieBreakPoints: intPtr(6), PairTwoTieBreakPoints: intPtr(4)}
		cfg := TieBreakConfig{Enabled: true, Target: 10, Margin: 2}
		assert.ErrorIs(t, CheckSet(set, cfg), ErrTieBreakConfigMismatch)
	})

	t.Run("winner short of the margin", func(t *testing.T) {
		set := models.SetScore{PairOneGames: 7, PairTwoGames: 6, TieBreakPlayed: true,
			PairOneTieBreakPoints: intPtr(7), PairTwoTieBreakPoints: intPtr(6)}
		assert.ErrorIs(t, CheckSet(set, standardConfig()), ErrTieBreakConfigMismatch)
	})

	t.Run("sudden death accepts a one point lead", func(t *testing.T) {
		cfg := TieBreakConfig{Enabled: true, Target: 10, Margin: 1}
		set := models.SetScore{PairOneGames: 7, PairTwoGames: 6, TieBreakPlayed: true,
			PairOneTieBreakPoints: intPtr(10), PairTwoTieBreakPoints: intPtr(9)}
		assert.NoError(t, CheckSet(set, cfg))

		// Sudden death never goes past the target.
		set.PairOneTieBreakPoints = intPtr(11)
		assert.ErrorIs(t, CheckSet(set, cfg), ErrTieBreakConfigMismatch)
	})

	t.Run("tie-break winner must be the set winner", func(t *testing.T) {
		set := models.SetScore{PairOneGames: 6, PairTwoGames: 7, TieBreakPlayed: true,
			PairOneTieBreakPoints: intPtr(7), PairTwoTieBreakPoints: intPtr(3)}
		assert.ErrorIs(t, CheckSet(set, standardConfig()), ErrTieBreakConfigMismatch)
	})

	t.Run("level tie-break points", func(t *testing.T) {
		set := models.SetScore{PairOneGames: 7, PairTwoGames: 6, TieBreakPlayed: true,
			PairOneTieBreakPoints: intPtr(7), PairTwoTieBreakPoints: intPtr(7)}
		assert.ErrorIs(t, CheckSet(set, standardConfig()), ErrTieBreakConfigMismatch)
	})
}

func TestValidateResult(t *testing.T) {
	cfg := standardConfig()

	t.Run("straight sets", func(t *testing.T) {
		sets := []models.SetScore{
			{PairOneGames: 6, PairTwoGames: 2},
			{PairOneGames: 6, PairTwoGames: 4},
		}
		result, err := ValidateResult(sets, cfg, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, result.PairOneSets)
		assert.Equal(t, 0, result.PairTwoSets)
		assert.True(t, result.PairOneWon)
		assert.False(t, result.TieBreakPlayed)
	})

	t.Run("comeback in three with a tie-break", func(t *testing.T) {
		sets := []models.SetScore{
			{PairOneGames: 3, PairTwoGames: 6},
			{PairOneGames: 7, PairTwoGames: 6, TieBreakPlayed: true,
				PairOneTieBreakPoints: intPtr(7), PairTwoTieBreakPoints: intPtr(5)},
			{PairOneGames: 6, PairTwoGames: 1},
		}
		result, err := ValidateResult(sets, cfg, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, result.PairOneSets)
		assert.Equal(t, 1, result.PairTwoSets)
		assert.True(t, result.PairOneWon)
		assert.True(t, result.TieBreakPlayed)
	})

	t.Run("empty submission", func(t *testing.T) {
		_, err := ValidateResult(nil, cfg, 3)
		assert.ErrorIs(t, err, ErrNoSets)
	})

	t.Run("more sets than the tournament allows", func(t *testing.T) {
		sets := []models.SetScore{
			{PairOneGames: 6, PairTwoGames: 2},
			{PairOneGames: 2, PairTwoGames: 6},
			{PairOneGames: 6, PairTwoGames: 2},
			{PairOneGames: 2, PairTwoGames: 6},
		}
		_, err := ValidateResult(sets, cfg, 3)
		assert.ErrorIs(t, err, ErrTooManySets)
	})

	t.Run("level sets have no winner", func(t *testing.T) {
		sets := []models.SetScore{
			{PairOneGames: 6, PairTwoGames: 2},
			{PairOneGames: 2, PairTwoGames: 6},
		}
		_, err := ValidateResult(sets, cfg, 3)
		assert.ErrorIs(t, err, ErrIncompleteSet)
	})

	t.Run("invalid set fails the submission", func(t *testing.T) {
		sets := []models.SetScore{
			{PairOneGames: 6, PairTwoGames: 2},
			{PairOneGames: 5, PairTwoGames: 5},
		}
		_, err := ValidateResult(sets, cfg, 3)
		assert.ErrorIs(t, err, ErrIncompleteSet)
	})
}
