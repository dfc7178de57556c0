package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePointSequence(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		got, err := NormalizePointSequence([]string{" 15", "30 ", "40", "game"})
		require.NoError(t, err)
		assert.Equal(t, []string{"15", "30", "40", "GAME"}, got)
	})

	t.Run("drops blank tokens", func(t *testing.T) {
		got, err := NormalizePointSequence([]string{"15", "", "  ", "GAME"})
		require.NoError(t, err)
		assert.Equal(t, []string{"15", "GAME"}, got)
	})

	t.Run("rejects unknown tokens", func(t *testing.T) {
		_, err := NormalizePointSequence([]string{"15", "45"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPointToken)
	})

	t.Run("empty input is fine", func(t *testing.T) {
		got, err := NormalizePointSequence(nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestAccumulatedPoints(t *testing.T) {
	tests := []struct {
		name     string
		sequence []string
		want     int
	}{
		{"empty", nil, 0},
		{"single game", []string{"GAME"}, 4},
		{"full ladder", []string{"15", "30", "40", "GAME"}, 10},
		{"lowercase stored data", []string{"game", "15"}, 5},
		{"unknown tokens count zero", []string{"15", "45"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AccumulatedPoints(tt.sequence))
		})
	}
}
