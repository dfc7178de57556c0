package brackets

import (
	"testing"

	"github.com/praiaclube/beachtennis-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func entries(pairIDs ...int) []models.TournamentPair {
	out := make([]models.TournamentPair, 0, len(pairIDs))
	for i, id := range pairIDs {
		out = append(out, models.TournamentPair{ID: 100 + i, PairID: id})
	}
	return out
}

func TestAssignGroups(t *testing.T) {
	assignments := AssignGroups(entries(1, 2, 3, 4, 5, 6, 7), 3)
	require.Len(t, assignments, 7)
	assert.Equal(t, "Grupo A", assignments[0].GroupLabel)
	assert.Equal(t, "Grupo A", assignments[2].GroupLabel)
	assert.Equal(t, "Grupo B", assignments[3].GroupLabel)
	assert.Equal(t, "Grupo C", assignments[6].GroupLabel)

	t.Run("group size floor", func(t *testing.T) {
		assignments := AssignGroups(entries(1, 2, 3), 0)
		require.Len(t, assignments, 3)
		assert.Equal(t, "Grupo B", assignments[2].GroupLabel)
	})
}

func TestGroupRoundRobin(t *testing.T) {
	groupA := strPtr("Grupo A")
	groupB := strPtr("Grupo B")
	enrolled := []models.TournamentPair{
		{PairID: 1, GroupLabel: groupA},
		{PairID: 2, GroupLabel: groupA},
		{PairID: 3, GroupLabel: groupA},
		{PairID: 4, GroupLabel: groupB},
		{PairID: 5, GroupLabel: groupB},
		{PairID: 6}, // not grouped yet
	}

	t.Run("every pair meets its group once", func(t *testing.T) {
		fixtures := GroupRoundRobin(enrolled, nil)
		// 3 fixtures in group A, 1 in group B.
		require.Len(t, fixtures, 4)
		assert.Equal(t, "Grupo A", fixtures[0].RoundName)
		assert.Equal(t, "Grupo B", fixtures[3].RoundName)
	})

	t.Run("existing fixtures are skipped either way around", func(t *testing.T) {
		existing := []models.Match{
			{RoundName: "Grupo A", PairOneID: 2, PairTwoID: 1},
			{RoundName: "Grupo B", PairOneID: 4, PairTwoID: 5},
		}
		fixtures := GroupRoundRobin(enrolled, existing)
		require.Len(t, fixtures, 2)
		for _, f := range fixtures {
			assert.Equal(t, "Grupo A", f.RoundName)
			assert.NotEqual(t, [2]int{1, 2}, [2]int{f.PairOneID, f.PairTwoID})
		}
	})
}

func TestKnockoutRoundName(t *testing.T) {
	assert.Equal(t, "Mata-mata - Final", KnockoutRoundName(2))
	assert.Equal(t, "Mata-mata - Semifinais", KnockoutRoundName(4))
	assert.Equal(t, "Mata-mata - Quartas de final", KnockoutRoundName(8))
	assert.Equal(t, "Mata-mata (6 duplas)", KnockoutRoundName(6))
	assert.True(t, IsKnockoutRound(KnockoutRoundName(4)))
	assert.False(t, IsKnockoutRound("Grupo A"))
}

func TestFirstKnockoutRound(t *testing.T) {
	t.Run("seeds one versus two", func(t *testing.T) {
		fixtures, err := FirstKnockoutRound([]int{10, 20, 30, 40})
		require.NoError(t, err)
		require.Len(t, fixtures, 2)
		assert.Equal(t, Fixture{RoundName: "Mata-mata - Semifinais", PairOneID: 10, PairTwoID: 20}, fixtures[0])
		assert.Equal(t, Fixture{RoundName: "Mata-mata - Semifinais", PairOneID: 30, PairTwoID: 40}, fixtures[1])
	})

	t.Run("rejects a field that is not a power of two", func(t *testing.T) {
		_, err := FirstKnockoutRound([]int{1, 2, 3})
		assert.ErrorIs(t, err, ErrFieldNotPowerOfTwo)
	})

	t.Run("rejects a single qualifier", func(t *testing.T) {
		_, err := FirstKnockoutRound([]int{1})
		assert.ErrorIs(t, err, ErrNotEnoughQualifiers)
	})
}

func TestNextKnockoutRound(t *testing.T) {
	t.Run("pairs the winners", func(t *testing.T) {
		round := []models.Match{
			{PairOneID: 1, PairTwoID: 2, WinnerID: intPtr(1)},
			{PairOneID: 3, PairTwoID: 4, WinnerID: intPtr(4)},
		}
		fixtures, err := NextKnockoutRound(round)
		require.NoError(t, err)
		require.Len(t, fixtures, 1)
		assert.Equal(t, Fixture{RoundName: "Mata-mata - Final", PairOneID: 1, PairTwoID: 4}, fixtures[0])
	})

	t.Run("refuses to advance past pending matches", func(t *testing.T) {
		round := []models.Match{
			{PairOneID: 1, PairTwoID: 2, WinnerID: intPtr(1)},
			{PairOneID: 3, PairTwoID: 4},
		}
		_, err := NextKnockoutRound(round)
		assert.ErrorIs(t, err, ErrRoundUnfinished)
	})
}
