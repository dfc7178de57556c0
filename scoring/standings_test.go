package scoring

import (
	"testing"

	"github.com/praiaclube/beachtennis-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(pairID int, name string) models.TournamentPair {
	return models.TournamentPair{PairID: pairID, Pair: &models.Pair{ID: pairID, Name: name}}
}

func playedMatch(pairOne, pairTwo, winner, setsOne, setsTwo int) models.Match {
	return models.Match{
		PairOneID:      pairOne,
		PairTwoID:      pairTwo,
		WinnerID:       &winner,
		PairOneSetsWon: setsOne,
		PairTwoSetsWon: setsTwo,
	}
}

func TestComputeStandingsOrdering(t *testing.T) {
	entries := []models.TournamentPair{entry(1, "Ana / Bea"), entry(2, "Cid / Dan"), entry(3, "Eva / Gil")}

	t.Run("more wins always sorts first", func(t *testing.T) {
		matches := []models.Match{
			playedMatch(1, 2, 1, 2, 0),
			playedMatch(1, 3, 1, 2, 1),
			playedMatch(2, 3, 2, 2, 0),
		}
		// Pair 3 lost both but give it a huge point trace: wins dominate.
		matches[1].PairTwoPoints = []string{"GAME", "GAME", "GAME", "GAME", "GAME"}

		rows := ComputeStandings(entries, matches)
		require.Len(t, rows, 3)
		assert.Equal(t, 1, rows[0].PairID)
		assert.Equal(t, 2, rows[1].PairID)
		assert.Equal(t, 3, rows[2].PairID)
		assert.Equal(t, 2, rows[0].Wins)
	})

	t.Run("sets won break a wins tie", func(t *testing.T) {
		matches := []models.Match{
			playedMatch(1, 3, 1, 2, 1),
			playedMatch(2, 3, 2, 2, 0),
		}
		rows := ComputeStandings(entries, matches)
		require.Len(t, rows, 3)
		// Both winners have 1 win and 2 sets; pair 1 conceded a set, so the
		// tie persists on (wins, sets) and enrollment order holds... unless
		// points differ. Neither has points, so pair 1 keeps slot one.
		assert.Equal(t, 1, rows[0].PairID)
		assert.Equal(t, 2, rows[1].PairID)
	})

	t.Run("points break a wins and sets tie", func(t *testing.T) {
		one := playedMatch(1, 3, 1, 2, 0)
		two := playedMatch(2, 3, 2, 2, 0)
		two.PairOnePoints = []string{"15", "30", "40", "GAME"}
		rows := ComputeStandings(entries, []models.Match{one, two})
		assert.Equal(t, 2, rows[0].PairID)
		assert.Equal(t, 10, rows[0].Points)
		assert.Equal(t, 1, rows[1].PairID)
	})

	t.Run("full tie keeps enrollment order", func(t *testing.T) {
		rows := ComputeStandings(entries, nil)
		require.Len(t, rows, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{rows[0].PairID, rows[1].PairID, rows[2].PairID})
	})
}

func TestComputeStandingsIdempotent(t *testing.T) {
	entries := []models.TournamentPair{entry(1, "A"), entry(2, "B"), entry(3, "C"), entry(4, "D")}
	matches := []models.Match{
		playedMatch(1, 2, 1, 2, 1),
		playedMatch(3, 4, 4, 0, 2),
		playedMatch(1, 4, 4, 1, 2),
		playedMatch(2, 3, 2, 2, 0),
	}
	first := ComputeStandings(entries, matches)
	second := ComputeStandings(entries, matches)
	assert.Equal(t, first, second)
}

func TestComputeStandingsScenario(t *testing.T) {
	// Tournament with a 10-point, win-by-2 tie-break: P1 beats P2 two sets
	// to zero with a GAME token in the deciding set trace.
	entries := []models.TournamentPair{entry(1, "P1"), entry(2, "P2")}
	match := playedMatch(1, 2, 1, 2, 0)
	match.PairOnePoints = []string{"GAME"}

	rows := ComputeStandings(entries, []models.Match{match})
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].PairID)
	assert.Equal(t, 1, rows[0].Wins)
	assert.Equal(t, 2, rows[0].SetsWon)
	assert.Equal(t, 4, rows[0].Points)

	assert.Equal(t, 2, rows[1].PairID)
	assert.Equal(t, 0, rows[1].Wins)
	assert.Equal(t, 0, rows[1].SetsWon)
}

func TestComputeStandingsSkipsUnplayed(t *testing.T) {
	entries := []models.TournamentPair{entry(1, "A"), entry(2, "B")}
	matches := []models.Match{
		{PairOneID: 1, PairTwoID: 2}, // scheduled, no winner yet
	}
	rows := ComputeStandings(entries, matches)
	require.Len(t, rows, 2)
	assert.Zero(t, rows[0].Matches)
	assert.Zero(t, rows[1].Matches)
}

func TestComputeStandingsUnenrolledPair(t *testing.T) {
	entries := []models.TournamentPair{entry(1, "A")}
	matches := []models.Match{playedMatch(1, 9, 9, 0, 2)}
	rows := ComputeStandings(entries, matches)
	require.Len(t, rows, 2)
	assert.Equal(t, 9, rows[0].PairID) // the walk-on won, so it leads
}

func TestComputeQuickStandings(t *testing.T) {
	pairs := []models.QuickPair{
		{ID: 1, Name: "Ana / Bea"},
		{ID: 2, Name: "Cid / Dan"},
		{ID: 3, Name: "Eva / Gil"},
	}
	win := func(one, two, gamesOne, gamesTwo int) models.QuickMatch {
		m := models.QuickMatch{PairOneID: one, PairTwoID: two, PairOneGames: gamesOne, PairTwoGames: gamesTwo}
		if gamesOne > gamesTwo {
			m.WinnerID = &m.PairOneID
		} else if gamesTwo > gamesOne {
			m.WinnerID = &m.PairTwoID
		}
		return m
	}
	matches := []models.QuickMatch{
		win(1, 2, 6, 4),
		win(2, 3, 6, 0),
		win(3, 1, 2, 6),
	}
	rows := ComputeQuickStandings(pairs, matches)
	require.Len(t, rows, 3)
	assert.Equal(t, 1, rows[0].PairID) // two wins
	assert.Equal(t, 2, rows[1].PairID) // one win
	assert.Equal(t, 3, rows[2].PairID)
	assert.Equal(t, 12, rows[0].GamesFor)
	assert.Equal(t, 6, rows[0].GameBalance)

	t.Run("ties fall back to name", func(t *testing.T) {
		tied := []models.QuickMatch{win(1, 3, 6, 3), win(2, 3, 6, 3)}
		rows := ComputeQuickStandings(pairs, tied)
		assert.Equal(t, "Ana / Bea", rows[0].PairName)
		assert.Equal(t, "Cid / Dan", rows[1].PairName)
	})
}
