package scoring

import (
	"sort"

	"github.com/praiaclube/beachtennis-system/models"
)

// ComputeStandings builds the tournament table from the enrolled pairs and
// the recorded matches. The ordering criterion is wins, then sets won, then
// accumulated ladder points; rows level on all three keys keep enrollment
// order (the sort is stable), so recomputation over an unchanged match set
// always yields an identical table.
//
// Entries should carry their Pair for display names; matches referencing a
// pair that is not enrolled still get a row, appended after the enrolled
// ones in first-appearance order.
func ComputeStandings(entries []models.TournamentPair, matches []models.Match) []models.StandingsRow {
	index := make(map[int]*models.StandingsRow)
	order := make([]int, 0, len(entries))

	for _, entry := range entries {
		if _, ok := index[entry.PairID]; ok {
			continue
		}
		row := &models.StandingsRow{PairID: entry.PairID}
		if entry.Pair != nil {
			row.PairName = entry.Pair.Name
		}
		if entry.GroupLabel != nil {
			row.GroupLabel = *entry.GroupLabel
		}
		index[entry.PairID] = row
		order = append(order, entry.PairID)
	}

	rowFor := func(pairID int, pair *models.Pair) *models.StandingsRow {
		row, ok := index[pairID]
		if !ok {
			row = &models.StandingsRow{PairID: pairID}
			if pair != nil {
				row.PairName = pair.Name
			}
			index[pairID] = row
			order = append(order, pairID)
		}
		return row
	}

	for _, match := range matches {
		if match.WinnerID == nil {
			// Scheduled but unplayed fixtures do not contribute.
			continue
		}
		sides := []struct {
			pairID   int
			pair     *models.Pair
			sets     int
			setsLost int
			points   []string
		}{
			{match.PairOneID, match.PairOne, match.PairOneSetsWon, match.PairTwoSetsWon, match.PairOnePoints},
			{match.PairTwoID, match.PairTwo, match.PairTwoSetsWon, match.PairOneSetsWon, match.PairTwoPoints},
		}
		for _, side := range sides {
			row := rowFor(side.pairID, side.pair)
			row.Matches++
			row.SetsWon += side.sets
			row.Points += AccumulatedPoints(side.points)
			row.GamesFor += side.sets
			row.GamesAgainst += side.setsLost
			if *match.WinnerID == side.pairID {
				row.Wins++
			} else {
				row.Losses++
			}
		}
	}

	rows := make([]models.StandingsRow, 0, len(order))
	for _, pairID := range order {
		row := index[pairID]
		row.GameBalance = row.GamesFor - row.GamesAgainst
		rows = append(rows, *row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		if rows[i].SetsWon != rows[j].SetsWon {
			return rows[i].SetsWon > rows[j].SetsWon
		}
		return rows[i].Points > rows[j].Points
	})
	return rows
}

// ComputeQuickStandings ranks quick-tournament pairs. Quick matches are a
// single game, so the criterion is wins, games won, game balance, and
// finally pair name for a deterministic display.
func ComputeQuickStandings(pairs []models.QuickPair, matches []models.QuickMatch) []models.QuickStandingsRow {
	index := make(map[int]*models.QuickStandingsRow)
	order := make([]int, 0, len(pairs))

	for _, pair := range pairs {
		index[pair.ID] = &models.QuickStandingsRow{PairID: pair.ID, PairName: pair.Name}
		order = append(order, pair.ID)
	}

	for _, match := range matches {
		sides := []struct {
			pairID   int
			scored   int
			conceded int
		}{
			{match.PairOneID, match.PairOneGames, match.PairTwoGames},
			{match.PairTwoID, match.PairTwoGames, match.PairOneGames},
		}
		for _, side := range sides {
			row, ok := index[side.pairID]
			if !ok {
				row = &models.QuickStandingsRow{PairID: side.pairID}
				index[side.pairID] = row
				order = append(order, side.pairID)
			}
			row.Matches++
			row.GamesFor += side.scored
			row.GamesAgainst += side.conceded
			if match.WinnerID != nil {
				if *match.WinnerID == side.pairID {
					row.Wins++
				} else {
					row.Losses++
				}
			}
		}
	}

	rows := make([]models.QuickStandingsRow, 0, len(order))
	for _, pairID := range order {
		row := index[pairID]
		row.GameBalance = row.GamesFor - row.GamesAgainst
		rows = append(rows, *row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		if rows[i].GamesFor != rows[j].GamesFor {
			return rows[i].GamesFor > rows[j].GamesFor
		}
		if rows[i].GameBalance != rows[j].GameBalance {
			return rows[i].GameBalance > rows[j].GameBalance
		}
		return rows[i].PairName < rows[j].PairName
	})
	return rows
}
