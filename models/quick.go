package models

import "time"

// PairingMode records how a quick tournament formed its pairs.
type PairingMode string

const (
	PairingUndecided PairingMode = "undecided"
	PairingManual    PairingMode = "manual"
	PairingRandom    PairingMode = "random"
)

// QuickTournament is the ephemeral "arrive and play" mode: participants are
// free-text names, matches are a single game, and the podium is frozen on
// finalize. Nothing here references the registered catalog.
type QuickTournament struct {
	ID           int         `json:"id" db:"id"`
	PublicID     string      `json:"public_id" db:"public_id"`
	Name         string      `json:"name" db:"name"`
	PairingMode  PairingMode `json:"pairing_mode" db:"pairing_mode"`
	ChampionID   *int        `json:"champion_id,omitempty" db:"champion_id"`
	RunnerUpID   *int        `json:"runner_up_id,omitempty" db:"runner_up_id"`
	ThirdPlaceID *int        `json:"third_place_id,omitempty" db:"third_place_id"`
	FinishedAt   *time.Time  `json:"finished_at,omitempty" db:"finished_at"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`

	Players []QuickPlayer `json:"players,omitempty" db:"-"`
	Pairs   []QuickPair   `json:"pairs,omitempty" db:"-"`
	Matches []QuickMatch  `json:"matches,omitempty" db:"-"`
}

func (q *QuickTournament) Finished() bool {
	return q.FinishedAt != nil
}

type QuickPlayer struct {
	ID                int       `json:"id" db:"id"`
	QuickTournamentID int       `json:"quick_tournament_id" db:"quick_tournament_id"`
	Name              string    `json:"name" db:"name"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

type QuickPair struct {
	ID                int       `json:"id" db:"id"`
	QuickTournamentID int       `json:"quick_tournament_id" db:"quick_tournament_id"`
	PlayerOneID       int       `json:"player_one_id" db:"player_one_id"`
	PlayerTwoID       int       `json:"player_two_id" db:"player_two_id"`
	Name              string    `json:"name" db:"name"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// QuickMatch is a single-game fixture. Winner is derived from the score;
// a tie leaves it nil until the score is corrected.
type QuickMatch struct {
	ID                int       `json:"id" db:"id"`
	QuickTournamentID int       `json:"quick_tournament_id" db:"quick_tournament_id"`
	PairOneID         int       `json:"pair_one_id" db:"pair_one_id"`
	PairTwoID         int       `json:"pair_two_id" db:"pair_two_id"`
	PairOneGames      int       `json:"pair_one_games" db:"pair_one_games"`
	PairTwoGames      int       `json:"pair_two_games" db:"pair_two_games"`
	WinnerID          *int      `json:"winner_id,omitempty" db:"winner_id"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// QuickStandingsRow ranks quick pairs by wins, then games won, then game
// balance, then name.
type QuickStandingsRow struct {
	PairID       int    `json:"pair_id"`
	PairName     string `json:"pair_name"`
	Matches      int    `json:"matches"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	GamesFor     int    `json:"games_for"`
	GamesAgainst int    `json:"games_against"`
	GameBalance  int    `json:"game_balance"`
}
