package models

import "time"

// Match is one fixture between two pairs inside a tournament. Sets won,
// winner and the point-sequence traces are denormalized onto the row;
// they are rewritten from the set scores on every result submission.
type Match struct {
	ID             int        `json:"id" db:"id"`
	TournamentID   int        `json:"tournament_id" db:"tournament_id"`
	RoundName      string     `json:"round_name" db:"round_name"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty" db:"scheduled_at"`
	PairOneID      int        `json:"pair_one_id" db:"pair_one_id"`
	PairTwoID      int        `json:"pair_two_id" db:"pair_two_id"`
	WinnerID       *int       `json:"winner_id,omitempty" db:"winner_id"`
	TieBreakPlayed bool       `json:"tie_break_played" db:"tie_break_played"`
	PairOneSetsWon int        `json:"pair_one_sets_won" db:"pair_one_sets_won"`
	PairTwoSetsWon int        `json:"pair_two_sets_won" db:"pair_two_sets_won"`
	PairOnePoints  []string   `json:"pair_one_points" db:"pair_one_points"`
	PairTwoPoints  []string   `json:"pair_two_points" db:"pair_two_points"`
	Notes          *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`

	PairOne *Pair      `json:"pair_one,omitempty" db:"-"`
	PairTwo *Pair      `json:"pair_two,omitempty" db:"-"`
	Sets    []SetScore `json:"sets,omitempty" db:"-"`
}

// SetScore is the per-set scoreboard, including optional tie-break points.
type SetScore struct {
	ID                    int  `json:"id" db:"id"`
	MatchID               int  `json:"match_id" db:"match_id"`
	SetNumber             int  `json:"set_number" db:"set_number"`
	PairOneGames          int  `json:"pair_one_games" db:"pair_one_games"`
	PairTwoGames          int  `json:"pair_two_games" db:"pair_two_games"`
	TieBreakPlayed        bool `json:"tie_break_played" db:"tie_break_played"`
	PairOneTieBreakPoints *int `json:"pair_one_tie_break_points,omitempty" db:"pair_one_tie_break_points"`
	PairTwoTieBreakPoints *int `json:"pair_two_tie_break_points,omitempty" db:"pair_two_tie_break_points"`
}
