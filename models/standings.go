package models

// StandingsRow is one line of a tournament table. It is always derived from
// the recorded matches, never stored or hand-edited.
type StandingsRow struct {
	PairID       int    `json:"pair_id"`
	PairName     string `json:"pair_name"`
	GroupLabel   string `json:"group_label,omitempty"`
	Matches      int    `json:"matches"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	SetsWon      int    `json:"sets_won"`
	Points       int    `json:"points"`
	GamesFor     int    `json:"games_for"`
	GamesAgainst int    `json:"games_against"`
	GameBalance  int    `json:"game_balance"`
}
