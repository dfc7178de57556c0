package models

import "time"

// PneuMatch is a "pneu" (bagel): one side winning 5 or 6 to zero. The
// dashboard celebrates these from both regular and quick tournaments.
type PneuMatch struct {
	PairOneName string    `json:"pair_one_name"`
	PairTwoName string    `json:"pair_two_name"`
	ScoreText   string    `json:"score_text"`
	SourceLabel string    `json:"source_label"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChampionWallEntry is the podium of a finalized quick tournament.
type ChampionWallEntry struct {
	Tournament string     `json:"tournament"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Champion   string     `json:"champion"`
	RunnerUp   string     `json:"runner_up,omitempty"`
	ThirdPlace string     `json:"third_place,omitempty"`
}

// DashboardSummary aggregates the homepage widgets.
type DashboardSummary struct {
	ParticipantCount int                 `json:"participant_count"`
	PairCount        int                 `json:"pair_count"`
	TournamentCount  int                 `json:"tournament_count"`
	PneuMatches      []PneuMatch         `json:"pneu_matches"`
	ChampionWall     []ChampionWallEntry `json:"champion_wall"`
}
