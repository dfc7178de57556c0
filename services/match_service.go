package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/praiaclube/beachtennis-system/models"
	"github.com/praiaclube/beachtennis-system/repositories"
	"github.com/praiaclube/beachtennis-system/scoring"
)

// StandingsBroadcaster pushes a recomputed table to everyone watching a
// tournament. A nil broadcaster disables pushes without branching callers.
type StandingsBroadcaster interface {
	BroadcastStandings(tournamentID int, rows []models.StandingsRow)
}

type MatchService interface {
	CreateMatch(ctx context.Context, tournamentID int, input CreateMatchInput) (*models.Match, error)
	GetMatchByID(ctx context.Context, id int) (*models.Match, error)
	ListMatches(ctx context.Context, tournamentID int) ([]models.Match, error)
	RecordResult(ctx context.Context, matchID int, input RecordResultInput) (*models.Match, error)
	RecordQuickResult(ctx context.Context, matchID int, input QuickResultInput) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int) error
}

type CreateMatchInput struct {
	RoundName   string     `json:"round_name"`
	PairOneID   int        `json:"pair_one_id"`
	PairTwoID   int        `json:"pair_two_id"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Notes       *string    `json:"notes"`
}

type SetInput struct {
	PairOneGames          int  `json:"pair_one_games"`
	PairTwoGames          int  `json:"pair_two_games"`
	TieBreakPlayed        bool `json:"tie_break_played"`
	PairOneTieBreakPoints *int `json:"pair_one_tie_break_points"`
	PairTwoTieBreakPoints *int `json:"pair_two_tie_break_points"`
}

type RecordResultInput struct {
	Sets          []SetInput `json:"sets"`
	PairOnePoints []string   `json:"pair_one_points"`
	PairTwoPoints []string   `json:"pair_two_points"`
	Notes         *string    `json:"notes"`
}

// QuickResultInput records only the sets-won tallies, for club nights when
// nobody keeps per-set scoreboards.
type QuickResultInput struct {
	PairOneSetsWon int `json:"pair_one_sets_won"`
	PairTwoSetsWon int `json:"pair_two_sets_won"`
}

type matchService struct {
	db             *sql.DB
	matchRepo      repositories.MatchRepository
	tournamentRepo repositories.TournamentRepository
	broadcaster    StandingsBroadcaster
	logger         *slog.Logger
}

func NewMatchService(
	db *sql.DB,
	matchRepo repositories.MatchRepository,
	tournamentRepo repositories.TournamentRepository,
	broadcaster StandingsBroadcaster,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		db:             db,
		matchRepo:      matchRepo,
		tournamentRepo: tournamentRepo,
		broadcaster:    broadcaster,
		logger:         logger,
	}
}

func (s *matchService) CreateMatch(ctx context.Context, tournamentID int, input CreateMatchInput) (*models.Match, error) {
	if input.PairOneID == input.PairTwoID {
		return nil, ErrDuplicateParticipant
	}
	if input.RoundName == "" {
		return nil, ErrValidationFailed
	}

	entries, err := s.tournamentRepo.ListEntries(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament entries: %w", err)
	}
	enrolled := make(map[int]bool, len(entries))
	for _, entry := range entries {
		enrolled[entry.PairID] = true
	}
	if !enrolled[input.PairOneID] || !enrolled[input.PairTwoID] {
		return nil, ErrPairNotEnrolled
	}

	match := &models.Match{
		TournamentID: tournamentID,
		RoundName:    input.RoundName,
		ScheduledAt:  input.ScheduledAt,
		PairOneID:    input.PairOneID,
		PairTwoID:    input.PairTwoID,
		Notes:        input.Notes,
	}
	if err := s.matchRepo.Create(ctx, nil, match); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMatchInvalidReference):
			return nil, ErrTournamentNotFound
		case errors.Is(err, repositories.ErrMatchAlreadyExists):
			return nil, ErrValidationFailed
		default:
			return nil, fmt.Errorf("failed to create match: %w", err)
		}
	}
	return match, nil
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match by id %d: %w", id, err)
	}
	return match, nil
}

func (s *matchService) ListMatches(ctx context.Context, tournamentID int) ([]models.Match, error) {
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (s *matchService) RecordResult(ctx context.Context, matchID int, input RecordResultInput) (*models.Match, error) {
	match, err := s.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	tournament, err := s.tournamentRepo.GetByID(ctx, match.TournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tournament %d: %w", match.TournamentID, err)
	}

	pairOnePoints, err := scoring.NormalizePointSequence(input.PairOnePoints)
	if err != nil {
		return nil, err
	}
	pairTwoPoints, err := scoring.NormalizePointSequence(input.PairTwoPoints)
	if err != nil {
		return nil, err
	}

	sets := make([]models.SetScore, 0, len(input.Sets))
	for i, in := range input.Sets {
		sets = append(sets, models.SetScore{
			SetNumber:             i + 1,
			PairOneGames:          in.PairOneGames,
			PairTwoGames:          in.PairTwoGames,
			TieBreakPlayed:        in.TieBreakPlayed,
			PairOneTieBreakPoints: in.PairOneTieBreakPoints,
			PairTwoTieBreakPoints: in.PairTwoTieBreakPoints,
		})
	}

	cfg := scoring.TieBreakConfig{
		Enabled: tournament.TieBreakEnabled,
		Target:  tournament.TieBreakPoints,
		Margin:  tournament.TieBreakMargin,
	}
	result, err := scoring.ValidateResult(sets, cfg, tournament.MaxSets)
	if err != nil {
		return nil, err
	}

	winnerID := match.PairTwoID
	if result.PairOneWon {
		winnerID = match.PairOneID
	}
	match.WinnerID = &winnerID
	match.TieBreakPlayed = result.TieBreakPlayed
	match.PairOneSetsWon = result.PairOneSets
	match.PairTwoSetsWon = result.PairTwoSets
	match.PairOnePoints = pairOnePoints
	match.PairTwoPoints = pairTwoPoints
	match.Sets = sets
	if input.Notes != nil {
		match.Notes = input.Notes
	}

	if err := s.saveResult(ctx, match); err != nil {
		return nil, err
	}
	s.refreshStandings(ctx, match.TournamentID)
	return match, nil
}

func (s *matchService) RecordQuickResult(ctx context.Context, matchID int, input QuickResultInput) (*models.Match, error) {
	match, err := s.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if input.PairOneSetsWon < 0 || input.PairTwoSetsWon < 0 ||
		input.PairOneSetsWon == input.PairTwoSetsWon {
		return nil, scoring.ErrIncompleteSet
	}

	winnerID := match.PairTwoID
	if input.PairOneSetsWon > input.PairTwoSetsWon {
		winnerID = match.PairOneID
	}
	match.WinnerID = &winnerID
	match.TieBreakPlayed = false
	match.PairOneSetsWon = input.PairOneSetsWon
	match.PairTwoSetsWon = input.PairTwoSetsWon
	match.PairOnePoints = []string{}
	match.PairTwoPoints = []string{}
	match.Sets = nil

	if err := s.saveResult(ctx, match); err != nil {
		return nil, err
	}
	s.refreshStandings(ctx, match.TournamentID)
	return match, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, id int) error {
	match, err := s.GetMatchByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to delete match %d: %w", id, err)
	}
	s.refreshStandings(ctx, match.TournamentID)
	return nil
}

func (s *matchService) saveResult(ctx context.Context, match *models.Match) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.matchRepo.SaveResult(ctx, tx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to save match result: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit match result: %w", err)
	}
	return nil
}

// refreshStandings recomputes the table after a match write and pushes it
// to the tournament room. Failures here only cost the push, not the write.
func (s *matchService) refreshStandings(ctx context.Context, tournamentID int) {
	if s.broadcaster == nil {
		return
	}
	entries, err := s.tournamentRepo.ListEntries(ctx, tournamentID)
	if err != nil {
		s.logger.WarnContext(ctx, "standings refresh failed",
			slog.Int("tournament_id", tournamentID), slog.Any("error", err))
		return
	}
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		s.logger.WarnContext(ctx, "standings refresh failed",
			slog.Int("tournament_id", tournamentID), slog.Any("error", err))
		return
	}
	s.broadcaster.BroadcastStandings(tournamentID, scoring.ComputeStandings(entries, matches))
}
