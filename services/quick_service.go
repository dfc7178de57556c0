package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/praiaclube/beachtennis-system/models"
	"github.com/praiaclube/beachtennis-system/repositories"
	"github.com/praiaclube/beachtennis-system/scoring"
)

var (
	ErrQuickNameRequired        = errors.New("quick tournament name is required")
	ErrQuickNotEnoughPlayers    = errors.New("a quick tournament needs at least two players")
	ErrQuickTournamentFinished  = errors.New("finalized quick tournaments reject further changes")
	ErrQuickTournamentNotFound  = errors.New("quick tournament not found")
	ErrQuickMatchNotFound       = errors.New("quick match not found")
	ErrQuickPairNotFound        = errors.New("quick pair not found")
	ErrQuickNoMatchesToFinalize = errors.New("at least one recorded match is required to finalize")
)

type QuickService interface {
	Create(ctx context.Context, input CreateQuickInput) (*models.QuickTournament, error)
	GetByPublicID(ctx context.Context, publicID string) (*models.QuickTournament, error)
	List(ctx context.Context, limit, offset int) ([]models.QuickTournament, error)
	ManualPair(ctx context.Context, publicID string, playerOneID, playerTwoID int) (*models.QuickPair, error)
	RandomizePairs(ctx context.Context, publicID string) ([]models.QuickPair, []models.QuickPlayer, error)
	RecordMatch(ctx context.Context, publicID string, input QuickMatchInput) (*models.QuickMatch, error)
	UpdateMatch(ctx context.Context, publicID string, matchID int, input QuickMatchScoreInput) (*models.QuickMatch, error)
	Standings(ctx context.Context, publicID string) ([]models.QuickStandingsRow, error)
	Finalize(ctx context.Context, publicID string) (*models.QuickTournament, error)
	Delete(ctx context.Context, publicID string) error
}

type CreateQuickInput struct {
	Name string `json:"name"`
	// PlayerNames is the pasted sign-up list, one name per line.
	PlayerNames string `json:"player_names"`
}

type QuickMatchInput struct {
	PairOneID    int `json:"pair_one_id"`
	PairTwoID    int `json:"pair_two_id"`
	PairOneGames int `json:"pair_one_games"`
	PairTwoGames int `json:"pair_two_games"`
}

type QuickMatchScoreInput struct {
	PairOneGames int `json:"pair_one_games"`
	PairTwoGames int `json:"pair_two_games"`
}

type quickService struct {
	db        *sql.DB
	quickRepo repositories.QuickRepository
}

func NewQuickService(db *sql.DB, quickRepo repositories.QuickRepository) QuickService {
	return &quickService{db: db, quickRepo: quickRepo}
}

func (s *quickService) Create(ctx context.Context, input CreateQuickInput) (*models.QuickTournament, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrQuickNameRequired
	}

	playerNames := make([]string, 0)
	for _, line := range strings.Split(input.PlayerNames, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			playerNames = append(playerNames, trimmed)
		}
	}
	if len(playerNames) < 2 {
		return nil, ErrQuickNotEnoughPlayers
	}

	qt := &models.QuickTournament{
		PublicID:    uuid.NewString(),
		Name:        name,
		PairingMode: models.PairingUndecided,
	}
	if err := s.quickRepo.Create(ctx, qt); err != nil {
		return nil, fmt.Errorf("failed to create quick tournament: %w", err)
	}

	for _, playerName := range playerNames {
		player := models.QuickPlayer{QuickTournamentID: qt.ID, Name: playerName}
		if err := s.quickRepo.AddPlayer(ctx, &player); err != nil {
			return nil, fmt.Errorf("failed to add quick player %q: %w", playerName, err)
		}
		qt.Players = append(qt.Players, player)
	}
	return qt, nil
}

func (s *quickService) GetByPublicID(ctx context.Context, publicID string) (*models.QuickTournament, error) {
	qt, err := s.quickRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, repositories.ErrQuickTournamentNotFound) {
			return nil, ErrQuickTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get quick tournament %s: %w", publicID, err)
	}
	return qt, nil
}

func (s *quickService) List(ctx context.Context, limit, offset int) ([]models.QuickTournament, error) {
	tournaments, err := s.quickRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list quick tournaments: %w", err)
	}
	return tournaments, nil
}

func (s *quickService) editable(ctx context.Context, publicID string) (*models.QuickTournament, error) {
	qt, err := s.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if qt.Finished() {
		return nil, ErrQuickTournamentFinished
	}
	return qt, nil
}

func quickPairName(one, two models.QuickPlayer) string {
	return one.Name + " / " + two.Name
}

func (s *quickService) ManualPair(ctx context.Context, publicID string, playerOneID, playerTwoID int) (*models.QuickPair, error) {
	if playerOneID == playerTwoID {
		return nil, ErrDuplicateParticipant
	}
	qt, err := s.editable(ctx, publicID)
	if err != nil {
		return nil, err
	}

	taken := make(map[int]bool)
	for _, pair := range qt.Pairs {
		taken[pair.PlayerOneID] = true
		taken[pair.PlayerTwoID] = true
	}
	if taken[playerOneID] || taken[playerTwoID] {
		return nil, ErrPlayerAlreadyPaired
	}

	players := make(map[int]models.QuickPlayer, len(qt.Players))
	for _, player := range qt.Players {
		players[player.ID] = player
	}
	one, okOne := players[playerOneID]
	two, okTwo := players[playerTwoID]
	if !okOne || !okTwo {
		return nil, ErrParticipantNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	pair := &models.QuickPair{
		QuickTournamentID: qt.ID,
		Name:              quickPairName(one, two),
		PlayerOneID:       one.ID,
		PlayerTwoID:       two.ID,
	}
	if err := s.quickRepo.CreatePair(ctx, tx, pair); err != nil {
		return nil, fmt.Errorf("failed to create quick pair: %w", err)
	}
	if qt.PairingMode == models.PairingUndecided {
		if err := s.quickRepo.UpdatePairingMode(ctx, tx, qt.ID, models.PairingManual); err != nil {
			return nil, fmt.Errorf("failed to update pairing mode: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit quick pair: %w", err)
	}
	return pair, nil
}

// RandomizePairs shuffles the unpaired players and pairs them off two by
// two. The odd one out stays unpaired and is returned with the result.
func (s *quickService) RandomizePairs(ctx context.Context, publicID string) ([]models.QuickPair, []models.QuickPlayer, error) {
	qt, err := s.editable(ctx, publicID)
	if err != nil {
		return nil, nil, err
	}

	taken := make(map[int]bool)
	for _, pair := range qt.Pairs {
		taken[pair.PlayerOneID] = true
		taken[pair.PlayerTwoID] = true
	}
	pool := make([]models.QuickPlayer, 0, len(qt.Players))
	for _, player := range qt.Players {
		if !taken[player.ID] {
			pool = append(pool, player)
		}
	}
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	pairs := make([]models.QuickPair, 0, len(pool)/2)
	for len(pool) >= 2 {
		one, two := pool[0], pool[1]
		pool = pool[2:]
		pair := models.QuickPair{
			QuickTournamentID: qt.ID,
			Name:              quickPairName(one, two),
			PlayerOneID:       one.ID,
			PlayerTwoID:       two.ID,
		}
		if err := s.quickRepo.CreatePair(ctx, tx, &pair); err != nil {
			return nil, nil, fmt.Errorf("failed to create quick pair: %w", err)
		}
		pairs = append(pairs, pair)
	}
	if err := s.quickRepo.UpdatePairingMode(ctx, tx, qt.ID, models.PairingRandom); err != nil {
		return nil, nil, fmt.Errorf("failed to update pairing mode: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit quick pairs: %w", err)
	}
	return pairs, pool, nil
}

// quickWinner derives the winner from a single-game score. A tie leaves
// the match pending.
func quickWinner(pairOneID, pairTwoID, oneGames, twoGames int) *int {
	switch {
	case oneGames > twoGames:
		return &pairOneID
	case twoGames > oneGames:
		return &pairTwoID
	default:
		return nil
	}
}

func (s *quickService) RecordMatch(ctx context.Context, publicID string, input QuickMatchInput) (*models.QuickMatch, error) {
	if input.PairOneID == input.PairTwoID {
		return nil, ErrDuplicateParticipant
	}
	if input.PairOneGames < 0 || input.PairTwoGames < 0 {
		return nil, scoring.ErrIncompleteSet
	}
	qt, err := s.editable(ctx, publicID)
	if err != nil {
		return nil, err
	}

	known := make(map[int]bool, len(qt.Pairs))
	for _, pair := range qt.Pairs {
		known[pair.ID] = true
	}
	if !known[input.PairOneID] || !known[input.PairTwoID] {
		return nil, ErrQuickPairNotFound
	}

	match := &models.QuickMatch{
		QuickTournamentID: qt.ID,
		PairOneID:         input.PairOneID,
		PairTwoID:         input.PairTwoID,
		PairOneGames:      input.PairOneGames,
		PairTwoGames:      input.PairTwoGames,
		WinnerID:          quickWinner(input.PairOneID, input.PairTwoID, input.PairOneGames, input.PairTwoGames),
	}
	if err := s.quickRepo.CreateMatch(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to record quick match: %w", err)
	}
	return match, nil
}

func (s *quickService) UpdateMatch(ctx context.Context, publicID string, matchID int, input QuickMatchScoreInput) (*models.QuickMatch, error) {
	if input.PairOneGames < 0 || input.PairTwoGames < 0 {
		return nil, scoring.ErrIncompleteSet
	}
	qt, err := s.editable(ctx, publicID)
	if err != nil {
		return nil, err
	}

	var match *models.QuickMatch
	for i := range qt.Matches {
		if qt.Matches[i].ID == matchID {
			match = &qt.Matches[i]
			break
		}
	}
	if match == nil {
		return nil, ErrQuickMatchNotFound
	}

	match.PairOneGames = input.PairOneGames
	match.PairTwoGames = input.PairTwoGames
	match.WinnerID = quickWinner(match.PairOneID, match.PairTwoID, input.PairOneGames, input.PairTwoGames)

	if err := s.quickRepo.SaveMatchResult(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrQuickMatchNotFound) {
			return nil, ErrQuickMatchNotFound
		}
		return nil, fmt.Errorf("failed to update quick match %d: %w", matchID, err)
	}
	return match, nil
}

func (s *quickService) Standings(ctx context.Context, publicID string) ([]models.QuickStandingsRow, error) {
	qt, err := s.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return scoring.ComputeQuickStandings(qt.Pairs, qt.Matches), nil
}

func (s *quickService) Finalize(ctx context.Context, publicID string) (*models.QuickTournament, error) {
	qt, err := s.editable(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if len(qt.Matches) == 0 {
		return nil, ErrQuickNoMatchesToFinalize
	}

	rows := scoring.ComputeQuickStandings(qt.Pairs, qt.Matches)
	podium := make([]*int, 3)
	for i := 0; i < len(rows) && i < 3; i++ {
		pairID := rows[i].PairID
		podium[i] = &pairID
	}

	finishedAt := time.Now()
	if err := s.quickRepo.Finish(ctx, qt.ID, podium[0], podium[1], podium[2], finishedAt); err != nil {
		return nil, fmt.Errorf("failed to finalize quick tournament: %w", err)
	}

	qt.ChampionID = podium[0]
	qt.RunnerUpID = podium[1]
	qt.ThirdPlaceID = podium[2]
	qt.FinishedAt = &finishedAt
	return qt, nil
}

func (s *quickService) Delete(ctx context.Context, publicID string) error {
	qt, err := s.GetByPublicID(ctx, publicID)
	if err != nil {
		return err
	}
	if err := s.quickRepo.Delete(ctx, qt.ID); err != nil {
		return fmt.Errorf("failed to delete quick tournament: %w", err)
	}
	return nil
}
