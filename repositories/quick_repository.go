package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/praiaclube/beachtennis-system/models"
)

var (
	ErrQuickTournamentNotFound = errors.New("quick tournament not found")
	ErrQuickPlayerNotFound     = errors.New("quick player not found")
	ErrQuickPairNotFound       = errors.New("quick pair not found")
	ErrQuickMatchNotFound      = errors.New("quick match not found")
	ErrQuickInvalidReference   = errors.New("invalid quick tournament reference")
)

type QuickRepository interface {
	Create(ctx context.Context, qt *models.QuickTournament) error
	GetByPublicID(ctx context.Context, publicID string) (*models.QuickTournament, error)
	List(ctx context.Context, limit, offset int) ([]models.QuickTournament, error)
	UpdatePairingMode(ctx context.Context, exec SQLExecutor, id int, mode models.PairingMode) error
	Finish(ctx context.Context, id int, championID, runnerUpID, thirdPlaceID *int, finishedAt time.Time) error
	Delete(ctx context.Context, id int) error

	AddPlayer(ctx context.Context, player *models.QuickPlayer) error
	CreatePair(ctx context.Context, exec SQLExecutor, pair *models.QuickPair) error
	CreateMatch(ctx context.Context, match *models.QuickMatch) error
	SaveMatchResult(ctx context.Context, match *models.QuickMatch) error
}

type postgresQuickRepository struct {
	db *sql.DB
}

func NewPostgresQuickRepository(db *sql.DB) QuickRepository {
	return &postgresQuickRepository{db: db}
}

func (r *postgresQuickRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresQuickRepository) Create(ctx context.Context, qt *models.QuickTournament) error {
	query := `
		INSERT INTO quick_tournaments (public_id, name, pairing_mode)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, qt.PublicID, qt.Name, qt.PairingMode).
		Scan(&qt.ID, &qt.CreatedAt)
	return err
}

func (r *postgresQuickRepository) GetByPublicID(ctx context.Context, publicID string) (*models.QuickTournament, error) {
	query := `
		SELECT
			id, public_id, name, pairing_mode, champion_id, runner_up_id,
			third_place_id, finished_at, created_at
		FROM quick_tournaments
		WHERE public_id = $1`

	qt := &models.QuickTournament{}
	err := r.db.QueryRowContext(ctx, query, publicID).Scan(
		&qt.ID, &qt.PublicID, &qt.Name, &qt.PairingMode, &qt.ChampionID, &qt.RunnerUpID,
		&qt.ThirdPlaceID, &qt.FinishedAt, &qt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuickTournamentNotFound
		}
		return nil, err
	}

	if qt.Players, err = r.listPlayers(ctx, qt.ID); err != nil {
		return nil, err
	}
	if qt.Pairs, err = r.listPairs(ctx, qt.ID); err != nil {
		return nil, err
	}
	if qt.Matches, err = r.listMatches(ctx, qt.ID); err != nil {
		return nil, err
	}
	return qt, nil
}

func (r *postgresQuickRepository) List(ctx context.Context, limit, offset int) ([]models.QuickTournament, error) {
	query := `
		SELECT
			id, public_id, name, pairing_mode, champion_id, runner_up_id,
			third_place_id, finished_at, created_at
		FROM quick_tournaments
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]models.QuickTournament, 0)
	for rows.Next() {
		var qt models.QuickTournament
		if scanErr := rows.Scan(
			&qt.ID, &qt.PublicID, &qt.Name, &qt.PairingMode, &qt.ChampionID, &qt.RunnerUpID,
			&qt.ThirdPlaceID, &qt.FinishedAt, &qt.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		tournaments = append(tournaments, qt)
	}
	return tournaments, rows.Err()
}

func (r *postgresQuickRepository) UpdatePairingMode(ctx context.Context, exec SQLExecutor, id int, mode models.PairingMode) error {
	executor := r.getExecutor(exec)
	query := `UPDATE quick_tournaments SET pairing_mode = $1 WHERE id = $2`
	result, err := executor.ExecContext(ctx, query, mode, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrQuickTournamentNotFound)
}

func (r *postgresQuickRepository) Finish(ctx context.Context, id int, championID, runnerUpID, thirdPlaceID *int, finishedAt time.Time) error {
	query := `
		UPDATE quick_tournaments SET
			champion_id = $1,
			runner_up_id = $2,
			third_place_id = $3,
			finished_at = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query, championID, runnerUpID, thirdPlaceID, finishedAt, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrQuickPairNotFound
		}
		return err
	}
	return checkAffectedRows(result, ErrQuickTournamentNotFound)
}

func (r *postgresQuickRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM quick_tournaments WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrQuickTournamentNotFound)
}

func (r *postgresQuickRepository) AddPlayer(ctx context.Context, p *models.QuickPlayer) error {
	query := `
		INSERT INTO quick_players (quick_tournament_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, p.QuickTournamentID, p.Name).
		Scan(&p.ID, &p.CreatedAt)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
		return ErrQuickInvalidReference
	}
	return err
}

func (r *postgresQuickRepository) CreatePair(ctx context.Context, exec SQLExecutor, p *models.QuickPair) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO quick_pairs (quick_tournament_id, name, player_one_id, player_two_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := executor.QueryRowContext(ctx, query,
		p.QuickTournamentID, p.Name, p.PlayerOneID, p.PlayerTwoID,
	).Scan(&p.ID, &p.CreatedAt)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
		return ErrQuickPlayerNotFound
	}
	return err
}

func (r *postgresQuickRepository) CreateMatch(ctx context.Context, m *models.QuickMatch) error {
	query := `
		INSERT INTO quick_matches (quick_tournament_id, pair_one_id, pair_two_id, pair_one_games, pair_two_games, winner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		m.QuickTournamentID, m.PairOneID, m.PairTwoID, m.PairOneGames, m.PairTwoGames, m.WinnerID,
	).Scan(&m.ID, &m.CreatedAt)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
		return ErrQuickPairNotFound
	}
	return err
}

func (r *postgresQuickRepository) SaveMatchResult(ctx context.Context, m *models.QuickMatch) error {
	query := `
		UPDATE quick_matches SET
			pair_one_games = $1,
			pair_two_games = $2,
			winner_id = $3
		WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, m.PairOneGames, m.PairTwoGames, m.WinnerID, m.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrQuickMatchNotFound)
}

func (r *postgresQuickRepository) listPlayers(ctx context.Context, tournamentID int) ([]models.QuickPlayer, error) {
	query := `
		SELECT id, quick_tournament_id, name, created_at
		FROM quick_players
		WHERE quick_tournament_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.QuickPlayer, 0)
	for rows.Next() {
		var p models.QuickPlayer
		if scanErr := rows.Scan(&p.ID, &p.QuickTournamentID, &p.Name, &p.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (r *postgresQuickRepository) listPairs(ctx context.Context, tournamentID int) ([]models.QuickPair, error) {
	query := `
		SELECT id, quick_tournament_id, name, player_one_id, player_two_id, created_at
		FROM quick_pairs
		WHERE quick_tournament_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pairs := make([]models.QuickPair, 0)
	for rows.Next() {
		var p models.QuickPair
		if scanErr := rows.Scan(&p.ID, &p.QuickTournamentID, &p.Name, &p.PlayerOneID, &p.PlayerTwoID, &p.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		pairs = append(pairs, p)
	}
	return pairs, rows.Err()
}

func (r *postgresQuickRepository) listMatches(ctx context.Context, tournamentID int) ([]models.QuickMatch, error) {
	query := `
		SELECT id, quick_tournament_id, pair_one_id, pair_two_id, pair_one_games, pair_two_games, winner_id, created_at
		FROM quick_matches
		WHERE quick_tournament_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.QuickMatch, 0)
	for rows.Next() {
		var m models.QuickMatch
		if scanErr := rows.Scan(
			&m.ID, &m.QuickTournamentID, &m.PairOneID, &m.PairTwoID,
			&m.PairOneGames, &m.PairTwoGames, &m.WinnerID, &m.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
