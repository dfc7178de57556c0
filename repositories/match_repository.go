package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/praiaclube/beachtennis-system/models"
)

var (
	ErrMatchNotFound         = errors.New("match not found")
	ErrMatchInvalidReference = errors.New("invalid tournament or pair reference")
	ErrMatchAlreadyExists    = errors.New("match already exists")
)

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]models.Match, error)
	SaveResult(ctx context.Context, exec SQLExecutor, match *models.Match) error
	Delete(ctx context.Context, id int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, m *models.Match) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO matches (tournament_id, round_name, scheduled_at, pair_one_id, pair_two_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := executor.QueryRowContext(ctx, query,
		m.TournamentID, m.RoundName, m.ScheduledAt, m.PairOneID, m.PairTwoID, m.Notes,
	).Scan(&m.ID, &m.CreatedAt)

	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `
		SELECT
			id, tournament_id, round_name, scheduled_at, pair_one_id, pair_two_id,
			winner_id, tie_break_played, pair_one_sets_won, pair_two_sets_won,
			pair_one_points, pair_two_points, notes, created_at
		FROM matches
		WHERE id = $1`

	m := &models.Match{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.TournamentID, &m.RoundName, &m.ScheduledAt, &m.PairOneID, &m.PairTwoID,
		&m.WinnerID, &m.TieBreakPlayed, &m.PairOneSetsWon, &m.PairTwoSetsWon,
		pq.Array(&m.PairOnePoints), pq.Array(&m.PairTwoPoints), &m.Notes, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	sets, err := r.listSets(ctx, []int{m.ID})
	if err != nil {
		return nil, err
	}
	m.Sets = sets[m.ID]
	return m, nil
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.Match, error) {
	query := `
		SELECT
			id, tournament_id, round_name, scheduled_at, pair_one_id, pair_two_id,
			winner_id, tie_break_played, pair_one_sets_won, pair_two_sets_won,
			pair_one_points, pair_two_points, notes, created_at
		FROM matches
		WHERE tournament_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	matchIDs := make([]int, 0)
	for rows.Next() {
		var m models.Match
		if scanErr := rows.Scan(
			&m.ID, &m.TournamentID, &m.RoundName, &m.ScheduledAt, &m.PairOneID, &m.PairTwoID,
			&m.WinnerID, &m.TieBreakPlayed, &m.PairOneSetsWon, &m.PairTwoSetsWon,
			pq.Array(&m.PairOnePoints), pq.Array(&m.PairTwoPoints), &m.Notes, &m.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, m)
		matchIDs = append(matchIDs, m.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	sets, err := r.listSets(ctx, matchIDs)
	if err != nil {
		return nil, err
	}
	for i := range matches {
		matches[i].Sets = sets[matches[i].ID]
	}
	return matches, nil
}

// SaveResult writes the outcome and replaces the set scores in one statement
// batch. Callers pass a transaction so a partial write never lands.
func (r *postgresMatchRepository) SaveResult(ctx context.Context, exec SQLExecutor, m *models.Match) error {
	executor := r.getExecutor(exec)

	query := `
		UPDATE matches SET
			winner_id = $1,
			tie_break_played = $2,
			pair_one_sets_won = $3,
			pair_two_sets_won = $4,
			pair_one_points = $5,
			pair_two_points = $6,
			notes = $7
		WHERE id = $8`

	result, err := executor.ExecContext(ctx, query,
		m.WinnerID, m.TieBreakPlayed, m.PairOneSetsWon, m.PairTwoSetsWon,
		pq.Array(m.PairOnePoints), pq.Array(m.PairTwoPoints), m.Notes,
		m.ID,
	)
	if err != nil {
		return r.handleMatchError(err)
	}
	if err := checkAffectedRows(result, ErrMatchNotFound); err != nil {
		return err
	}

	if _, err := executor.ExecContext(ctx, `DELETE FROM set_scores WHERE match_id = $1`, m.ID); err != nil {
		return err
	}

	insert := `
		INSERT INTO set_scores (
			match_id, set_number, pair_one_games, pair_two_games,
			tie_break_played, pair_one_tie_break_points, pair_two_tie_break_points
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	for i := range m.Sets {
		s := &m.Sets[i]
		s.MatchID = m.ID
		if err := executor.QueryRowContext(ctx, insert,
			m.ID, s.SetNumber, s.PairOneGames, s.PairTwoGames,
			s.TieBreakPlayed, s.PairOneTieBreakPoints, s.PairTwoTieBreakPoints,
		).Scan(&s.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM matches WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) listSets(ctx context.Context, matchIDs []int) (map[int][]models.SetScore, error) {
	result := make(map[int][]models.SetScore, len(matchIDs))
	if len(matchIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT
			id, match_id, set_number, pair_one_games, pair_two_games,
			tie_break_played, pair_one_tie_break_points, pair_two_tie_break_points
		FROM set_scores
		WHERE match_id = ANY($1)
		ORDER BY match_id ASC, set_number ASC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(matchIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s models.SetScore
		if scanErr := rows.Scan(
			&s.ID, &s.MatchID, &s.SetNumber, &s.PairOneGames, &s.PairTwoGames,
			&s.TieBreakPlayed, &s.PairOneTieBreakPoints, &s.PairTwoTieBreakPoints,
		); scanErr != nil {
			return nil, scanErr
		}
		result[s.MatchID] = append(result[s.MatchID], s)
	}
	return result, rows.Err()
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return ErrMatchAlreadyExists
		case "23503":
			return ErrMatchInvalidReference
		}
	}
	return err
}
