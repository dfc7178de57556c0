package repositories

import (
	"context"
	"database/sql"

	"github.com/praiaclube/beachtennis-system/models"
)

type DashboardRepository interface {
	CountParticipants(ctx context.Context) (int, error)
	CountPairs(ctx context.Context) (int, error)
	CountTournaments(ctx context.Context) (int, error)
	PneuMatches(ctx context.Context, limit int) ([]models.PneuMatch, error)
	ChampionWall(ctx context.Context, limit int) ([]models.ChampionWallEntry, error)
}

type postgresDashboardRepository struct {
	db *sql.DB
}

func NewPostgresDashboardRepository(db *sql.DB) DashboardRepository {
	return &postgresDashboardRepository{db: db}
}

func (r *postgresDashboardRepository) CountParticipants(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM participants`)
}

func (r *postgresDashboardRepository) CountPairs(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM pairs`)
}

func (r *postgresDashboardRepository) CountTournaments(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM tournaments`)
}

func (r *postgresDashboardRepository) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// PneuMatches collects bagel sets (6-0 or 5-0) from tournament set scores and
// shutout quick matches, newest first.
func (r *postgresDashboardRepository) PneuMatches(ctx context.Context, limit int) ([]models.PneuMatch, error) {
	query := `
		SELECT pair_one_name, pair_two_name, score_text, source_label, created_at FROM (
			SELECT
				p1.name AS pair_one_name,
				p2.name AS pair_two_name,
				ss.pair_one_games || '-' || ss.pair_two_games AS score_text,
				t.name AS source_label,
				m.created_at
			FROM set_scores ss
			JOIN matches m ON m.id = ss.match_id
			JOIN tournaments t ON t.id = m.tournament_id
			JOIN pairs p1 ON p1.id = m.pair_one_id
			JOIN pairs p2 ON p2.id = m.pair_two_id
			WHERE (ss.pair_one_games IN (5, 6) AND ss.pair_two_games = 0)
			   OR (ss.pair_two_games IN (5, 6) AND ss.pair_one_games = 0)
			UNION ALL
			SELECT
				qp1.name,
				qp2.name,
				qm.pair_one_games || '-' || qm.pair_two_games,
				qt.name,
				qm.created_at
			FROM quick_matches qm
			JOIN quick_tournaments qt ON qt.id = qm.quick_tournament_id
			JOIN quick_pairs qp1 ON qp1.id = qm.pair_one_id
			JOIN quick_pairs qp2 ON qp2.id = qm.pair_two_id
			WHERE qm.winner_id IS NOT NULL
			  AND ((qm.pair_one_games IN (5, 6) AND qm.pair_two_games = 0)
			    OR (qm.pair_two_games IN (5, 6) AND qm.pair_one_games = 0))
		) pneus
		ORDER BY created_at DESC
		LIMIT $1`

	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.PneuMatch, 0)
	for rows.Next() {
		var m models.PneuMatch
		if scanErr := rows.Scan(&m.PairOneName, &m.PairTwoName, &m.ScoreText, &m.SourceLabel, &m.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *postgresDashboardRepository) ChampionWall(ctx context.Context, limit int) ([]models.ChampionWallEntry, error) {
	query := `
		SELECT
			qt.name,
			qt.finished_at,
			champ.name,
			COALESCE(runner.name, ''),
			COALESCE(third.name, '')
		FROM quick_tournaments qt
		JOIN quick_pairs champ ON champ.id = qt.champion_id
		LEFT JOIN quick_pairs runner ON runner.id = qt.runner_up_id
		LEFT JOIN quick_pairs third ON third.id = qt.third_place_id
		WHERE qt.finished_at IS NOT NULL
		ORDER BY qt.finished_at DESC
		LIMIT $1`

	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.ChampionWallEntry, 0)
	for rows.Next() {
		var e models.ChampionWallEntry
		if scanErr := rows.Scan(&e.Tournament, &e.FinishedAt, &e.Champion, &e.RunnerUp, &e.ThirdPlace); scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
