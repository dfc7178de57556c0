package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/praiaclube/beachtennis-system/models"
)

var (
	ErrTournamentNotFound         = errors.New("tournament not found")
	ErrTournamentInvalidCategory  = errors.New("invalid category reference")
	ErrEnrollmentNotFound         = errors.New("enrollment not found")
	ErrParticipantAlreadyEnrolled = errors.New("participant already enrolled in this tournament")
	ErrPairAlreadyEnrolled        = errors.New("pair already enrolled in this tournament")
	ErrEnrollmentInvalidReference = errors.New("invalid tournament, participant or pair reference")
)

type ListTournamentsFilter struct {
	CategoryID *int
	Division   *models.Division
	Limit      int
	Offset     int
}

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	List(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error)
	Update(ctx context.Context, tournament *models.Tournament) error
	Delete(ctx context.Context, id int) error

	EnrollParticipant(ctx context.Context, tp *models.TournamentParticipant) error
	ListParticipants(ctx context.Context, tournamentID int) ([]models.Participant, error)
	RemoveParticipant(ctx context.Context, tournamentID, participantID int) error

	EnrollPair(ctx context.Context, exec SQLExecutor, entry *models.TournamentPair) error
	ListEntries(ctx context.Context, tournamentID int) ([]models.TournamentPair, error)
	UpdateEntry(ctx context.Context, exec SQLExecutor, entry *models.TournamentPair) error
	RemoveEntry(ctx context.Context, tournamentID, pairID int) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

func (r *postgresTournamentRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresTournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	query := `
		INSERT INTO tournaments (
			name, category_id, division, location, start_date, end_date,
			max_sets, tie_break_enabled, tie_break_points, tie_break_margin, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		t.Name, t.CategoryID, t.Division, t.Location, t.StartDate, t.EndDate,
		t.MaxSets, t.TieBreakEnabled, t.TieBreakPoints, t.TieBreakMargin, t.Notes,
	).Scan(&t.ID, &t.CreatedAt)

	return r.handleTournamentError(err)
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	query := `
		SELECT
			id, name, category_id, division, location, start_date, end_date,
			max_sets, tie_break_enabled, tie_break_points, tie_break_margin, notes, created_at
		FROM tournaments
		WHERE id = $1`

	t := &models.Tournament{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.CategoryID, &t.Division, &t.Location, &t.StartDate, &t.EndDate,
		&t.MaxSets, &t.TieBreakEnabled, &t.TieBreakPoints, &t.TieBreakMargin, &t.Notes, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *postgresTournamentRepository) List(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error) {
	query := `
		SELECT
			id, name, category_id, division, location, start_date, end_date,
			max_sets, tie_break_enabled, tie_break_points, tie_break_margin, notes, created_at
		FROM tournaments
		WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.CategoryID != nil {
		query += fmt.Sprintf(" AND category_id = $%d", argID)
		args = append(args, *filter.CategoryID)
		argID++
	}
	if filter.Division != nil {
		query += fmt.Sprintf(" AND division = $%d", argID)
		args = append(args, *filter.Division)
		argID++
	}

	query += " ORDER BY start_date DESC, created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argID)
		args = append(args, filter.Limit)
		argID++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argID)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if scanErr := rows.Scan(
			&t.ID, &t.Name, &t.CategoryID, &t.Division, &t.Location, &t.StartDate, &t.EndDate,
			&t.MaxSets, &t.TieBreakEnabled, &t.TieBreakPoints, &t.TieBreakMargin, &t.Notes, &t.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, rows.Err()
}

func (r *postgresTournamentRepository) Update(ctx context.Context, t *models.Tournament) error {
	query := `
		UPDATE tournaments SET
			name = $1,
			category_id = $2,
			division = $3,
			location = $4,
			start_date = $5,
			end_date = $6,
			max_sets = $7,
			tie_break_enabled = $8,
			tie_break_points = $9,
			tie_break_margin = $10,
			notes = $11
		WHERE id = $12`

	result, err := r.db.ExecContext(ctx, query,
		t.Name, t.CategoryID, t.Division, t.Location, t.StartDate, t.EndDate,
		t.MaxSets, t.TieBreakEnabled, t.TieBreakPoints, t.TieBreakMargin, t.Notes,
		t.ID,
	)
	if err != nil {
		return r.handleTournamentError(err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM tournaments WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return r.handleTournamentError(err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) EnrollParticipant(ctx context.Context, tp *models.TournamentParticipant) error {
	query := `
		INSERT INTO tournament_participants (tournament_id, participant_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, tp.TournamentID, tp.ParticipantID).
		Scan(&tp.ID, &tp.CreatedAt)

	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return ErrParticipantAlreadyEnrolled
		case "23503":
			return ErrEnrollmentInvalidReference
		}
	}
	return err
}

func (r *postgresTournamentRepository) ListParticipants(ctx context.Context, tournamentID int) ([]models.Participant, error) {
	query := `
		SELECT p.id, p.full_name, p.birth_date, p.gender, p.category_id, p.notes, p.created_at
		FROM tournament_participants tp
		JOIN participants p ON p.id = tp.participant_id
		WHERE tp.tournament_id = $1
		ORDER BY tp.created_at ASC, tp.id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]models.Participant, 0)
	for rows.Next() {
		var p models.Participant
		if scanErr := rows.Scan(
			&p.ID, &p.FullName, &p.BirthDate, &p.Gender, &p.CategoryID, &p.Notes, &p.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *postgresTournamentRepository) RemoveParticipant(ctx context.Context, tournamentID, participantID int) error {
	query := `DELETE FROM tournament_participants WHERE tournament_id = $1 AND participant_id = $2`
	result, err := r.db.ExecContext(ctx, query, tournamentID, participantID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEnrollmentNotFound)
}

func (r *postgresTournamentRepository) EnrollPair(ctx context.Context, exec SQLExecutor, entry *models.TournamentPair) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO tournament_pairs (tournament_id, pair_id, group_label, stage, seed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := executor.QueryRowContext(ctx, query,
		entry.TournamentID, entry.PairID, entry.GroupLabel, entry.Stage, entry.Seed,
	).Scan(&entry.ID, &entry.CreatedAt)

	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return ErrPairAlreadyEnrolled
		case "23503":
			return ErrEnrollmentInvalidReference
		}
	}
	return err
}

// ListEntries returns enrolled pairs in enrollment order with pair data preloaded.
func (r *postgresTournamentRepository) ListEntries(ctx context.Context, tournamentID int) ([]models.TournamentPair, error) {
	query := `
		SELECT
			tp.id, tp.tournament_id, tp.pair_id, tp.group_label, tp.stage, tp.seed, tp.is_eliminated, tp.created_at,
			p.name, p.player_one_id, p.player_two_id, p.category_id, p.division
		FROM tournament_pairs tp
		JOIN pairs p ON p.id = tp.pair_id
		WHERE tp.tournament_id = $1
		ORDER BY tp.created_at ASC, tp.id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.TournamentPair, 0)
	for rows.Next() {
		var e models.TournamentPair
		e.Pair = &models.Pair{}
		if scanErr := rows.Scan(
			&e.ID, &e.TournamentID, &e.PairID, &e.GroupLabel, &e.Stage, &e.Seed, &e.IsEliminated, &e.CreatedAt,
			&e.Pair.Name, &e.Pair.PlayerOneID, &e.Pair.PlayerTwoID, &e.Pair.CategoryID, &e.Pair.Division,
		); scanErr != nil {
			return nil, scanErr
		}
		e.Pair.ID = e.PairID
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *postgresTournamentRepository) UpdateEntry(ctx context.Context, exec SQLExecutor, entry *models.TournamentPair) error {
	executor := r.getExecutor(exec)
	query := `
		UPDATE tournament_pairs SET
			group_label = $1,
			stage = $2,
			seed = $3,
			is_eliminated = $4
		WHERE id = $5`

	result, err := executor.ExecContext(ctx, query,
		entry.GroupLabel, entry.Stage, entry.Seed, entry.IsEliminated, entry.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEnrollmentNotFound)
}

func (r *postgresTournamentRepository) RemoveEntry(ctx context.Context, tournamentID, pairID int) error {
	query := `DELETE FROM tournament_pairs WHERE tournament_id = $1 AND pair_id = $2`
	result, err := r.db.ExecContext(ctx, query, tournamentID, pairID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEnrollmentNotFound)
}

func (r *postgresTournamentRepository) handleTournamentError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
		if pqErr.Constraint == "tournaments_category_id_fkey" {
			return ErrTournamentInvalidCategory
		}
	}
	return err
}
