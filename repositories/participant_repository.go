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
	ErrParticipantNotFound        = errors.New("participant not found")
	ErrParticipantInvalidCategory = errors.New("invalid category reference")
	ErrParticipantInUse           = errors.New("participant is in use (pairs exist)")
)

type ListParticipantsFilter struct {
	CategoryID *int
	Gender     *models.Gender
	Search     string
	Limit      int
	Offset     int
}

type ParticipantRepository interface {
	Create(ctx context.Context, participant *models.Participant) error
	GetByID(ctx context.Context, id int) (*models.Participant, error)
	GetByIDs(ctx context.Context, ids []int) ([]models.Participant, error)
	List(ctx context.Context, filter ListParticipantsFilter) ([]models.Participant, error)
	Update(ctx context.Context, participant *models.Participant) error
	Delete(ctx context.Context, id int) error
}

type postgresParticipantRepository struct {
	db *sql.DB
}

func NewPostgresParticipantRepository(db *sql.DB) ParticipantRepository {
	return &postgresParticipantRepository{db: db}
}

func (r *postgresParticipantRepository) Create(ctx context.Context, p *models.Participant) error {
	query := `
		INSERT INTO participants (full_name, birth_date, gender, category_id, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		p.FullName, p.BirthDate, p.Gender, p.CategoryID, p.Notes,
	).Scan(&p.ID, &p.CreatedAt)

	return r.handleParticipantError(err)
}

func (r *postgresParticipantRepository) GetByID(ctx context.Context, id int) (*models.Participant, error) {
	query := `
		SELECT
			p.id, p.full_name, p.birth_date, p.gender, p.category_id, p.notes, p.created_at,
			c.id, c.name, c.description, c.is_default, c.created_at
		FROM participants p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`

	p := &models.Participant{Category: &models.Category{}}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.FullName, &p.BirthDate, &p.Gender, &p.CategoryID, &p.Notes, &p.CreatedAt,
		&p.Category.ID, &p.Category.Name, &p.Category.Description, &p.Category.IsDefault, &p.Category.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresParticipantRepository) GetByIDs(ctx context.Context, ids []int) ([]models.Participant, error) {
	if len(ids) == 0 {
		return []models.Participant{}, nil
	}
	query := `
		SELECT id, full_name, birth_date, gender, category_id, notes, created_at
		FROM participants
		WHERE id = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]models.Participant, 0, len(ids))
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

func (r *postgresParticipantRepository) List(ctx context.Context, filter ListParticipantsFilter) ([]models.Participant, error) {
	query := `
		SELECT id, full_name, birth_date, gender, category_id, notes, created_at
		FROM participants
		WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.CategoryID != nil {
		query += fmt.Sprintf(" AND category_id = $%d", argID)
		args = append(args, *filter.CategoryID)
		argID++
	}
	if filter.Gender != nil {
		query += fmt.Sprintf(" AND gender = $%d", argID)
		args = append(args, *filter.Gender)
		argID++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND full_name ILIKE $%d", argID)
		args = append(args, "%"+filter.Search+"%")
		argID++
	}

	query += " ORDER BY full_name ASC"

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

func (r *postgresParticipantRepository) Update(ctx context.Context, p *models.Participant) error {
	query := `
		UPDATE participants SET
			full_name = $1,
			birth_date = $2,
			gender = $3,
			category_id = $4,
			notes = $5
		WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query,
		p.FullName, p.BirthDate, p.Gender, p.CategoryID, p.Notes, p.ID,
	)
	if err != nil {
		return r.handleParticipantError(err)
	}
	return checkAffectedRows(result, ErrParticipantNotFound)
}

func (r *postgresParticipantRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM participants WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return r.handleParticipantError(err)
	}
	return checkAffectedRows(result, ErrParticipantNotFound)
}

func (r *postgresParticipantRepository) handleParticipantError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
		if pqErr.Constraint == "participants_category_id_fkey" {
			return ErrParticipantInvalidCategory
		}
		return ErrParticipantInUse
	}
	return err
}
