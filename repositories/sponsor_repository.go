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
	ErrSponsorNotFound     = errors.New("sponsor not found")
	ErrSponsorNameConflict = errors.New("sponsor name already exists")
)

type SponsorRepository interface {
	Create(ctx context.Context, sponsor *models.Sponsor) error
	GetByID(ctx context.Context, id int) (*models.Sponsor, error)
	List(ctx context.Context, onlyActive bool) ([]models.Sponsor, error)
	Update(ctx context.Context, sponsor *models.Sponsor) error
	UpdateLogoKey(ctx context.Context, id int, logoKey *string) error
	Delete(ctx context.Context, id int) error
}

type postgresSponsorRepository struct {
	db *sql.DB
}

func NewPostgresSponsorRepository(db *sql.DB) SponsorRepository {
	return &postgresSponsorRepository{db: db}
}

func (r *postgresSponsorRepository) Create(ctx context.Context, s *models.Sponsor) error {
	query := `
		INSERT INTO sponsors (name, website, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, s.Name, s.Website, s.IsActive).
		Scan(&s.ID, &s.CreatedAt)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return ErrSponsorNameConflict
	}
	return err
}

func (r *postgresSponsorRepository) GetByID(ctx context.Context, id int) (*models.Sponsor, error) {
	query := `
		SELECT id, name, website, logo_key, is_active, created_at
		FROM sponsors
		WHERE id = $1`

	s := &models.Sponsor{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Website, &s.LogoKey, &s.IsActive, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSponsorNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *postgresSponsorRepository) List(ctx context.Context, onlyActive bool) ([]models.Sponsor, error) {
	query := `
		SELECT id, name, website, logo_key, is_active, created_at
		FROM sponsors`
	if onlyActive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sponsors := make([]models.Sponsor, 0)
	for rows.Next() {
		var s models.Sponsor
		if scanErr := rows.Scan(&s.ID, &s.Name, &s.Website, &s.LogoKey, &s.IsActive, &s.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		sponsors = append(sponsors, s)
	}
	return sponsors, rows.Err()
}

func (r *postgresSponsorRepository) Update(ctx context.Context, s *models.Sponsor) error {
	query := `
		UPDATE sponsors SET
			name = $1,
			website = $2,
			is_active = $3
		WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, s.Name, s.Website, s.IsActive, s.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrSponsorNameConflict
		}
		return err
	}
	return checkAffectedRows(result, ErrSponsorNotFound)
}

func (r *postgresSponsorRepository) UpdateLogoKey(ctx context.Context, id int, logoKey *string) error {
	query := `UPDATE sponsors SET logo_key = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, logoKey, id)
	if err != nil {
		return fmt.Errorf("failed to update sponsor logo key: %w", err)
	}
	return checkAffectedRows(result, ErrSponsorNotFound)
}

func (r *postgresSponsorRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM sponsors WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSponsorNotFound)
}
