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
	ErrPairNotFound        = errors.New("pair not found")
	ErrPairAlreadyExists   = errors.New("pair with these players already exists")
	ErrPairInvalidPlayer   = errors.New("invalid player reference")
	ErrPairInvalidCategory = errors.New("invalid category reference")
	ErrPairInUse           = errors.New("pair is in use (enrollments/matches exist)")
)

type ListPairsFilter struct {
	CategoryID *int
	Division   *models.Division
	PlayerID   *int
	Limit      int
	Offset     int
}

type PairRepository interface {
	Create(ctx context.Context, exec SQLExecutor, pair *models.Pair) error
	GetByID(ctx context.Context, id int) (*models.Pair, error)
	List(ctx context.Context, filter ListPairsFilter) ([]models.Pair, error)
	Update(ctx context.Context, pair *models.Pair) error
	Delete(ctx context.Context, id int) error
}

type postgresPairRepository struct {
	db *sql.DB
}

func NewPostgresPairRepository(db *sql.DB) PairRepository {
	return &postgresPairRepository{db: db}
}

func (r *postgresPairRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresPairRepository) Create(ctx context.Context, exec SQLExecutor, p *models.Pair) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO pairs (name, player_one_id, player_two_id, category_id, division)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := executor.QueryRowContext(ctx, query,
		p.Name, p.PlayerOneID, p.PlayerTwoID, p.CategoryID, p.Division,
	).Scan(&p.ID, &p.CreatedAt)

	return r.handlePairError(err)
}

func (r *postgresPairRepository) GetByID(ctx context.Context, id int) (*models.Pair, error) {
	query := `
		SELECT
			p.id, p.name, p.player_one_id, p.player_two_id, p.category_id, p.division, p.created_at,
			p1.full_name, p1.gender, p2.full_name, p2.gender
		FROM pairs p
		JOIN participants p1 ON p1.id = p.player_one_id
		JOIN participants p2 ON p2.id = p.player_two_id
		WHERE p.id = $1`

	pair := &models.Pair{PlayerOne: &models.Participant{}, PlayerTwo: &models.Participant{}}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&pair.ID, &pair.Name, &pair.PlayerOneID, &pair.PlayerTwoID, &pair.CategoryID, &pair.Division, &pair.CreatedAt,
		&pair.PlayerOne.FullName, &pair.PlayerOne.Gender, &pair.PlayerTwo.FullName, &pair.PlayerTwo.Gender,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPairNotFound
		}
		return nil, err
	}
	pair.PlayerOne.ID = pair.PlayerOneID
	pair.PlayerTwo.ID = pair.PlayerTwoID
	return pair, nil
}

func (r *postgresPairRepository) List(ctx context.Context, filter ListPairsFilter) ([]models.Pair, error) {
	query := `
		SELECT id, name, player_one_id, player_two_id, category_id, division, created_at
		FROM pairs
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
	if filter.PlayerID != nil {
		query += fmt.Sprintf(" AND (player_one_id = $%d OR player_two_id = $%d)", argID, argID)
		args = append(args, *filter.PlayerID)
		argID++
	}

	query += " ORDER BY name ASC"

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

	pairs := make([]models.Pair, 0)
	for rows.Next() {
		var p models.Pair
		if scanErr := rows.Scan(
			&p.ID, &p.Name, &p.PlayerOneID, &p.PlayerTwoID, &p.CategoryID, &p.Division, &p.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		pairs = append(pairs, p)
	}
	return pairs, rows.Err()
}

func (r *postgresPairRepository) Update(ctx context.Context, p *models.Pair) error {
	query := `
		UPDATE pairs SET
			name = $1,
			category_id = $2,
			division = $3
		WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, p.Name, p.CategoryID, p.Division, p.ID)
	if err != nil {
		return r.handlePairError(err)
	}
	return checkAffectedRows(result, ErrPairNotFound)
}

func (r *postgresPairRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM pairs WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return r.handlePairError(err)
	}
	return checkAffectedRows(result, ErrPairNotFound)
}

func (r *postgresPairRepository) handlePairError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return ErrPairAlreadyExists
		case "23503":
			switch pqErr.Constraint {
			case "pairs_player_one_id_fkey", "pairs_player_two_id_fkey":
				return ErrPairInvalidPlayer
			case "pairs_category_id_fkey":
				return ErrPairInvalidCategory
			default:
				return ErrPairInUse
			}
		}
	}
	return err
}
