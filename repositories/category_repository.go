package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/praiaclube/beachtennis-system/models"
)

var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryNameConflict = errors.New("category name already exists")
	ErrCategoryInUse        = errors.New("category is in use (participants/pairs/tournaments exist)")
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int) error
}

type postgresCategoryRepository struct {
	db *sql.DB
}

func NewPostgresCategoryRepository(db *sql.DB) CategoryRepository {
	return &postgresCategoryRepository{db: db}
}

func (r *postgresCategoryRepository) Create(ctx context.Context, c *models.Category) error {
	query := `
		INSERT INTO categories (name, description, is_default)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, c.Name, c.Description, c.IsDefault).
		Scan(&c.ID, &c.CreatedAt)

	return r.handleCategoryError(err)
}

func (r *postgresCategoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	query := `
		SELECT id, name, description, is_default, created_at
		FROM categories
		WHERE id = $1`

	c := &models.Category{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.IsDefault, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name, description, is_default, created_at
		FROM categories
		ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if scanErr := rows.Scan(&c.ID, &c.Name, &c.Description, &c.IsDefault, &c.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *postgresCategoryRepository) Update(ctx context.Context, c *models.Category) error {
	query := `
		UPDATE categories SET
			name = $1,
			description = $2
		WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, c.Name, c.Description, c.ID)
	if err != nil {
		return r.handleCategoryError(err)
	}
	return checkAffectedRows(result, ErrCategoryNotFound)
}

func (r *postgresCategoryRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM categories WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return r.handleCategoryError(err)
	}
	return checkAffectedRows(result, ErrCategoryNotFound)
}

func (r *postgresCategoryRepository) handleCategoryError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return ErrCategoryNameConflict
		case "23503":
			return ErrCategoryInUse
		}
	}
	return err
}
