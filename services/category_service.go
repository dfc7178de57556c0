package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/praiaclube/beachtennis-system/models"
	"github.com/praiaclube/beachtennis-system/repositories"
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategoryInUse        = errors.New("category cannot be deleted as it is currently in use")
	ErrCategoryIsDefault    = errors.New("default categories cannot be deleted")
)

type CategoryService interface {
	CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error)
	GetCategoryByID(ctx context.Context, id int) (*models.Category, error)
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, id int, input CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

type CategoryInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	category := &models.Category{
		Name:        name,
		Description: input.Description,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrCategoryNameConflict) {
			return nil, ErrCategoryNameConflict
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id int) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by id %d: %w", id, err)
	}
	return category, nil
}

func (s *categoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int, input CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	existing, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = name
	existing.Description = input.Description

	if err := s.categoryRepo.Update(ctx, existing); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCategoryNotFound):
			return nil, ErrCategoryNotFound
		case errors.Is(err, repositories.ErrCategoryNameConflict):
			return nil, ErrCategoryNameConflict
		default:
			return nil, fmt.Errorf("failed to update category %d: %w", id, err)
		}
	}
	return existing, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int) error {
	existing, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsDefault {
		return ErrCategoryIsDefault
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCategoryNotFound):
			return ErrCategoryNotFound
		case errors.Is(err, repositories.ErrCategoryInUse):
			return ErrCategoryInUse
		default:
			return fmt.Errorf("failed to delete category %d: %w", id, err)
		}
	}
	return nil
}
