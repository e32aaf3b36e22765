package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mahawer/mahawer-api/internal/models"
	"github.com/mahawer/mahawer-api/internal/utils"
	"github.com/google/uuid"
)

type CategoryRepository interface {
	ListPublic(ctx context.Context) ([]*models.Category, error)
	ListAdmin(ctx context.Context) ([]*models.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountProducts(ctx context.Context, id uuid.UUID) (int, error)
	Count(ctx context.Context) (int, error)
}

type categoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepo(db *sql.DB) CategoryRepository {
	return &categoryRepository{DB: db}
}

// ListPublic returns active categories ordered by Arabic name, each carrying
// its count of active products.
func (r *categoryRepository) ListPublic(ctx context.Context) ([]*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.name_ar, c.name_en, c.emoji, c.description, c.is_active, c.created_at, c.updated_at,
		       COUNT(p.id) FILTER (WHERE p.is_active)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		WHERE c.is_active = TRUE
		GROUP BY c.id
		ORDER BY c.name_ar ASC`

	return r.queryCategories(dbCtx, query)
}

// ListAdmin returns every category, newest first, with total product counts.
func (r *categoryRepository) ListAdmin(ctx context.Context) ([]*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.name_ar, c.name_en, c.emoji, c.description, c.is_active, c.created_at, c.updated_at,
		       COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at DESC`

	return r.queryCategories(dbCtx, query)
}

func (r *categoryRepository) queryCategories(ctx context.Context, query string) ([]*models.Category, error) {

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}

	defer rows.Close()

	var categories []*models.Category

	for rows.Next() {
		category := &models.Category{}

		err := rows.Scan(&category.ID, &category.NameAr, &category.NameEn, &category.Emoji, &category.Description, &category.IsActive, &category.CreatedAt, &category.UpdatedAt, &category.ProductCount)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	category := &models.Category{}

	query := `
		SELECT id, name_ar, name_en, emoji, description, is_active, created_at, updated_at
		FROM categories
		WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&category.ID, &category.NameAr, &category.NameEn, &category.Emoji, &category.Description, &category.IsActive, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying category: %w", err)
	}

	return category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO categories (name_ar, name_en, emoji, description, is_active)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, category.NameAr, category.NameEn, category.Emoji, category.Description, category.IsActive).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE categories SET name_ar = $1, name_en = $2, emoji = $3, description = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query, category.NameAr, category.NameEn, category.Emoji, category.Description, category.IsActive, category.ID).Scan(&category.UpdatedAt)
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *categoryRepository) CountProducts(ctx context.Context, id uuid.UUID) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products WHERE category_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting category products: %w", err)
	}

	return count, nil
}

func (r *categoryRepository) Count(ctx context.Context) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM categories`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting categories: %w", err)
	}

	return count, nil
}
