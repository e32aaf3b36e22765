package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mahawer/mahawer-api/internal/models"
	"github.com/mahawer/mahawer-api/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProductRepository interface {
	ListPublic(ctx context.Context, filter *models.ProductFilter) ([]*models.Product, int, error)
	ListAdmin(ctx context.Context) ([]*models.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountInquiryItems(ctx context.Context, id uuid.UUID) (int, error)
	Count(ctx context.Context) (int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `p.id, p.category_id, p.name_ar, p.name_en, p.description_ar, p.description_en,
	       p.images, p.specifications, p.is_active, p.is_cash_import, p.has_custom_specs, p.created_at, p.updated_at,
	       c.id, c.name_ar, c.name_en, c.emoji, c.description, c.is_active, c.created_at, c.updated_at`

func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	product := &models.Product{}
	category := &models.Category{}

	err := scanner.Scan(&product.ID, &product.CategoryID, &product.NameAr, &product.NameEn, &product.DescriptionAr, &product.DescriptionEn,
		pq.Array(&product.Images), pq.Array(&product.Specifications), &product.IsActive, &product.IsCashImport, &product.HasCustomSpecs, &product.CreatedAt, &product.UpdatedAt,
		&category.ID, &category.NameAr, &category.NameEn, &category.Emoji, &category.Description, &category.IsActive, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return nil, err
	}

	product.Category = category

	return product, nil
}

// ListPublic returns active products matching the filter, newest first,
// together with the total match count ignoring pagination.
func (r *productRepository) ListPublic(ctx context.Context, filter *models.ProductFilter) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	conditions := []string{"p.is_active = TRUE"}
	args := []any{}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("p.category_id = $%d", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(p.name_ar ILIKE $%d OR p.name_en ILIKE $%d OR p.description_ar ILIKE $%d OR p.description_en ILIKE $%d)", n, n, n, n))
	}

	where := strings.Join(conditions, " AND ")

	var total int

	countQuery := `SELECT COUNT(*) FROM products p WHERE ` + where

	err := r.DB.QueryRowContext(dbCtx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	args = append(args, filter.Limit, offset)

	query := `SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE ` + where + `
		ORDER BY p.created_at DESC
		LIMIT $` + fmt.Sprint(len(args)-1) + ` OFFSET $` + fmt.Sprint(len(args))

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) ListAdmin(ctx context.Context) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		ORDER BY p.created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return r.getByID(ctx, id, false)
}

func (r *productRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return r.getByID(ctx, id, true)
}

func (r *productRepository) getByID(ctx context.Context, id uuid.UUID, activeOnly bool) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1`

	if activeOnly {
		query += ` AND p.is_active = TRUE`
	}

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying product: %w", err)
	}

	return product, nil
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (category_id, name_ar, name_en, description_ar, description_en, images, specifications, is_active, is_cash_import, has_custom_specs)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, product.CategoryID, product.NameAr, product.NameEn, product.DescriptionAr, product.DescriptionEn,
		pq.Array(product.Images), pq.Array(product.Specifications), product.IsActive, product.IsCashImport, product.HasCustomSpecs).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET category_id = $1, name_ar = $2, name_en = $3, description_ar = $4, description_en = $5,
			images = $6, specifications = $7, is_active = $8, is_cash_import = $9, has_custom_specs = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query, product.CategoryID, product.NameAr, product.NameEn, product.DescriptionAr, product.DescriptionEn,
		pq.Array(product.Images), pq.Array(product.Specifications), product.IsActive, product.IsCashImport, product.HasCustomSpecs, product.ID).Scan(&product.UpdatedAt)
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *productRepository) CountInquiryItems(ctx context.Context, id uuid.UUID) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM inquiry_items WHERE product_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting inquiry items: %w", err)
	}

	return count, nil
}

func (r *productRepository) Count(ctx context.Context) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}

	return count, nil
}
