package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mahawer/mahawer-api/internal/models"
	"github.com/mahawer/mahawer-api/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error)
	List(ctx context.Context) ([]*models.Inquiry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.InquiryStatus) error
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status models.InquiryStatus) (int, error)
}

type inquiryRepository struct {
	DB *sql.DB
}

func NewInquiryRepo(db *sql.DB) InquiryRepository {
	return &inquiryRepository{DB: db}
}

// Create inserts the inquiry and all of its line items in one transaction:
// either the whole quotation request lands or none of it does. Product IDs are
// not checked here; the inquiry_items foreign key is the only guard.
func (r *inquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("beginning inquiry transaction: %w", err)
	}

	defer tx.Rollback()

	query := `INSERT INTO inquiries (customer_name, customer_email, customer_phone, company_name, status, total_items)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`

	err = tx.QueryRowContext(dbCtx, query, inquiry.CustomerName, inquiry.CustomerEmail, inquiry.CustomerPhone, inquiry.CompanyName, inquiry.Status, inquiry.TotalItems).
		Scan(&inquiry.ID, &inquiry.CreatedAt, &inquiry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting inquiry: %w", err)
	}

	itemQuery := `INSERT INTO inquiry_items (inquiry_id, product_id, quantity, specifications, brand, notes)
				  VALUES ($1, $2, $3, $4, $5, $6)
				  RETURNING id, created_at`

	for i := range inquiry.Items {
		item := &inquiry.Items[i]
		item.InquiryID = inquiry.ID

		err := tx.QueryRowContext(dbCtx, itemQuery, item.InquiryID, item.ProductID, item.Quantity, item.Specifications, item.Brand, item.Notes).
			Scan(&item.ID, &item.CreatedAt)
		if err != nil {
			return fmt.Errorf("inserting inquiry item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing inquiry transaction: %w", err)
	}

	return nil
}

func (r *inquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	inquiry := &models.Inquiry{}

	query := `
		SELECT id, customer_name, customer_email, customer_phone, company_name, status, total_items, created_at, updated_at
		FROM inquiries
		WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&inquiry.ID, &inquiry.CustomerName, &inquiry.CustomerEmail, &inquiry.CustomerPhone, &inquiry.CompanyName, &inquiry.Status, &inquiry.TotalItems, &inquiry.CreatedAt, &inquiry.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying inquiry: %w", err)
	}

	items, err := r.loadItems(dbCtx, inquiry.ID)
	if err != nil {
		return nil, err
	}

	inquiry.Items = items

	return inquiry, nil
}

func (r *inquiryRepository) List(ctx context.Context) ([]*models.Inquiry, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, customer_name, customer_email, customer_phone, company_name, status, total_items, created_at, updated_at
		FROM inquiries
		ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("listing inquiries: %w", err)
	}

	defer rows.Close()

	var inquiries []*models.Inquiry

	for rows.Next() {
		inquiry := &models.Inquiry{}

		err := rows.Scan(&inquiry.ID, &inquiry.CustomerName, &inquiry.CustomerEmail, &inquiry.CustomerPhone, &inquiry.CompanyName, &inquiry.Status, &inquiry.TotalItems, &inquiry.CreatedAt, &inquiry.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning inquiry: %w", err)
		}

		inquiries = append(inquiries, inquiry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, inquiry := range inquiries {
		items, err := r.loadItems(dbCtx, inquiry.ID)
		if err != nil {
			return nil, err
		}

		inquiry.Items = items
	}

	return inquiries, nil
}

// loadItems fetches the line items of one inquiry with product and category
// joined, so admin views can render names without extra lookups.
func (r *inquiryRepository) loadItems(ctx context.Context, inquiryID uuid.UUID) ([]models.InquiryItem, error) {

	query := `
		SELECT i.id, i.inquiry_id, i.product_id, i.quantity, i.specifications, i.brand, i.notes, i.created_at,
		       p.id, p.category_id, p.name_ar, p.name_en, p.description_ar, p.description_en,
		       p.images, p.specifications, p.is_active, p.is_cash_import, p.has_custom_specs, p.created_at, p.updated_at,
		       c.id, c.name_ar, c.name_en, c.emoji, c.description, c.is_active, c.created_at, c.updated_at
		FROM inquiry_items i
		LEFT JOIN products p ON i.product_id = p.id
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE i.inquiry_id = $1
		ORDER BY i.created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("querying inquiry items: %w", err)
	}

	defer rows.Close()

	var items []models.InquiryItem

	for rows.Next() {
		var item models.InquiryItem

		product := &models.Product{}
		category := &models.Category{}

		err := rows.Scan(&item.ID, &item.InquiryID, &item.ProductID, &item.Quantity, &item.Specifications, &item.Brand, &item.Notes, &item.CreatedAt,
			&product.ID, &product.CategoryID, &product.NameAr, &product.NameEn, &product.DescriptionAr, &product.DescriptionEn,
			pq.Array(&product.Images), pq.Array(&product.Specifications), &product.IsActive, &product.IsCashImport, &product.HasCustomSpecs, &product.CreatedAt, &product.UpdatedAt,
			&category.ID, &category.NameAr, &category.NameEn, &category.Emoji, &category.Description, &category.IsActive, &category.CreatedAt, &category.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning inquiry item: %w", err)
		}

		product.Category = category
		item.Product = product

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *inquiryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.InquiryStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE inquiries SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("updating inquiry status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating inquiry status: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *inquiryRepository) Count(ctx context.Context) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM inquiries`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting inquiries: %w", err)
	}

	return count, nil
}

func (r *inquiryRepository) CountByStatus(ctx context.Context, status models.InquiryStatus) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM inquiries WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting inquiries by status: %w", err)
	}

	return count, nil
}
