package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mahawer/mahawer-api/internal/models"
	"github.com/mahawer/mahawer-api/internal/utils"
	"github.com/google/uuid"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	List(ctx context.Context) ([]*models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) error
}

type contactRepository struct {
	DB *sql.DB
}

func NewContactRepo(db *sql.DB) ContactRepository {
	return &contactRepository{DB: db}
}

const contactColumns = `id, name, email, phone, company, subject, message, status, notes, created_at, updated_at`

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO contacts (name, email, phone, company, subject, message, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, contact.Name, contact.Email, contact.Phone, contact.Company, contact.Subject, contact.Message, contact.Status).
		Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting contact: %w", err)
	}

	return nil
}

func (r *contactRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	contact := &models.Contact{}

	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&contact.ID, &contact.Name, &contact.Email, &contact.Phone, &contact.Company, &contact.Subject, &contact.Message, &contact.Status, &contact.Notes, &contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying contact: %w", err)
	}

	return contact, nil
}

func (r *contactRepository) List(ctx context.Context) ([]*models.Contact, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}

	defer rows.Close()

	var contacts []*models.Contact

	for rows.Next() {
		contact := &models.Contact{}

		err := rows.Scan(&contact.ID, &contact.Name, &contact.Email, &contact.Phone, &contact.Company, &contact.Subject, &contact.Message, &contact.Status, &contact.Notes, &contact.CreatedAt, &contact.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}

		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contacts, nil
}

func (r *contactRepository) Update(ctx context.Context, contact *models.Contact) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE contacts
			  SET status = $1, notes = $2, updated_at = NOW()
			  WHERE id = $3
			  RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, contact.Status, contact.Notes, contact.ID).Scan(&contact.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating contact: %w", err)
	}

	return nil
}
