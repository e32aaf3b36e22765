package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mahawer/mahawer-api/internal/models"
	"github.com/mahawer/mahawer-api/internal/utils"
	"github.com/google/uuid"
)

type SliderRepository interface {
	ListActive(ctx context.Context) ([]*models.HeroSlider, error)
	ListAll(ctx context.Context) ([]*models.HeroSlider, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.HeroSlider, error)
	Create(ctx context.Context, slider *models.HeroSlider) error
	Update(ctx context.Context, slider *models.HeroSlider) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type sliderRepository struct {
	DB *sql.DB
}

func NewSliderRepo(db *sql.DB) SliderRepository {
	return &sliderRepository{DB: db}
}

const sliderColumns = `id, title, description, image, category, is_active, "order", button_text, button_link, created_at, updated_at`

func (r *sliderRepository) ListActive(ctx context.Context) ([]*models.HeroSlider, error) {
	query := `SELECT ` + sliderColumns + ` FROM hero_sliders WHERE is_active = TRUE ORDER BY "order" ASC`
	return r.querySliders(ctx, query)
}

func (r *sliderRepository) ListAll(ctx context.Context) ([]*models.HeroSlider, error) {
	query := `SELECT ` + sliderColumns + ` FROM hero_sliders ORDER BY "order" ASC`
	return r.querySliders(ctx, query)
}

func (r *sliderRepository) querySliders(ctx context.Context, query string) ([]*models.HeroSlider, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sliders: %w", err)
	}

	defer rows.Close()

	var sliders []*models.HeroSlider

	for rows.Next() {
		slider := &models.HeroSlider{}

		err := rows.Scan(&slider.ID, &slider.Title, &slider.Description, &slider.Image, &slider.Category, &slider.IsActive, &slider.Order, &slider.ButtonText, &slider.ButtonLink, &slider.CreatedAt, &slider.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning slider: %w", err)
		}

		sliders = append(sliders, slider)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sliders, nil
}

func (r *sliderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.HeroSlider, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	slider := &models.HeroSlider{}

	query := `SELECT ` + sliderColumns + ` FROM hero_sliders WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&slider.ID, &slider.Title, &slider.Description, &slider.Image, &slider.Category, &slider.IsActive, &slider.Order, &slider.ButtonText, &slider.ButtonLink, &slider.CreatedAt, &slider.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying slider: %w", err)
	}

	return slider, nil
}

func (r *sliderRepository) Create(ctx context.Context, slider *models.HeroSlider) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO hero_sliders (title, description, image, category, is_active, "order", button_text, button_link)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, slider.Title, slider.Description, slider.Image, slider.Category, slider.IsActive, slider.Order, slider.ButtonText, slider.ButtonLink).
		Scan(&slider.ID, &slider.CreatedAt, &slider.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting slider: %w", err)
	}

	return nil
}

func (r *sliderRepository) Update(ctx context.Context, slider *models.HeroSlider) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE hero_sliders
			  SET title = $1, description = $2, image = $3, category = $4, is_active = $5, "order" = $6, button_text = $7, button_link = $8, updated_at = NOW()
			  WHERE id = $9
			  RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, slider.Title, slider.Description, slider.Image, slider.Category, slider.IsActive, slider.Order, slider.ButtonText, slider.ButtonLink, slider.ID).
		Scan(&slider.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating slider: %w", err)
	}

	return nil
}

func (r *sliderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM hero_sliders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting slider: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting slider: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
