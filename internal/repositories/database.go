package repository

import (
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/mahawer/mahawer-api/internal/config"

	_ "github.com/lib/pq"
)

type Repository struct {
	DB *sql.DB

	User     UserRepository
	Category CategoryRepository
	Product  ProductRepository
	Inquiry  InquiryRepository
	Contact  ContactRepository
	Slider   SliderRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN())

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:       db,
		User:     NewUserRepo(db),
		Category: NewCategoryRepo(db),
		Product:  NewProductRepo(db),
		Inquiry:  NewInquiryRepo(db),
		Contact:  NewContactRepo(db),
		Slider:   NewSliderRepo(db),
	}, nil
}

func (r *Repository) Close() error {
	return r.DB.Close()
}
