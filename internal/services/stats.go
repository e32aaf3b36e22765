package service

import (
	"context"

	"github.com/mahawer/mahawer-api/internal/errors"
	"github.com/mahawer/mahawer-api/internal/models"
	repository "github.com/mahawer/mahawer-api/internal/repositories"
)

type StatsService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type statsService struct {
	products   repository.ProductRepository
	inquiries  repository.InquiryRepository
	categories repository.CategoryRepository
}

func NewStatsService(products repository.ProductRepository, inquiries repository.InquiryRepository, categories repository.CategoryRepository) StatsService {
	return &statsService{products: products, inquiries: inquiries, categories: categories}
}

func (s *statsService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {

	totalProducts, err := s.products.Count(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to count products").WithError(err)
	}

	totalInquiries, err := s.inquiries.Count(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to count inquiries").WithError(err)
	}

	pendingInquiries, err := s.inquiries.CountByStatus(ctx, models.InquiryStatusPending)
	if err != nil {
		return nil, errors.DatabaseError("Failed to count pending inquiries").WithError(err)
	}

	totalCategories, err := s.categories.Count(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to count categories").WithError(err)
	}

	return &models.DashboardStats{
		TotalProducts:    totalProducts,
		TotalInquiries:   totalInquiries,
		PendingInquiries: pendingInquiries,
		TotalCategories:  totalCategories,
	}, nil
}
