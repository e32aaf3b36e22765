package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/mahawer/mahawer-api/internal/cache"
	"github.com/mahawer/mahawer-api/internal/errors"
	"github.com/mahawer/mahawer-api/internal/models"
	repository "github.com/mahawer/mahawer-api/internal/repositories"
	"github.com/google/uuid"
)

type CategoryService interface {
	ListPublic(ctx context.Context) ([]*models.Category, error)
	ListAdmin(ctx context.Context) ([]*models.Category, error)
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo     repository.CategoryRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewCategoryService(repo repository.CategoryRepository, cache cache.Cache, cacheTTL time.Duration) CategoryService {
	return &categoryService{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

// ListPublic returns active categories with their active-product counts,
// ordered by Arabic name. Cache-aside; admin mutations invalidate the key.
func (s *categoryService) ListPublic(ctx context.Context) ([]*models.Category, error) {

	key := cache.Key(cache.CategoriesKeyPrefix, cache.PublicScope)

	var cached []*models.Category

	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	categories, err := s.repo.ListPublic(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	if err := s.cache.Set(ctx, key, categories, s.cacheTTL); err != nil {
		slog.Warn("Failed to cache categories", slog.Any("error", err))
	}

	return categories, nil
}

func (s *categoryService) ListAdmin(ctx context.Context) ([]*models.Category, error) {

	categories, err := s.repo.ListAdmin(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {

	category := &models.Category{
		NameAr:      req.NameAr,
		NameEn:      req.NameEn,
		Emoji:       req.Emoji,
		Description: req.Description,
		IsActive:    true,
	}

	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, errors.DatabaseError("Failed to create category").WithError(err)
	}

	s.invalidatePublic(ctx)

	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *models.UpdateCategoryRequest) (*models.Category, error) {

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Category not found").WithError(err)
	}

	if req.NameAr != nil {
		category.NameAr = *req.NameAr
	}
	if req.NameEn != nil {
		category.NameEn = *req.NameEn
	}
	if req.Emoji != nil {
		category.Emoji = *req.Emoji
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, errors.DatabaseError("Failed to update category").WithError(err)
	}

	s.invalidatePublic(ctx)

	return category, nil
}

// DeleteCategory refuses to remove a category that still owns products.
func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {

	count, err := s.repo.CountProducts(ctx, id)
	if err != nil {
		return errors.DatabaseError("Failed to check category products").WithError(err)
	}

	if count > 0 {
		return errors.ConflictError("Cannot delete category with existing products")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NotFoundError("Category not found").WithError(err)
	}

	s.invalidatePublic(ctx)

	return nil
}

func (s *categoryService) invalidatePublic(ctx context.Context) {
	key := cache.Key(cache.CategoriesKeyPrefix, cache.PublicScope)

	if err := s.cache.Delete(ctx, key); err != nil {
		slog.Warn("Failed to invalidate categories cache", slog.Any("error", err))
	}
}
