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

type SliderService interface {
	ListPublic(ctx context.Context) ([]*models.HeroSlider, error)
	ListAdmin(ctx context.Context) ([]*models.HeroSlider, error)
	GetSliderByID(ctx context.Context, id uuid.UUID) (*models.HeroSlider, error)
	CreateSlider(ctx context.Context, req *models.CreateSliderRequest) (*models.HeroSlider, error)
	UpdateSlider(ctx context.Context, id uuid.UUID, req *models.UpdateSliderRequest) (*models.HeroSlider, error)
	DeleteSlider(ctx context.Context, id uuid.UUID) error
}

type sliderService struct {
	repo     repository.SliderRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewSliderService(repo repository.SliderRepository, cache cache.Cache, cacheTTL time.Duration) SliderService {
	return &sliderService{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

// ListPublic returns active sliders in display order. Cache-aside; any admin
// mutation invalidates the key.
func (s *sliderService) ListPublic(ctx context.Context) ([]*models.HeroSlider, error) {

	key := cache.Key(cache.SlidersKeyPrefix, cache.PublicScope)

	var cached []*models.HeroSlider

	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	sliders, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch sliders").WithError(err)
	}

	if err := s.cache.Set(ctx, key, sliders, s.cacheTTL); err != nil {
		slog.Warn("Failed to cache sliders", slog.Any("error", err))
	}

	return sliders, nil
}

func (s *sliderService) ListAdmin(ctx context.Context) ([]*models.HeroSlider, error) {

	sliders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch sliders").WithError(err)
	}

	return sliders, nil
}

func (s *sliderService) GetSliderByID(ctx context.Context, id uuid.UUID) (*models.HeroSlider, error) {

	slider, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Slider not found").WithError(err)
	}

	return slider, nil
}

func (s *sliderService) CreateSlider(ctx context.Context, req *models.CreateSliderRequest) (*models.HeroSlider, error) {

	slider := &models.HeroSlider{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		IsActive:    true,
		ButtonText:  req.ButtonText,
		ButtonLink:  req.ButtonLink,
	}

	if req.IsActive != nil {
		slider.IsActive = *req.IsActive
	}
	if req.Order != nil {
		slider.Order = *req.Order
	}

	if err := s.repo.Create(ctx, slider); err != nil {
		return nil, errors.DatabaseError("Failed to create slider").WithError(err)
	}

	s.invalidatePublic(ctx)

	return slider, nil
}

// UpdateSlider replaces the whole slider; the request carries every field.
func (s *sliderService) UpdateSlider(ctx context.Context, id uuid.UUID, req *models.UpdateSliderRequest) (*models.HeroSlider, error) {

	slider, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Slider not found").WithError(err)
	}

	slider.Title = req.Title
	slider.Description = req.Description
	slider.Image = req.Image
	slider.Category = req.Category
	slider.ButtonText = req.ButtonText
	slider.ButtonLink = req.ButtonLink

	if req.IsActive != nil {
		slider.IsActive = *req.IsActive
	}
	if req.Order != nil {
		slider.Order = *req.Order
	}

	if err := s.repo.Update(ctx, slider); err != nil {
		return nil, errors.DatabaseError("Failed to update slider").WithError(err)
	}

	s.invalidatePublic(ctx)

	return slider, nil
}

func (s *sliderService) DeleteSlider(ctx context.Context, id uuid.UUID) error {

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NotFoundError("Slider not found").WithError(err)
	}

	s.invalidatePublic(ctx)

	return nil
}

func (s *sliderService) invalidatePublic(ctx context.Context) {
	key := cache.Key(cache.SlidersKeyPrefix, cache.PublicScope)

	if err := s.cache.Delete(ctx, key); err != nil {
		slog.Warn("Failed to invalidate sliders cache", slog.Any("error", err))
	}
}
