package service

import (
	"context"

	"github.com/mahawer/mahawer-api/internal/errors"
	"github.com/mahawer/mahawer-api/internal/models"
	repository "github.com/mahawer/mahawer-api/internal/repositories"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ProductService interface {
	ListPublic(ctx context.Context, filter *models.ProductFilter) (*models.ProductPage, error)
	ListAdmin(ctx context.Context) ([]*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID, activeOnly bool) (*models.Product, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

// ListPublic returns one page of the active catalogue. Page and limit are
// normalized here so the repository always sees sane values.
func (s *productService) ListPublic(ctx context.Context, filter *models.ProductFilter) (*models.ProductPage, error) {

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	products, total, err := s.repo.ListPublic(ctx, filter)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit

	return &models.ProductPage{
		Products:   products,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *productService) ListAdmin(ctx context.Context) ([]*models.Product, error) {

	products, err := s.repo.ListAdmin(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID, activeOnly bool) (*models.Product, error) {

	var (
		product *models.Product
		err     error
	)

	if activeOnly {
		product, err = s.repo.GetActiveByID(ctx, id)
	} else {
		product, err = s.repo.GetByID(ctx, id)
	}

	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		CategoryID:     req.CategoryID,
		NameAr:         req.NameAr,
		NameEn:         req.NameEn,
		DescriptionAr:  req.DescriptionAr,
		DescriptionEn:  req.DescriptionEn,
		Images:         req.Images,
		Specifications: req.Specifications,
		IsActive:       true,
	}

	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsCashImport != nil {
		product.IsCashImport = *req.IsCashImport
	}
	if req.HasCustomSpecs != nil {
		product.HasCustomSpecs = *req.HasCustomSpecs
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.NameAr != nil {
		product.NameAr = *req.NameAr
	}
	if req.NameEn != nil {
		product.NameEn = *req.NameEn
	}
	if req.DescriptionAr != nil {
		product.DescriptionAr = *req.DescriptionAr
	}
	if req.DescriptionEn != nil {
		product.DescriptionEn = *req.DescriptionEn
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Specifications != nil {
		product.Specifications = req.Specifications
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsCashImport != nil {
		product.IsCashImport = *req.IsCashImport
	}
	if req.HasCustomSpecs != nil {
		product.HasCustomSpecs = *req.HasCustomSpecs
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	return product, nil
}

// DeleteProduct refuses to remove a product referenced by inquiry items, so
// submitted quotation requests keep their lines intact.
func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {

	count, err := s.repo.CountInquiryItems(ctx, id)
	if err != nil {
		return errors.DatabaseError("Failed to check product references").WithError(err)
	}

	if count > 0 {
		return errors.ConflictError("Cannot delete product referenced by existing inquiries")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NotFoundError("Product not found").WithError(err)
	}

	return nil
}
