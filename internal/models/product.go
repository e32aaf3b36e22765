package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID             uuid.UUID `json:"id"`
	CategoryID     uuid.UUID `json:"categoryId"`
	NameAr         string    `json:"nameAr"`
	NameEn         string    `json:"nameEn"`
	DescriptionAr  string    `json:"descriptionAr,omitempty"`
	DescriptionEn  string    `json:"descriptionEn,omitempty"`
	Images         []string  `json:"images"`
	Specifications []string  `json:"specifications"`
	IsActive       bool      `json:"isActive"`
	IsCashImport   bool      `json:"isCashImport"`
	HasCustomSpecs bool      `json:"hasCustomSpecs"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Category       *Category `json:"category,omitempty"`
}

type CreateProductRequest struct {
	NameAr         string    `json:"nameAr" validate:"required,min=2,max=200"`
	NameEn         string    `json:"nameEn" validate:"required,min=2,max=200"`
	DescriptionAr  string    `json:"descriptionAr,omitempty" validate:"omitempty,max=2000"`
	DescriptionEn  string    `json:"descriptionEn,omitempty" validate:"omitempty,max=2000"`
	CategoryID     uuid.UUID `json:"categoryId" validate:"required"`
	Images         []string  `json:"images,omitempty" validate:"omitempty,dive,max=500"`
	Specifications []string  `json:"specifications,omitempty" validate:"omitempty,dive,max=500"`
	IsActive       *bool     `json:"isActive,omitempty"`
	IsCashImport   *bool     `json:"isCashImport,omitempty"`
	HasCustomSpecs *bool     `json:"hasCustomSpecs,omitempty"`
}

type UpdateProductRequest struct {
	NameAr         *string    `json:"nameAr,omitempty" validate:"omitempty,min=2,max=200"`
	NameEn         *string    `json:"nameEn,omitempty" validate:"omitempty,min=2,max=200"`
	DescriptionAr  *string    `json:"descriptionAr,omitempty" validate:"omitempty,max=2000"`
	DescriptionEn  *string    `json:"descriptionEn,omitempty" validate:"omitempty,max=2000"`
	CategoryID     *uuid.UUID `json:"categoryId,omitempty"`
	Images         []string   `json:"images,omitempty" validate:"omitempty,dive,max=500"`
	Specifications []string   `json:"specifications,omitempty" validate:"omitempty,dive,max=500"`
	IsActive       *bool      `json:"isActive,omitempty"`
	IsCashImport   *bool      `json:"isCashImport,omitempty"`
	HasCustomSpecs *bool      `json:"hasCustomSpecs,omitempty"`
}

// ProductFilter narrows the public catalogue listing. Search is matched
// case-insensitively against the four bilingual name/description columns.
type ProductFilter struct {
	CategoryID *uuid.UUID
	Search     string
	Page       int
	Limit      int
}

type ProductPage struct {
	Products   []*Product `json:"products"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"totalPages"`
}
