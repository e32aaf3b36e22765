package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `json:"id"`
	NameAr      string    `json:"nameAr"`
	NameEn      string    `json:"nameEn"`
	Emoji       string    `json:"emoji,omitempty"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// ProductCount carries the joined product count on list endpoints:
	// active products only on the public list, all products on the admin list.
	ProductCount int `json:"productCount"`
}

type CreateCategoryRequest struct {
	NameAr      string `json:"nameAr" validate:"required,min=2,max=200"`
	NameEn      string `json:"nameEn" validate:"required,min=2,max=200"`
	Emoji       string `json:"emoji,omitempty" validate:"omitempty,max=16"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

type UpdateCategoryRequest struct {
	NameAr      *string `json:"nameAr,omitempty" validate:"omitempty,min=2,max=200"`
	NameEn      *string `json:"nameEn,omitempty" validate:"omitempty,min=2,max=200"`
	Emoji       *string `json:"emoji,omitempty" validate:"omitempty,max=16"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	IsActive    *bool   `json:"isActive,omitempty"`
}
