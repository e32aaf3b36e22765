package models

import (
	"time"

	"github.com/google/uuid"
)

// HeroSlider is an admin-managed homepage banner. Order is an explicit sort
// key, ascending; ties keep insertion order.
type HeroSlider struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image"`
	Category    string    `json:"category,omitempty"`
	IsActive    bool      `json:"isActive"`
	Order       int       `json:"order"`
	ButtonText  string    `json:"buttonText,omitempty"`
	ButtonLink  string    `json:"buttonLink,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateSliderRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=300"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Image       string `json:"image" validate:"required,max=500"`
	Category    string `json:"category,omitempty" validate:"omitempty,max=200"`
	IsActive    *bool  `json:"isActive,omitempty"`
	Order       *int   `json:"order,omitempty" validate:"omitempty,gte=0"`
	ButtonText  string `json:"buttonText,omitempty" validate:"omitempty,max=100"`
	ButtonLink  string `json:"buttonLink,omitempty" validate:"omitempty,max=500"`
}

type UpdateSliderRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=300"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Image       string `json:"image" validate:"required,max=500"`
	Category    string `json:"category,omitempty" validate:"omitempty,max=200"`
	IsActive    *bool  `json:"isActive,omitempty"`
	Order       *int   `json:"order,omitempty" validate:"omitempty,gte=0"`
	ButtonText  string `json:"buttonText,omitempty" validate:"omitempty,max=100"`
	ButtonLink  string `json:"buttonLink,omitempty" validate:"omitempty,max=500"`
}
