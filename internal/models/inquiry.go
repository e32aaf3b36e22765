package models

import (
	"time"

	"github.com/google/uuid"
)

type InquiryStatus string

const (
	InquiryStatusPending    InquiryStatus = "PENDING"
	InquiryStatusInProgress InquiryStatus = "IN_PROGRESS"
	InquiryStatusCompleted  InquiryStatus = "COMPLETED"
	InquiryStatusCancelled  InquiryStatus = "CANCELLED"
)

// Valid reports whether s is one of the four known statuses. Transitions are
// deliberately unguarded: any status may be set from any other.
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryStatusPending, InquiryStatusInProgress, InquiryStatusCompleted, InquiryStatusCancelled:
		return true
	}

	return false
}

type Inquiry struct {
	ID            uuid.UUID     `json:"id"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail,omitempty"`
	CustomerPhone string        `json:"customerPhone,omitempty"`
	CompanyName   string        `json:"companyName,omitempty"`
	Status        InquiryStatus `json:"status"`
	TotalItems    int           `json:"totalItems"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	Items         []InquiryItem `json:"items"`
}

type InquiryItem struct {
	ID             uuid.UUID `json:"id"`
	InquiryID      uuid.UUID `json:"inquiryId"`
	ProductID      uuid.UUID `json:"productId"`
	Quantity       int       `json:"quantity"`
	Specifications string    `json:"specifications,omitempty"`
	Brand          string    `json:"brand,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	Product        *Product  `json:"product,omitempty"`
}

type CreateInquiryItemRequest struct {
	ProductID      uuid.UUID `json:"productId" validate:"required"`
	Quantity       int       `json:"quantity" validate:"required,gte=1"`
	Specifications string    `json:"specifications,omitempty" validate:"omitempty,max=1000"`
	Brand          string    `json:"brand,omitempty" validate:"omitempty,max=200"`
	Notes          string    `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type CreateInquiryRequest struct {
	CustomerName  string                     `json:"customerName" validate:"required,min=2,max=200"`
	CustomerEmail string                     `json:"customerEmail,omitempty" validate:"omitempty,email"`
	CustomerPhone string                     `json:"customerPhone,omitempty" validate:"omitempty,max=30"`
	CompanyName   string                     `json:"companyName,omitempty" validate:"omitempty,max=200"`
	Items         []CreateInquiryItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateInquiryStatusRequest struct {
	Status InquiryStatus `json:"status" validate:"required"`
}
