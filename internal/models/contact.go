package models

import (
	"time"

	"github.com/google/uuid"
)

type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "NEW"
	ContactStatusRead    ContactStatus = "READ"
	ContactStatusReplied ContactStatus = "REPLIED"
	ContactStatusClosed  ContactStatus = "CLOSED"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusClosed:
		return true
	}

	return false
}

type Contact struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email,omitempty"`
	Phone     string        `json:"phone,omitempty"`
	Company   string        `json:"company,omitempty"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Company string `json:"company,omitempty" validate:"omitempty,max=200"`
	Subject string `json:"subject" validate:"required,min=2,max=300"`
	Message string `json:"message" validate:"required,min=2,max=5000"`
}

type UpdateContactRequest struct {
	Status *ContactStatus `json:"status,omitempty"`
	Notes  *string        `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// ContactReceipt is the trimmed echo returned to the public submitter.
type ContactReceipt struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"createdAt"`
}
