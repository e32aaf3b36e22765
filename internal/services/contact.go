package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mahawer/mahawer-api/internal/errors"
	"github.com/mahawer/mahawer-api/internal/models"
	repository "github.com/mahawer/mahawer-api/internal/repositories"
	"github.com/mahawer/mahawer-api/pkg/sendgrid"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type ContactService interface {
	CreateContact(ctx context.Context, req *models.CreateContactRequest, clientIP string) (*models.ContactReceipt, error)
	ListContacts(ctx context.Context) ([]*models.Contact, error)
	UpdateContact(ctx context.Context, id uuid.UUID, req *models.UpdateContactRequest) (*models.Contact, error)
}

type contactService struct {
	repo       repository.ContactRepository
	rateLimit  repository.RateLimitRepository
	email      sendgrid.EmailService
	adminEmail string
	sanitizer  *bluemonday.Policy
}

func NewContactService(repo repository.ContactRepository, rateLimit repository.RateLimitRepository, email sendgrid.EmailService, adminEmail string) ContactService {
	return &contactService{
		repo:       repo,
		rateLimit:  rateLimit,
		email:      email,
		adminEmail: adminEmail,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

// CreateContact stores a public contact message and returns a trimmed receipt
// rather than the full record.
func (s *contactService) CreateContact(ctx context.Context, req *models.CreateContactRequest, clientIP string) (*models.ContactReceipt, error) {

	allowed, retryAfter, err := s.rateLimit.CheckSubmissionRateLimit(ctx, clientIP)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return nil, errors.TooManyRequestsError("Too many submissions. Please try again later.").
			WithDetail(fmt.Sprintf("retry after %d seconds", retryAfter))
	}

	contact := &models.Contact{
		Name:    s.sanitizer.Sanitize(req.Name),
		Email:   req.Email,
		Phone:   s.sanitizer.Sanitize(req.Phone),
		Company: s.sanitizer.Sanitize(req.Company),
		Subject: s.sanitizer.Sanitize(req.Subject),
		Message: s.sanitizer.Sanitize(req.Message),
		Status:  models.ContactStatusNew,
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, errors.DatabaseError("Failed to create contact message").WithError(err)
	}

	s.notifyAdmin(ctx, contact)

	return &models.ContactReceipt{
		ID:        contact.ID,
		Name:      contact.Name,
		Subject:   contact.Subject,
		CreatedAt: contact.CreatedAt,
	}, nil
}

func (s *contactService) ListContacts(ctx context.Context) ([]*models.Contact, error) {

	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch contact messages").WithError(err)
	}

	return contacts, nil
}

// UpdateContact changes status and/or admin notes. Status transitions are
// unguarded; the value just has to be one of the four known statuses.
func (s *contactService) UpdateContact(ctx context.Context, id uuid.UUID, req *models.UpdateContactRequest) (*models.Contact, error) {

	if req.Status != nil && !req.Status.Valid() {
		return nil, errors.ValidationError("Invalid contact status").
			WithDetail("status must be one of NEW, READ, REPLIED, CLOSED")
	}

	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Contact message not found").WithError(err)
	}

	if req.Status != nil {
		contact.Status = *req.Status
	}
	if req.Notes != nil {
		contact.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, errors.DatabaseError("Failed to update contact message").WithError(err)
	}

	return contact, nil
}

func (s *contactService) notifyAdmin(ctx context.Context, contact *models.Contact) {

	if s.email == nil || s.adminEmail == "" {
		return
	}

	req := &models.EmailNotificationRequest{
		To:      s.adminEmail,
		Subject: fmt.Sprintf("New contact message: %s", contact.Subject),
		Content: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nCompany: %s\n\n%s",
			contact.Name, contact.Email, contact.Phone, contact.Company, contact.Message),
	}

	if err := s.email.Send(ctx, req); err != nil {
		slog.Warn("Failed to send contact notification email", slog.Any("error", err), slog.String("contactId", contact.ID.String()))
	}
}
