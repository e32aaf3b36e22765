package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mahawer/mahawer-api/internal/errors"
	"github.com/mahawer/mahawer-api/internal/models"
	repository "github.com/mahawer/mahawer-api/internal/repositories"
	"github.com/mahawer/mahawer-api/pkg/sendgrid"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type InquiryService interface {
	CreateInquiry(ctx context.Context, req *models.CreateInquiryRequest, clientIP string) (*models.Inquiry, error)
	ListInquiries(ctx context.Context) ([]*models.Inquiry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateInquiryStatusRequest) (*models.Inquiry, error)
}

type inquiryService struct {
	repo       repository.InquiryRepository
	rateLimit  repository.RateLimitRepository
	email      sendgrid.EmailService
	adminEmail string
	sanitizer  *bluemonday.Policy
}

func NewInquiryService(repo repository.InquiryRepository, rateLimit repository.RateLimitRepository, email sendgrid.EmailService, adminEmail string) InquiryService {
	return &inquiryService{
		repo:       repo,
		rateLimit:  rateLimit,
		email:      email,
		adminEmail: adminEmail,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

// CreateInquiry persists the quotation request and its line items in one
// transaction and reads it back with products joined. Product IDs are not
// pre-checked; a bad reference fails the transaction via the foreign key.
func (s *inquiryService) CreateInquiry(ctx context.Context, req *models.CreateInquiryRequest, clientIP string) (*models.Inquiry, error) {

	allowed, retryAfter, err := s.rateLimit.CheckSubmissionRateLimit(ctx, clientIP)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return nil, errors.TooManyRequestsError("Too many submissions. Please try again later.").
			WithDetail(fmt.Sprintf("retry after %d seconds", retryAfter))
	}

	inquiry := &models.Inquiry{
		CustomerName:  s.sanitizer.Sanitize(req.CustomerName),
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: s.sanitizer.Sanitize(req.CustomerPhone),
		CompanyName:   s.sanitizer.Sanitize(req.CompanyName),
		Status:        models.InquiryStatusPending,
		TotalItems:    len(req.Items),
	}

	for _, item := range req.Items {
		inquiry.Items = append(inquiry.Items, models.InquiryItem{
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			Specifications: s.sanitizer.Sanitize(item.Specifications),
			Brand:          s.sanitizer.Sanitize(item.Brand),
			Notes:          s.sanitizer.Sanitize(item.Notes),
		})
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, errors.DatabaseError("Failed to create inquiry").WithError(err)
	}

	created, err := s.repo.GetByID(ctx, inquiry.ID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load created inquiry").WithError(err)
	}

	s.notifyAdmin(ctx, created)

	return created, nil
}

func (s *inquiryService) ListInquiries(ctx context.Context) ([]*models.Inquiry, error) {

	inquiries, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch inquiries").WithError(err)
	}

	return inquiries, nil
}

// UpdateStatus sets the inquiry status. Any of the four values is accepted
// from any current state.
func (s *inquiryService) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateInquiryStatusRequest) (*models.Inquiry, error) {

	if !req.Status.Valid() {
		return nil, errors.ValidationError("Invalid inquiry status").
			WithDetail("status must be one of PENDING, IN_PROGRESS, COMPLETED, CANCELLED")
	}

	if err := s.repo.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, errors.NotFoundError("Inquiry not found").WithError(err)
	}

	inquiry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load inquiry").WithError(err)
	}

	return inquiry, nil
}

// notifyAdmin sends a best-effort notification mail. Failures are logged and
// never surfaced to the submitter.
func (s *inquiryService) notifyAdmin(ctx context.Context, inquiry *models.Inquiry) {

	if s.email == nil || s.adminEmail == "" {
		return
	}

	var lines []string
	for _, item := range inquiry.Items {
		name := item.ProductID.String()
		if item.Product != nil {
			name = item.Product.NameAr
		}
		lines = append(lines, fmt.Sprintf("- %s x%d", name, item.Quantity))
	}

	req := &models.EmailNotificationRequest{
		To:      s.adminEmail,
		Subject: fmt.Sprintf("New inquiry from %s (%d items)", inquiry.CustomerName, inquiry.TotalItems),
		Content: fmt.Sprintf("Customer: %s\nEmail: %s\nPhone: %s\nCompany: %s\n\nItems:\n%s",
			inquiry.CustomerName, inquiry.CustomerEmail, inquiry.CustomerPhone, inquiry.CompanyName, strings.Join(lines, "\n")),
	}

	if err := s.email.Send(ctx, req); err != nil {
		slog.Warn("Failed to send inquiry notification email", slog.Any("error", err), slog.String("inquiryId", inquiry.ID.String()))
	}
}
