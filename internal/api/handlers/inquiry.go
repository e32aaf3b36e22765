package handlers

import (
	"log/slog"
	"net/http"

	models "github.com/mahawer/mahawer-api/internal/models"
	service "github.com/mahawer/mahawer-api/internal/services"
	"github.com/mahawer/mahawer-api/internal/utils"
	"github.com/mahawer/mahawer-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type InquiryHandler struct {
	inquiryService service.InquiryService
	validator      *validator.Validate
}

func NewInquiryHandler(inquiryService service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService, validator: validator.New()}
}

// Create accepts a public quotation request with one or more line items.
func (h *InquiryHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CreateInquiryRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		inquiry, err := h.inquiryService.CreateInquiry(r.Context(), &req, utils.ClientIP(r))
		if err != nil {
			slog.Error("Failed to create inquiry", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Inquiry created", slog.String("inquiryId", inquiry.ID.String()), slog.Int("totalItems", inquiry.TotalItems))
		response.Success(w, http.StatusCreated, inquiry)

	}
}

func (h *InquiryHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		inquiries, err := h.inquiryService.ListInquiries(r.Context())
		if err != nil {
			slog.Error("Failed to fetch inquiries", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, inquiries)

	}
}

func (h *InquiryHandler) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req models.UpdateInquiryStatusRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		inquiry, err := h.inquiryService.UpdateStatus(r.Context(), id, &req)
		if err != nil {
			slog.Warn("Failed to update inquiry status", slog.String("inquiryId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Inquiry status updated", slog.String("inquiryId", id.String()), slog.String("status", string(inquiry.Status)))
		response.Success(w, http.StatusOK, inquiry)

	}
}
