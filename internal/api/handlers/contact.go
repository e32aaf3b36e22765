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

type ContactHandler struct {
	contactService service.ContactService
	validator      *validator.Validate
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService, validator: validator.New()}
}

// Create accepts a public contact message and echoes back a trimmed receipt.
func (h *ContactHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CreateContactRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		receipt, err := h.contactService.CreateContact(r.Context(), &req, utils.ClientIP(r))
		if err != nil {
			slog.Error("Failed to create contact message", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Contact message created", slog.String("contactId", receipt.ID.String()))
		response.Success(w, http.StatusCreated, map[string]any{"contact": receipt})

	}
}

func (h *ContactHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		contacts, err := h.contactService.ListContacts(r.Context())
		if err != nil {
			slog.Error("Failed to fetch contact messages", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, contacts)

	}
}

func (h *ContactHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req models.UpdateContactRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		contact, err := h.contactService.UpdateContact(r.Context(), id, &req)
		if err != nil {
			slog.Warn("Failed to update contact message", slog.String("contactId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, contact)

	}
}
