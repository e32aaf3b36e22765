package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mahawer/mahawer-api/internal/api/handlers"
	"github.com/mahawer/mahawer-api/internal/errors"
	"github.com/mahawer/mahawer-api/internal/models"
	"github.com/mahawer/mahawer-api/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInquiryCreate(t *testing.T) {
	productID := uuid.New()

	validBody := map[string]any{
		"customerName": "أحمد الغامدي",
		"customerPhone": "+966501234567",
		"items": []map[string]any{
			{"productId": productID.String(), "quantity": 50, "brand": "سيكا"},
		},
	}

	t.Run("Success - Client IP Forwarded", func(t *testing.T) {
		mockService := new(mocks.InquiryService)
		handler := handlers.NewInquiryHandler(mockService)

		created := &models.Inquiry{
			ID:           uuid.New(),
			CustomerName: "أحمد الغامدي",
			Status:       models.InquiryStatusPending,
			TotalItems:   1,
			Items:        []models.InquiryItem{{ProductID: productID, Quantity: 50}},
		}

		mockService.On("CreateInquiry", mock.Anything, mock.MatchedBy(func(req *models.CreateInquiryRequest) bool {
			return req.CustomerName == "أحمد الغامدي" && len(req.Items) == 1
		}), "203.0.113.9").Return(created, nil).Once()

		req := newJSONRequest(t, http.MethodPost, "/api/inquiries", validBody)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		rr := httptest.NewRecorder()

		handler.Create().ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var got models.Inquiry
		decodeData(t, rr, &got)
		assert.Equal(t, models.InquiryStatusPending, got.Status)
		assert.Equal(t, 1, got.TotalItems)

		mockService.AssertExpectations(t)
	})

	t.Run("Fail - No Items", func(t *testing.T) {
		mockService := new(mocks.InquiryService)
		handler := handlers.NewInquiryHandler(mockService)

		body := map[string]any{"customerName": "أحمد", "items": []map[string]any{}}

		rr := httptest.NewRecorder()
		handler.Create().ServeHTTP(rr, newJSONRequest(t, http.MethodPost, "/api/inquiries", body))

		require.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "CreateInquiry")
	})

	t.Run("Fail - Rate Limited", func(t *testing.T) {
		mockService := new(mocks.InquiryService)
		handler := handlers.NewInquiryHandler(mockService)

		mockService.On("CreateInquiry", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.TooManyRequestsError("Too many submissions, please try again later")).Once()

		rr := httptest.NewRecorder()
		handler.Create().ServeHTTP(rr, newJSONRequest(t, http.MethodPost, "/api/inquiries", validBody))

		require.Equal(t, http.StatusTooManyRequests, rr.Code)

		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, errors.ErrCodeTooManyRequests, envelope.Error.Code)

		mockService.AssertExpectations(t)
	})
}

func TestInquiryUpdateStatus(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := new(mocks.InquiryService)
		handler := handlers.NewInquiryHandler(mockService)

		updated := &models.Inquiry{ID: id, Status: models.InquiryStatusCompleted}

		mockService.On("UpdateStatus", mock.Anything, id, mock.MatchedBy(func(req *models.UpdateInquiryStatusRequest) bool {
			return req.Status == models.InquiryStatusCompleted
		})).Return(updated, nil).Once()

		req := newJSONRequest(t, http.MethodPatch, "/api/admin/inquiries/"+id.String(), map[string]any{"status": "COMPLETED"})
		req.SetPathValue("id", id.String())
		rr := httptest.NewRecorder()

		handler.UpdateStatus().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var got models.Inquiry
		decodeData(t, rr, &got)
		assert.Equal(t, models.InquiryStatusCompleted, got.Status)

		mockService.AssertExpectations(t)
	})

	t.Run("Fail - Unknown Status", func(t *testing.T) {
		mockService := new(mocks.InquiryService)
		handler := handlers.NewInquiryHandler(mockService)

		mockService.On("UpdateStatus", mock.Anything, id, mock.Anything).
			Return(nil, errors.ValidationError("Invalid status").
				WithDetail("status must be one of PENDING, IN_PROGRESS, COMPLETED, CANCELLED")).Once()

		req := newJSONRequest(t, http.MethodPatch, "/api/admin/inquiries/"+id.String(), map[string]any{"status": "SHIPPED"})
		req.SetPathValue("id", id.String())
		rr := httptest.NewRecorder()

		handler.UpdateStatus().ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, errors.ErrCodeValidation, envelope.Error.Code)

		mockService.AssertExpectations(t)
	})
}

func TestInquiryList(t *testing.T) {
	mockService := new(mocks.InquiryService)
	handler := handlers.NewInquiryHandler(mockService)

	inquiries := []*models.Inquiry{
		{ID: uuid.New(), CustomerName: "أحمد", Status: models.InquiryStatusPending, TotalItems: 2},
		{ID: uuid.New(), CustomerName: "سارة", Status: models.InquiryStatusCompleted, TotalItems: 1},
	}

	mockService.On("ListInquiries", mock.Anything).Return(inquiries, nil).Once()

	rr := httptest.NewRecorder()
	handler.List().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/admin/inquiries", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var got []*models.Inquiry
	decodeData(t, rr, &got)
	require.Len(t, got, 2)

	mockService.AssertExpectations(t)
}
