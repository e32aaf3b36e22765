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

type SliderHandler struct {
	sliderService service.SliderService
	validator     *validator.Validate
}

func NewSliderHandler(sliderService service.SliderService) *SliderHandler {
	return &SliderHandler{sliderService: sliderService, validator: validator.New()}
}

// ListPublic serves the storefront hero carousel: active sliders in display
// order.
func (h *SliderHandler) ListPublic() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sliders, err := h.sliderService.ListPublic(r.Context())
		if err != nil {
			slog.Error("Failed to fetch sliders", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, sliders)

	}
}

func (h *SliderHandler) ListAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sliders, err := h.sliderService.ListAdmin(r.Context())
		if err != nil {
			slog.Error("Failed to fetch sliders", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, sliders)

	}
}

func (h *SliderHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		slider, err := h.sliderService.GetSliderByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, slider)

	}
}

func (h *SliderHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CreateSliderRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		slider, err := h.sliderService.CreateSlider(r.Context(), &req)
		if err != nil {
			slog.Error("Failed to create slider", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Slider created", slog.String("sliderId", slider.ID.String()))
		response.Success(w, http.StatusCreated, slider)

	}
}

// Update replaces the whole slider; PUT semantics, every field in the body.
func (h *SliderHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req models.UpdateSliderRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		slider, err := h.sliderService.UpdateSlider(r.Context(), id, &req)
		if err != nil {
			slog.Warn("Failed to update slider", slog.String("sliderId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, slider)

	}
}

func (h *SliderHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		if err := h.sliderService.DeleteSlider(r.Context(), id); err != nil {
			slog.Warn("Failed to delete slider", slog.String("sliderId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Slider deleted", slog.String("sliderId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"message": "Slider deleted"})

	}
}
