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

type CategoryHandler struct {
	categoryService service.CategoryService
	validator       *validator.Validate
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, validator: validator.New()}
}

// ListPublic serves the storefront category list: active categories with
// their active-product counts.
func (h *CategoryHandler) ListPublic() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.categoryService.ListPublic(r.Context())
		if err != nil {
			slog.Error("Failed to fetch categories", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)

	}
}

func (h *CategoryHandler) ListAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.categoryService.ListAdmin(r.Context())
		if err != nil {
			slog.Error("Failed to fetch categories", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)

	}
}

func (h *CategoryHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CreateCategoryRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		category, err := h.categoryService.CreateCategory(r.Context(), &req)
		if err != nil {
			slog.Error("Failed to create category", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Category created", slog.String("categoryId", category.ID.String()))
		response.Success(w, http.StatusCreated, category)

	}
}

func (h *CategoryHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req models.UpdateCategoryRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		category, err := h.categoryService.UpdateCategory(r.Context(), id, &req)
		if err != nil {
			slog.Error("Failed to update category", slog.String("categoryId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)

	}
}

// Delete refuses with a conflict when the category still owns products.
func (h *CategoryHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		if err := h.categoryService.DeleteCategory(r.Context(), id); err != nil {
			slog.Warn("Failed to delete category", slog.String("categoryId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Category deleted", slog.String("categoryId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"message": "Category deleted"})

	}
}
