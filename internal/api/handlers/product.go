package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	models "github.com/mahawer/mahawer-api/internal/models"
	service "github.com/mahawer/mahawer-api/internal/services"
	"github.com/mahawer/mahawer-api/internal/utils"
	"github.com/mahawer/mahawer-api/internal/utils/response"
	"github.com/mahawer/mahawer-api/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

// ListPublic serves the catalogue, e.g.
// GET /api/products?categoryId=...&search=...&page=1&limit=20.
// The response is always the paginated envelope.
func (h *ProductHandler) ListPublic() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		filter := &models.ProductFilter{
			Search: r.URL.Query().Get("search"),
		}

		if raw := r.URL.Query().Get("categoryId"); raw != "" {
			categoryID, err := uuid.Parse(raw)
			if err != nil {
				response.Error(w, errors.BadRequestError("Invalid categoryId").WithError(err))
				return
			}

			filter.CategoryID = &categoryID
		}

		filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
		filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

		page, err := h.productService.ListPublic(r.Context(), filter)
		if err != nil {
			slog.Error("Failed to fetch products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, page)

	}
}

func (h *ProductHandler) GetPublic() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id, true)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)

	}
}

func (h *ProductHandler) ListAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.productService.ListAdmin(r.Context())
		if err != nil {
			slog.Error("Failed to fetch products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)

	}
}

func (h *ProductHandler) GetAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id, false)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)

	}
}

func (h *ProductHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CreateProductRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			slog.Error("Failed to create product", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Product created", slog.String("productId", product.ID.String()))
		response.Success(w, http.StatusCreated, product)

	}
}

func (h *ProductHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req models.UpdateProductRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			slog.Error("Failed to update product", slog.String("productId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)

	}
}

// Delete refuses with a conflict when inquiry items still reference the
// product.
func (h *ProductHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
			slog.Warn("Failed to delete product", slog.String("productId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Product deleted", slog.String("productId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"message": "Product deleted"})

	}
}
