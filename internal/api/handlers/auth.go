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

type AuthHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewAuthHandler(userService service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService, validator: validator.New()}
}

func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.LoginRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			slog.Error("Login failed", slog.String("email", req.Email), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if !resp.Success {
			status := http.StatusUnauthorized
			if resp.RetryAfter > 0 {
				status = http.StatusTooManyRequests
			}

			response.WriteJson(w, status, resp)
			return
		}

		slog.Info("Admin logged in", slog.String("email", req.Email))
		response.WriteJson(w, http.StatusOK, resp)

	}
}
