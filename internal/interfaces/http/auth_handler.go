package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/osvaldosurbakti/fng-admin/internal/application/auth"
	"github.com/osvaldosurbakti/fng-admin/internal/application/dto"
	"github.com/osvaldosurbakti/fng-admin/internal/application/usecase"
)

// AuthHandler handles login requests (public).
type AuthHandler struct {
	uc    *auth.AuthUseCase
	logUC *usecase.LogUseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.AuthUseCase, logUC *usecase.LogUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, logUC: logUC}
}

// Login godoc
// @Summary      Back-office login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	res, err := h.uc.Login(c.Context(), in)
	if err != nil {
		// Wrong email and wrong password look the same to the caller.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid credentials"})
	}
	_ = h.logUC.Record(c.Context(), res.User.Email, res.User.Role, "login")
	return c.JSON(res)
}
