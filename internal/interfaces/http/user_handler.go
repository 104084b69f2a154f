package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/osvaldosurbakti/fng-admin/internal/application/dto"
	"github.com/osvaldosurbakti/fng-admin/internal/application/usecase"
)

// UserHandler handles account management (protected, superadmin only).
type UserHandler struct {
	uc    *usecase.UserUseCase
	logUC *usecase.LogUseCase
}

// NewUserHandler builds the handler.
func NewUserHandler(uc *usecase.UserUseCase, logUC *usecase.LogUseCase) *UserHandler {
	return &UserHandler{uc: uc, logUC: logUC}
}

// Create godoc
// @Summary      Create account (admin or user; superadmin cannot be created)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "name, email, password, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	res, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	_ = h.logUC.Record(c.Context(), GetEmail(c), GetRole(c), fmt.Sprintf("create user %s (%s)", res.Email, res.Role))
	return c.Status(fiber.StatusCreated).JSON(res)
}

// List godoc
// @Summary      List accounts
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "page size (default 20)"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	page.DefaultPage()
	res, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// GetByID godoc
// @Summary      Get account
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "user ID"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	res, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Update godoc
// @Summary      Update account (superadmin role cannot be granted or revoked)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "user ID"
// @Param        body  body  dto.UpdateUserRequest  true  "name, email, role; password optional"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	res, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	_ = h.logUC.Record(c.Context(), GetEmail(c), GetRole(c), fmt.Sprintf("update user %s", res.Email))
	return c.JSON(res)
}

// Delete godoc
// @Summary      Delete account (superadmins and self are protected)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "user ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), GetUserID(c), id); err != nil {
		return respondError(c, err)
	}
	_ = h.logUC.Record(c.Context(), GetEmail(c), GetRole(c), fmt.Sprintf("delete user %s", id))
	return c.JSON(fiber.Map{"message": "user deleted"})
}
