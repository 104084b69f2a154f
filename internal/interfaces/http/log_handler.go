package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/osvaldosurbakti/fng-admin/internal/application/dto"
	"github.com/osvaldosurbakti/fng-admin/internal/application/usecase"
)

// LogHandler handles the activity trail (protected).
type LogHandler struct {
	uc *usecase.LogUseCase
}

// NewLogHandler builds the handler.
func NewLogHandler(uc *usecase.LogUseCase) *LogHandler {
	return &LogHandler{uc: uc}
}

// Create godoc
// @Summary      Append activity entry
// @Description  Lets the front end record UI-side actions next to the
//
//	server-side ones.
//
// @Tags         logs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLogRequest  true  "user_email, action; role defaults to user"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/logs [post]
func (h *LogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if err := h.uc.Record(c.Context(), in.UserEmail, in.Role, in.Action); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "log recorded"})
}

// List godoc
// @Summary      Latest activity entries, newest first
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "page size (default 200)"
// @Success      200  {array}  dto.LogResponse
// @Router       /api/logs [get]
func (h *LogHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")
	res, err := h.uc.ListRecent(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
