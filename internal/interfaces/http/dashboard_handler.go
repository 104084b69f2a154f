package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/osvaldosurbakti/fng-admin/internal/application/usecase"
)

// DashboardHandler handles the stock dashboard (protected).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// StockSummary godoc
// @Summary      Stock dashboard counters
// @Description  Item counts, alert counts and inventory valuation over
//
//	tracked products.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockSummaryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stock-summary [get]
func (h *DashboardHandler) StockSummary(c *fiber.Ctx) error {
	res, err := h.uc.StockSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
