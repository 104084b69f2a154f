package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/osvaldosurbakti/fng-admin/internal/application/dto"
	appstock "github.com/osvaldosurbakti/fng-admin/internal/application/stock"
	"github.com/osvaldosurbakti/fng-admin/internal/application/usecase"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/repository"
)

// StockHandler handles ledger writes and history reads (protected,
// superadmin/admin).
type StockHandler struct {
	adjuster *appstock.AdjustStockUseCase
	bulk     *appstock.BulkAdjustUseCase
	history  *appstock.HistoryUseCase
	logUC    *usecase.LogUseCase
}

// NewStockHandler builds the handler.
func NewStockHandler(adjuster *appstock.AdjustStockUseCase, bulk *appstock.BulkAdjustUseCase, history *appstock.HistoryUseCase, logUC *usecase.LogUseCase) *StockHandler {
	return &StockHandler{adjuster: adjuster, bulk: bulk, history: history, logUC: logUC}
}

// AdjustStock godoc
// @Summary      Adjust one product's stock
// @Description  Sets, adds or subtracts stock. The resulting level may not go
//
//	below zero; such requests are rejected.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "product ID"
// @Param        body  body  dto.StockAdjustmentRequest  true  "mode (set|add|subtract), quantity, notes"
// @Success      200   {object}  dto.StockAdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [put]
func (h *StockHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.StockAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	res, err := h.adjuster.AdjustByMode(c.Context(), c.Params("id"), in.Mode, in.Quantity, GetUserID(c), in.Notes)
	if err != nil {
		return respondError(c, err)
	}
	_ = h.logUC.Record(c.Context(), GetEmail(c), GetRole(c),
		fmt.Sprintf("stock %s %d on %q (%d -> %d)", in.Mode, in.Quantity, res.Product.Name, res.Movement.PreviousStock, res.Movement.NewStock))
	return c.JSON(dto.StockAdjustmentResponse{
		Message: "stock updated",
		Product: dto.AdjustedProduct{
			ID:            res.Product.ID,
			Name:          res.Product.Name,
			OldStock:      res.Movement.PreviousStock,
			NewStock:      res.Movement.NewStock,
			Difference:    res.Delta,
			LowStockAlert: res.Product.LowStockAlert,
		},
		Movement: toMovementResponse(res.Movement),
	})
}

// BulkStockUpdate godoc
// @Summary      Adjust many products in one call
// @Description  Applies one formula per product, sequentially; a failed item
//
//	is reported but does not stop the batch. Bulk targets clamp at
//	zero instead of rejecting.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkStockUpdateRequest  true  "product_ids, mode (set-all|add-all|restock-all), quantity, notes"
// @Success      200   {object}  dto.BulkStockUpdateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/bulk-stock-update [put]
func (h *StockHandler) BulkStockUpdate(c *fiber.Ctx) error {
	var in dto.BulkStockUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	res, err := h.bulk.BulkAdjust(c.Context(), appstock.BulkInput{
		ProductIDs: in.ProductIDs,
		Mode:       in.Mode,
		Quantity:   in.Quantity,
		Actor:      GetUserID(c),
		Notes:      in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.BulkItemResponse, 0, len(res.Items))
	for _, item := range res.Items {
		out := dto.BulkItemResponse{ProductID: item.ProductID}
		if item.Err != nil {
			out.Error = item.Err.Error()
		} else {
			out.NewStock = item.NewStock
			out.Delta = item.Delta
		}
		items = append(items, out)
	}
	_ = h.logUC.Record(c.Context(), GetEmail(c), GetRole(c),
		fmt.Sprintf("bulk stock %s %d (%d/%d products)", in.Mode, in.Quantity, res.UpdatedCount, res.TotalCount))
	return c.JSON(dto.BulkStockUpdateResponse{
		Message:      fmt.Sprintf("updated %d of %d products", res.UpdatedCount, res.TotalCount),
		UpdatedCount: res.UpdatedCount,
		TotalCount:   res.TotalCount,
		Items:        items,
	})
}

// StockHistory godoc
// @Summary      Per-product movement history, newest first
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "product ID"
// @Param        limit  query  int     false  "page size (default 50)"
// @Success      200  {array}   dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock-history [get]
func (h *StockHandler) StockHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")
	movements, err := h.history.GetStockHistory(c.Context(), c.Params("id"), limit)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, toMovementResponse(m))
	}
	return c.JSON(items)
}

// RecentMovements godoc
// @Summary      Latest movements across all products
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "page size (default 20)"
// @Success      200  {array}  dto.MovementWithProductResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) RecentMovements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")
	movements, err := h.history.GetRecentMovements(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.MovementWithProductResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, toMovementWithProductResponse(m))
	}
	return c.JSON(items)
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		Reference:     m.Reference,
		Notes:         m.Notes,
		AdjustedBy:    m.AdjustedBy,
		CreatedAt:     m.CreatedAt,
	}
}

func toMovementWithProductResponse(m *repository.MovementWithProduct) dto.MovementWithProductResponse {
	return dto.MovementWithProductResponse{
		MovementResponse: toMovementResponse(&m.StockMovement),
		Product: dto.MovementProductRef{
			Name: m.ProductName,
			SKU:  m.ProductSKU,
			Unit: m.ProductUnit,
		},
	}
}
