package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/osvaldosurbakti/fng-admin/internal/application/dto"
	"github.com/osvaldosurbakti/fng-admin/internal/application/usecase"
)

// ProductHandler handles menu item CRUD (protected, superadmin/admin).
type ProductHandler struct {
	uc    *usecase.ProductUseCase
	logUC *usecase.LogUseCase
}

// NewProductHandler builds the handler.
func NewProductHandler(uc *usecase.ProductUseCase, logUC *usecase.LogUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, logUC: logUC}
}

// Create godoc
// @Summary      Create menu item
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "name, price, category; initial_stock goes through the ledger"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	res, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	_ = h.logUC.Record(c.Context(), GetEmail(c), GetRole(c), fmt.Sprintf("create product %q", res.Name))
	return c.Status(fiber.StatusCreated).JSON(res)
}

// List godoc
// @Summary      List menu items (alerting products first)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "page size (default 20)"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
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
// @Summary      Get menu item
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "product ID"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	res, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Update godoc
// @Summary      Update menu item (stock counters excluded)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "product ID"
// @Param        body  body  dto.UpdateProductRequest  true  "fields to change"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	res, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	_ = h.logUC.Record(c.Context(), GetEmail(c), GetRole(c), fmt.Sprintf("update product %q", res.Name))
	return c.JSON(res)
}

// Delete godoc
// @Summary      Delete menu item (ledger rows remain)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "product ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	_ = h.logUC.Record(c.Context(), GetEmail(c), GetRole(c), fmt.Sprintf("delete product %s", id))
	return c.JSON(fiber.Map{"message": "product deleted"})
}
