package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vilamar/pousada-api/internal/application/dto"
	"github.com/vilamar/pousada-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP de movimientos de estoque.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar movimiento de estoque
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.InventoryMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory-movements [post]
func (h *InventoryHandler) Register(c *fiber.Ctx) error {
	var in dto.CreateInventoryMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos de estoque
// @Tags         inventory
// @Produce      json
// @Param        productId  query  string  false  "Filtrar por producto"
// @Success      200  {array}  dto.InventoryMovementResponse
// @Router       /api/inventory-movements [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	if productID := c.Query("productId"); productID != "" {
		out, err := h.uc.ListByProduct(c.Context(), productID)
		if err != nil {
			return mapDomainError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
