package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vilamar/pousada-api/internal/application/dto"
	"github.com/vilamar/pousada-api/internal/application/pos"
)

// SaleHandler maneja las peticiones HTTP del punto de venta: consumos de
// productos y servicios cargados a una reserva.
type SaleHandler struct {
	productSaleUC *pos.ProductSaleUseCase
	serviceSaleUC *pos.ServiceSaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(productSaleUC *pos.ProductSaleUseCase, serviceSaleUC *pos.ServiceSaleUseCase) *SaleHandler {
	return &SaleHandler{productSaleUC: productSaleUC, serviceSaleUC: serviceSaleUC}
}

// CreateProductSale godoc
// @Summary      Registrar venta de producto
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.ProductSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product-sales [post]
func (h *SaleHandler) CreateProductSale(c *fiber.Ctx) error {
	var in dto.CreateProductSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.productSaleUC.Create(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProductSales godoc
// @Summary      Listar ventas de productos
// @Tags         sales
// @Produce      json
// @Param        reservationId  query  string  false  "Filtrar por reserva"
// @Success      200  {array}  dto.ProductSaleResponse
// @Router       /api/product-sales [get]
func (h *SaleHandler) ListProductSales(c *fiber.Ctx) error {
	if reservationID := c.Query("reservationId"); reservationID != "" {
		out, err := h.productSaleUC.ListByReservation(c.Context(), reservationID)
		if err != nil {
			return mapDomainError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.productSaleUC.List(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// DeleteProductSale godoc
// @Summary      Eliminar venta de producto (no repone stock)
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-sales/{id} [delete]
func (h *SaleHandler) DeleteProductSale(c *fiber.Ctx) error {
	if err := h.productSaleUC.Delete(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "venta eliminada"})
}

// CreateServiceSale godoc
// @Summary      Registrar venta de servicio
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.ServiceSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/service-sales [post]
func (h *SaleHandler) CreateServiceSale(c *fiber.Ctx) error {
	var in dto.CreateServiceSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.serviceSaleUC.Create(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListServiceSales godoc
// @Summary      Listar ventas de servicios
// @Tags         sales
// @Produce      json
// @Param        reservationId  query  string  false  "Filtrar por reserva"
// @Success      200  {array}  dto.ServiceSaleResponse
// @Router       /api/service-sales [get]
func (h *SaleHandler) ListServiceSales(c *fiber.Ctx) error {
	if reservationID := c.Query("reservationId"); reservationID != "" {
		out, err := h.serviceSaleUC.ListByReservation(c.Context(), reservationID)
		if err != nil {
			return mapDomainError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.serviceSaleUC.List(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
