package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/vilamar/pousada-api/internal/application/dto"
	"github.com/vilamar/pousada-api/internal/application/reservation"
)

// ReservationHandler maneja las peticiones HTTP del ciclo de reservas:
// check-in, vista previa de cargos, checkout, cancelación y comprobante.
type ReservationHandler struct {
	uc        *reservation.UseCase
	receiptUC *reservation.ReceiptUseCase
}

// NewReservationHandler construye el handler.
func NewReservationHandler(uc *reservation.UseCase, receiptUC *reservation.ReceiptUseCase) *ReservationHandler {
	return &ReservationHandler{uc: uc, receiptUC: receiptUC}
}

// Create godoc
// @Summary      Crear reserva (check-in)
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReservationRequest  true  "Datos de la reserva"
// @Success      201   {object}  dto.ReservationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "el cuarto ya está reservado en esas fechas"
// @Router       /api/reservations [post]
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReservationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener reserva por ID
// @Tags         reservations
// @Produce      json
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.ReservationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reservations/{id} [get]
func (h *ReservationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reserva no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar reservas
// @Tags         reservations
// @Produce      json
// @Success      200  {array}  dto.ReservationResponse
// @Router       /api/reservations [get]
func (h *ReservationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// ListActive godoc
// @Summary      Listar reservas activas
// @Tags         reservations
// @Produce      json
// @Success      200  {array}  dto.ReservationResponse
// @Router       /api/reservations/active [get]
func (h *ReservationHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar reserva
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la reserva"
// @Param        body  body  dto.UpdateReservationRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ReservationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reservations/{id} [put]
func (h *ReservationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReservationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Charges godoc
// @Summary      Vista previa de cargos de la estadía
// @Tags         reservations
// @Produce      json
// @Param        id        path   string  true   "ID de la reserva"
// @Param        discount  query  string  false  "Descuento en porcentaje (0-100)"
// @Success      200  {object}  dto.StayChargesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reservations/{id}/charges [get]
func (h *ReservationHandler) Charges(c *fiber.Ctx) error {
	discount := decimal.Zero
	if raw := c.Query("discount"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "discount inválido"})
		}
		discount = d
	}
	out, err := h.uc.Charges(c.Context(), c.Params("id"), time.Now(), discount)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Finalizar estadía (check-out)
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la reserva"
// @Param        body  body  dto.CheckoutRequest  true  "Método de pago y descuento"
// @Success      200   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "la reserva no está activa"
// @Router       /api/reservations/{id}/checkout [post]
func (h *ReservationHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Checkout(c.Context(), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar reserva
// @Tags         reservations
// @Produce      json
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.ReservationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "la reserva no está activa"
// @Router       /api/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF de la estadía
// @Tags         reservations
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reservations/{id}/receipt [get]
func (h *ReservationHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.receiptUC.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="comprovante.pdf"`)
	return c.Send(pdfBytes)
}
