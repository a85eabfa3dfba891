package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vilamar/pousada-api/internal/application/dto"
	"github.com/vilamar/pousada-api/internal/application/usecase"
)

// RoomHandler maneja las peticiones HTTP para Room.
type RoomHandler struct {
	uc *usecase.RoomUseCase
}

// NewRoomHandler construye el handler.
func NewRoomHandler(uc *usecase.RoomUseCase) *RoomHandler {
	return &RoomHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cuarto
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoomRequest  true  "Datos del cuarto"
// @Success      201   {object}  dto.RoomResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rooms [post]
func (h *RoomHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoomRequest
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
// @Summary      Obtener cuarto por ID
// @Tags         rooms
// @Produce      json
// @Param        id   path  string  true  "ID del cuarto"
// @Success      200  {object}  dto.RoomResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rooms/{id} [get]
func (h *RoomHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuarto no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cuartos
// @Tags         rooms
// @Produce      json
// @Success      200  {array}  dto.RoomResponse
// @Router       /api/rooms [get]
func (h *RoomHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// ListAvailable godoc
// @Summary      Listar cuartos disponibles
// @Tags         rooms
// @Produce      json
// @Success      200  {array}  dto.RoomResponse
// @Router       /api/rooms/available [get]
func (h *RoomHandler) ListAvailable(c *fiber.Ctx) error {
	out, err := h.uc.ListAvailable(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cuarto
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cuarto"
// @Param        body  body  dto.UpdateRoomRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.RoomResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rooms/{id} [put]
func (h *RoomHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRoomRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cuarto
// @Tags         rooms
// @Produce      json
// @Param        id   path  string  true  "ID del cuarto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cuarto eliminado"})
}
