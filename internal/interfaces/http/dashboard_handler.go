package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vilamar/pousada-api/internal/application/analytics"
)

// DashboardHandler maneja las peticiones HTTP del panel inicial.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Métricas del día para el panel
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
