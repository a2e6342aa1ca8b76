package handlers

import (
	"mams-backend/internal/core/services"
	"mams-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetMetrics returns the asset overview, optionally filtered by ?base=
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	base := c.Query("base")

	metrics, err := h.dashboardService.GetMetrics(c.Context(), base)
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard")
	}

	return response.Success(c, "Dashboard retrieved successfully", fiber.Map{
		"metrics": metrics,
	})
}
