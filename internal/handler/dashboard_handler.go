package handler

import (
	"github.com/gofiber/fiber/v2"

	"propview-backend/internal/middleware"
	"propview-backend/internal/service/audit"
	"propview-backend/internal/service/dashboard"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
	auditService     audit.Service
}

func NewDashboardHandler(dashboardService dashboard.Service, auditService audit.Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		auditService:     auditService,
	}
}

// OwnerStats summarizes the viewing pipeline across the caller's
// properties.
func (h *DashboardHandler) OwnerStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetOwnerStats(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

func (h *DashboardHandler) RecentActivities(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	activities, err := h.auditService.GetRecentActivities(c.Context(), limit)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(activities)
}
