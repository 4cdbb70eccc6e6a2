package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientedev/salasv2/database"
	"github.com/clientedev/salasv2/models"
	"github.com/clientedev/salasv2/scheduling"
)

type DashboardHandler struct {
	resolver *scheduling.Resolver
	clock    scheduling.Clock
}

func NewDashboardHandler(resolver *scheduling.Resolver, clock scheduling.Clock) *DashboardHandler {
	return &DashboardHandler{resolver: resolver, clock: clock}
}

// GET /admin/dashboard
// Contadores gerais + retrato da disponibilidade neste instante.
func (h *DashboardHandler) Summary(c echo.Context) error {
	var totalRooms, activeSchedules, pendingRequests, openIncidents int64

	if err := database.DB.Model(&models.Classroom{}).Count(&totalRooms).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	if err := database.DB.Model(&models.Schedule{}).Where("is_active = ?", true).Count(&activeSchedules).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	if err := database.DB.Model(&models.ScheduleRequest{}).Where("status = ?", models.RequestPending).Count(&pendingRequests).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	if err := database.DB.Model(&models.Incident{}).Where("is_active = ? AND is_resolved = ?", true, false).Count(&openIncidents).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	now, err := h.resolver.ForDate(h.clock.Now(), "")
	if err != nil {
		c.Logger().Errorf("dashboard availability: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "AVAILABILITY_UNAVAILABLE"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"total_rooms":      totalRooms,
		"active_schedules": activeSchedules,
		"pending_requests": pendingRequests,
		"open_incidents":   openIncidents,
		"availability_now": now,
	})
}
