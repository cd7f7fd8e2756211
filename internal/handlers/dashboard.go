package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listas-tarefas/task-manager/internal/dto"
	"github.com/listas-tarefas/task-manager/internal/services"
)

// DashboardHandler serves the statistics page of the current user.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns the statistics and collections of the current user
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardPage(dashboard, flashFromQuery(c)))
}
