package controllers

import (
	"github.com/gin-gonic/gin"

	"aitrip/internal/services"
	"aitrip/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Get dashboard summary
// @Description Trip counts per status, upcoming trips, planned budget, spending per category and top destinations for the current user
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (p *DashboardController) GetDashboard(c *gin.Context) {
	summary, err := p.dashboardService.BuildDashboard(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "Dashboard fetched successfully")
}
