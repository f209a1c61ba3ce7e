package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"aitrip/internal/models/response_models"
	"aitrip/pkg/utils"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /health [get]
func (h *HealthController) Health(c *gin.Context) {
	utils.RespondSuccess(c, response_models.HealthResponse{
		Status:    "ok",
		Timestamp: utils.FormatRFC3339CN(time.Now()),
	}, "")
}
