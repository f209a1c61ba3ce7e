package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aitrip/internal/models/request_models"
	"aitrip/internal/services"
	"aitrip/pkg/utils"
)

type APIKeyController struct {
	apiKeyService services.APIKeyServiceInterface
}

func NewAPIKeyController(apiKeyService services.APIKeyServiceInterface) *APIKeyController {
	return &APIKeyController{apiKeyService: apiKeyService}
}

// GetAPIKeys godoc
// @Summary Get the user's third-party keys
// @Tags APIKeys
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api-keys [get]
func (a *APIKeyController) GetAPIKeys(c *gin.Context) {
	keys, err := a.apiKeyService.GetAPIKeys(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, keys, "API keys fetched successfully")
}

// UpsertAPIKeys godoc
// @Summary Save the user's third-party keys
// @Tags APIKeys
// @Accept json
// @Produce json
// @Param request body request_models.UpsertAPIKeyRequest true "Keys to save"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api-keys [post]
func (a *APIKeyController) UpsertAPIKeys(c *gin.Context) {
	var req request_models.UpsertAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	keys, err := a.apiKeyService.UpsertAPIKeys(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, keys, "API keys saved successfully")
}
