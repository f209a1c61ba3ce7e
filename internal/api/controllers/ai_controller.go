package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"aitrip/internal/models/request_models"
	"aitrip/internal/models/response_models"
	"aitrip/internal/services"
	"aitrip/pkg/utils"
)

type AIController struct {
	planService   services.TripPlanServiceInterface
	slotFiller    services.SlotFiller
	defaultBudget float64
	now           func() time.Time
}

func NewAIController(planService services.TripPlanServiceInterface, slotFiller services.SlotFiller, defaultBudget float64) *AIController {
	return &AIController{
		planService:   planService,
		slotFiller:    slotFiller,
		defaultBudget: defaultBudget,
		now:           time.Now,
	}
}

// GeneratePlan godoc
// @Summary Generate a travel plan
// @Description Always returns a complete plan for a valid request; falls back to a template plan when the model fails
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.GeneratePlanRequest true "Trip request"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/generate-plan [post]
func (a *AIController) GeneratePlan(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tripReq, err := services.BuildTripPlanRequest(req, a.defaultBudget)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	plan, err := a.planService.GeneratePlan(c.Request.Context(), tripReq)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Travel plan generated successfully")
}

// ParseVoice godoc
// @Summary Extract trip fields from a transcript
// @Description Returns the extracted fields and the draft request with them applied
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.ParseVoiceRequest true "Transcript and optional draft"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/parse-voice [post]
func (a *AIController) ParseVoice(c *gin.Context) {
	var req request_models.ParseVoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Transcript) == "" {
		utils.RespondError(c, http.StatusBadRequest, "transcript is required")
		return
	}

	var draft request_models.GeneratePlanRequest
	if req.Draft != nil {
		draft = *req.Draft
	}

	extraction := a.slotFiller.Extract(req.Transcript)
	utils.RespondSuccess(c, response_models.ParseVoiceResponse{
		Extraction: extraction,
		Request:    services.ApplyVoiceExtraction(draft, extraction, a.now()),
	}, "Transcript parsed successfully")
}
