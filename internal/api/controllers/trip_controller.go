package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aitrip/internal/models/request_models"
	"aitrip/internal/services"
	"aitrip/pkg/utils"
)

type TripController struct {
	tripService    services.TripServiceInterface
	expenseService services.ExpenseServiceInterface
}

func NewTripController(tripService services.TripServiceInterface, expenseService services.ExpenseServiceInterface) *TripController {
	return &TripController{
		tripService:    tripService,
		expenseService: expenseService,
	}
}

// ListTrips godoc
// @Summary List trips
// @Description Trips of the current user, newest first
// @Tags Trips
// @Produce json
// @Param status   query string false "draft | planning | planned | ongoing | completed"
// @Param page     query int    false "Page number (default 1)"
// @Param pageSize query int    false "Page size (default 20, max 100)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	var query request_models.ListTripsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), currentUserID(c), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Get a trip
// @Description Trip with its expenses, total spent and remaining budget
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	trip, err := t.tripService.GetTrip(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// CreateTrip godoc
// @Summary Create a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, trip, "Trip created successfully")
}

// UpdateTrip godoc
// @Summary Update a trip
// @Description Only the fields present in the body are changed
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [put]
func (t *TripController) UpdateTrip(c *gin.Context) {
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	if err := t.tripService.DeleteTrip(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// GeneratePlan godoc
// @Summary Generate a plan for a stored trip
// @Description Runs the planner and saves the result as the trip itinerary
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/generate-plan [post]
func (t *TripController) GeneratePlan(c *gin.Context) {
	plan, err := t.tripService.GeneratePlanForTrip(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Travel plan generated successfully")
}

// ListTripExpenses godoc
// @Summary List a trip's expenses
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/expenses [get]
func (t *TripController) ListTripExpenses(c *gin.Context) {
	expenses, err := t.expenseService.ListExpenses(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, expenses, "Expenses fetched successfully")
}

// CreateTripExpense godoc
// @Summary Record an expense on a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.CreateExpenseRequest true "Expense payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/expenses [post]
func (t *TripController) CreateTripExpense(c *gin.Context) {
	var req request_models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	req.TripID = c.Param("id")

	expense, err := t.expenseService.CreateExpense(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, expense, "Expense recorded successfully")
}
