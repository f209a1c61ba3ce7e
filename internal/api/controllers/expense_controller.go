package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aitrip/internal/models/request_models"
	"aitrip/internal/services"
	"aitrip/pkg/utils"
)

type ExpenseController struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpenseController(expenseService services.ExpenseServiceInterface) *ExpenseController {
	return &ExpenseController{expenseService: expenseService}
}

// ListExpenses godoc
// @Summary List expenses
// @Tags Expenses
// @Produce json
// @Param tripId query string false "Only expenses of this trip"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses [get]
func (e *ExpenseController) ListExpenses(c *gin.Context) {
	expenses, err := e.expenseService.ListExpenses(c.Request.Context(), currentUserID(c), c.Query("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, expenses, "Expenses fetched successfully")
}

// CreateExpense godoc
// @Summary Record an expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body request_models.CreateExpenseRequest true "Expense payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses [post]
func (e *ExpenseController) CreateExpense(c *gin.Context) {
	var req request_models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	expense, err := e.expenseService.CreateExpense(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, expense, "Expense recorded successfully")
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags Expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (e *ExpenseController) DeleteExpense(c *gin.Context) {
	if err := e.expenseService.DeleteExpense(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Expense deleted successfully")
}
