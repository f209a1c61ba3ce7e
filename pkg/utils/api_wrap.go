package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusCreated, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinels to HTTP statuses. Unknown errors are logged and hidden.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidTripRequest):
		RespondError(c, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, ErrInvalidExpense):
		RespondError(c, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, ErrInvalidTripStatus):
		RespondError(c, http.StatusBadRequest, "Status must be one of: draft, planning, planned, ongoing, completed")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrExpenseNotFound):
		RespondError(c, http.StatusNotFound, "Expense not found")
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unhandled service error", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// validationMessage strips the sentinel prefix so clients see only the reason.
func validationMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{ErrInvalidTripRequest, ErrInvalidExpense} {
		msg = strings.TrimPrefix(msg, sentinel.Error()+": ")
	}
	return msg
}
