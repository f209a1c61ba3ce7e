package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"aitrip/internal/api/controllers"
	"aitrip/internal/models/request_models"
	resp "aitrip/internal/models/response_models"
	"aitrip/internal/services"
	"aitrip/pkg/middleware"
	"aitrip/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

// asUser stands in for the JWT middleware.
func asUser(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id)
		c.Next()
	}
}

type stubTripService struct {
	services.TripServiceInterface
	createFn   func(ctx context.Context, accountID string, req request_models.CreateTripRequest) (*resp.TripResponse, error)
	getFn      func(ctx context.Context, accountID, tripID string) (*resp.TripDetailResponse, error)
	generateFn func(ctx context.Context, accountID, tripID string) (*resp.TripPlanResponse, error)
}

func (s *stubTripService) CreateTrip(ctx context.Context, accountID string, req request_models.CreateTripRequest) (*resp.TripResponse, error) {
	return s.createFn(ctx, accountID, req)
}

func (s *stubTripService) GetTrip(ctx context.Context, accountID, tripID string) (*resp.TripDetailResponse, error) {
	return s.getFn(ctx, accountID, tripID)
}

func (s *stubTripService) GeneratePlanForTrip(ctx context.Context, accountID, tripID string) (*resp.TripPlanResponse, error) {
	return s.generateFn(ctx, accountID, tripID)
}

type stubExpenseService struct {
	services.ExpenseServiceInterface
	createFn func(ctx context.Context, accountID string, req request_models.CreateExpenseRequest) (*resp.ExpenseResponse, error)
}

func (s *stubExpenseService) CreateExpense(ctx context.Context, accountID string, req request_models.CreateExpenseRequest) (*resp.ExpenseResponse, error) {
	return s.createFn(ctx, accountID, req)
}

type failingGenerator struct{}

func (failingGenerator) Generate(ctx context.Context, prompt utils.ChatPrompt) (string, error) {
	return "", utils.NewGenerationError(errors.New("dial tcp: connection refused"), "llm request failed")
}

func aiRouter(t *testing.T) *gin.Engine {
	planner := services.NewTripPlanService(failingGenerator{}, zaptest.NewLogger(t))
	ctrl := controllers.NewAIController(planner, services.NewVoiceExtractor(), 5000)

	r := gin.New()
	r.POST("/ai/generate-plan", ctrl.GeneratePlan)
	r.POST("/ai/parse-voice", ctrl.ParseVoice)
	return r
}

func TestAIController_GeneratePlanFallsBack(t *testing.T) {
	r := aiRouter(t)

	w, env := do(t, r, http.MethodPost, "/ai/generate-plan", map[string]any{
		"destination": "成都",
		"startDate":   "2025-01-01",
		"endDate":     "2025-01-03",
		"budget":      3000,
		"travelers":   2,
		"preferences": []string{"美食"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", env.Status)

	var plan resp.TripPlanResponse
	require.NoError(t, json.Unmarshal(env.Data, &plan))
	require.Len(t, plan.Itinerary, 3)
	assert.Equal(t, "2025-01-03", plan.Itinerary[2].Date)
	assert.InDelta(t, 3000, plan.TotalBudget(), 0.01)
}

func TestAIController_GeneratePlanValidation(t *testing.T) {
	r := aiRouter(t)

	tests := []struct {
		name string
		body map[string]any
		want string
	}{
		{"missing destination", map[string]any{"startDate": "2025-01-01", "endDate": "2025-01-02"}, "destination is required"},
		{"inverted", map[string]any{"destination": "成都", "startDate": "2025-01-05", "endDate": "2025-01-01"}, "endDate must not be before startDate"},
		{"too long", map[string]any{"destination": "成都", "startDate": "2025-01-01", "endDate": "2025-03-01"}, "trip cannot exceed 30 days"},
		{"negative budget", map[string]any{"destination": "成都", "startDate": "2025-01-01", "endDate": "2025-01-02", "budget": -1}, "budget must not be negative"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, env := do(t, r, http.MethodPost, "/ai/generate-plan", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "error", env.Status)
			assert.Equal(t, tc.want, env.Message)
		})
	}
}

func TestAIController_ParseVoice(t *testing.T) {
	r := aiRouter(t)

	w, env := do(t, r, http.MethodPost, "/ai/parse-voice", map[string]any{
		"transcript": "我想去北京，玩5天，预算10000元，喜欢历史文化，2个人",
		"draft":      map[string]any{"startDate": "2025-05-01", "preferences": []string{"美食"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var out resp.ParseVoiceResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.NotNil(t, out.Extraction.Destination)
	assert.Equal(t, "北京", *out.Extraction.Destination)
	assert.Equal(t, "北京", out.Request.Destination)
	assert.Equal(t, "2025-05-05", out.Request.EndDate)
	require.NotNil(t, out.Request.Budget)
	assert.Equal(t, 10000.0, *out.Request.Budget)
	assert.Equal(t, []string{"美食", "历史文化"}, out.Request.Preferences)

	w, _ = do(t, r, http.MethodPost, "/ai/parse-voice", map[string]any{"transcript": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTripController_CreateAndErrors(t *testing.T) {
	user := uuid.NewString()
	trips := &stubTripService{
		createFn: func(ctx context.Context, accountID string, req request_models.CreateTripRequest) (*resp.TripResponse, error) {
			assert.Equal(t, user, accountID)
			return &resp.TripResponse{ID: "t1", Destination: req.Destination, Status: "draft"}, nil
		},
		getFn: func(ctx context.Context, accountID, tripID string) (*resp.TripDetailResponse, error) {
			return nil, utils.ErrTripNotFound
		},
		generateFn: func(ctx context.Context, accountID, tripID string) (*resp.TripPlanResponse, error) {
			return nil, fmt.Errorf("%w: connection reset", utils.ErrDatabaseError)
		},
	}
	expenses := &stubExpenseService{
		createFn: func(ctx context.Context, accountID string, req request_models.CreateExpenseRequest) (*resp.ExpenseResponse, error) {
			return &resp.ExpenseResponse{ID: "e1", TripID: req.TripID, Amount: req.Amount}, nil
		},
	}
	ctrl := controllers.NewTripController(trips, expenses)

	r := gin.New()
	g := r.Group("/trips", asUser(user))
	g.POST("", ctrl.CreateTrip)
	g.GET("/:id", ctrl.GetTrip)
	g.POST("/:id/generate-plan", ctrl.GeneratePlan)
	g.POST("/:id/expenses", ctrl.CreateTripExpense)

	w, env := do(t, r, http.MethodPost, "/trips", map[string]any{"destination": "杭州"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, http.StatusCreated, env.Code)

	w, env = do(t, r, http.MethodGet, "/trips/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Trip not found", env.Message)

	w, env = do(t, r, http.MethodPost, "/trips/abc/generate-plan", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", env.Message)

	w, env = do(t, r, http.MethodPost, "/trips/abc/expenses", map[string]any{"category": "餐饮", "amount": 35})
	require.Equal(t, http.StatusCreated, w.Code)
	var expense resp.ExpenseResponse
	require.NoError(t, json.Unmarshal(env.Data, &expense))
	assert.Equal(t, "abc", expense.TripID)

	w, _ = do(t, r, http.MethodPost, "/trips/abc/expenses", map[string]any{"category": "餐饮", "amount": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthController(t *testing.T) {
	r := gin.New()
	r.GET("/health", controllers.NewHealthController().Health)

	w, env := do(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var health resp.HealthResponse
	require.NoError(t, json.Unmarshal(env.Data, &health))
	assert.Equal(t, "ok", health.Status)
	_, err := time.Parse(time.RFC3339, health.Timestamp)
	assert.NoError(t, err)
}
