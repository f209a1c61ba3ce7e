package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aitrip/internal/repositories"
	"aitrip/internal/services"
	"aitrip/pkg/utils"
)

func TestBuildDashboard(t *testing.T) {
	repo := &mockDashboardRepo{
		statuses: []repositories.StatusCountRow{
			{Status: "draft", Count: 2},
			{Status: "planned", Count: 3},
		},
		upcoming: 3,
		budgets:  15000,
		categories: []repositories.CategorySumRow{
			{Category: "住宿", Sum: 1200.004},
			{Category: "餐饮", Sum: 300.5},
		},
		locations: []repositories.LocationRow{{Location: "成都", Count: 2}},
	}
	svc := services.NewDashboardService(repo)

	out, err := svc.BuildDashboard(context.Background(), uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, int64(5), out.TotalTrips)
	assert.Equal(t, map[string]int64{"draft": 2, "planned": 3}, out.TripsByStatus)
	assert.Equal(t, int64(3), out.UpcomingTrips)
	assert.Equal(t, 15000.0, out.TotalBudget)
	assert.InDelta(t, 1500.5, out.TotalExpenses, 0.001)
	require.Len(t, out.ExpensesByCategory, 2)
	assert.Equal(t, 1200.0, out.ExpensesByCategory[0].Amount)
	require.Len(t, out.TopDestinations, 1)
	assert.Equal(t, "成都", out.TopDestinations[0].Destination)

	assert.Equal(t, 5, repo.lastLimit)
	assert.Equal(t, 0, repo.lastToday.Hour())
}

func TestBuildDashboard_EmptyAccount(t *testing.T) {
	out, err := services.NewDashboardService(&mockDashboardRepo{}).BuildDashboard(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Zero(t, out.TotalTrips)
	assert.NotNil(t, out.ExpensesByCategory)
	assert.NotNil(t, out.TopDestinations)
}

func TestBuildDashboard_DatabaseError(t *testing.T) {
	_, err := services.NewDashboardService(&mockDashboardRepo{err: errors.New("down")}).BuildDashboard(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
