package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	dbm "aitrip/internal/models/db_models"
	"aitrip/internal/repositories"
	"aitrip/testutil"
)

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func newTrip(account uuid.UUID, destination string, status dbm.TripStatus) *dbm.Trip {
	return &dbm.Trip{
		AccountID:   account,
		Destination: destination,
		StartDate:   day("2025-01-01"),
		EndDate:     day("2025-01-03"),
		Budget:      3000,
		Travelers:   2,
		Preferences: []string{"美食"},
		Status:      status,
	}
}

func TestTripRepository_Lifecycle(t *testing.T) {
	db := testutil.NewGormDB(t)
	owner := testutil.NewAccount(t, db)
	stranger := testutil.NewAccount(t, db)
	ctx := context.Background()

	trips := repositories.NewTripRepository(db)
	expenses := repositories.NewExpenseRepository(db)

	trip := newTrip(owner.ID, "成都", dbm.TripStatusDraft)
	require.NoError(t, trips.Create(ctx, trip))
	require.NoError(t, trips.Create(ctx, newTrip(owner.ID, "杭州", dbm.TripStatusPlanned)))

	found, err := trips.FindByIdForAccount(ctx, trip.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, []string{"美食"}, []string(found.Preferences))
	assert.Equal(t, "2025-01-03", found.EndDate.Format("2006-01-02"))

	other, err := trips.FindByIdForAccount(ctx, trip.ID, stranger.ID)
	require.NoError(t, err)
	assert.Nil(t, other)

	found.Itinerary = datatypes.JSON(`{"itinerary":[]}`)
	found.Status = dbm.TripStatusPlanned
	require.NoError(t, trips.Update(ctx, found))

	list, total, err := trips.ListByAccount(ctx, owner.ID, repositories.TripFilter{Status: "planned", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 2)

	require.NoError(t, expenses.Create(ctx, &dbm.Expense{
		TripID: trip.ID, AccountID: owner.ID, Category: "餐饮", Amount: 88.5, Currency: "CNY", Date: day("2025-01-02"),
	}))
	sum, err := expenses.SumByTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.InDelta(t, 88.5, sum, 0.001)

	deleted, err := trips.Delete(ctx, trip.ID, stranger.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = trips.Delete(ctx, trip.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	left, err := expenses.ListByAccount(ctx, owner.ID, &trip.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestAPIKeyRepository_Upsert(t *testing.T) {
	db := testutil.NewGormDB(t)
	owner := testutil.NewAccount(t, db)
	ctx := context.Background()
	repo := repositories.NewAPIKeyRepository(db)

	none, err := repo.FindByAccount(ctx, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, repo.Upsert(ctx, &dbm.APIKey{AccountID: owner.ID, LLMAPIKey: "sk-1"}))
	require.NoError(t, repo.Upsert(ctx, &dbm.APIKey{AccountID: owner.ID, LLMAPIKey: "sk-2", AmapKey: "amap"}))

	key, err := repo.FindByAccount(ctx, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, key)
	assert.Equal(t, "sk-2", key.LLMAPIKey)
	assert.Equal(t, "amap", key.AmapKey)
}

func TestDashboardRepository(t *testing.T) {
	db := testutil.NewGormDB(t)
	owner := testutil.NewAccount(t, db)
	ctx := context.Background()

	trips := repositories.NewTripRepository(db)
	expenses := repositories.NewExpenseRepository(db)
	dashboard := repositories.NewDashboardRepository(db)

	first := newTrip(owner.ID, "成都", dbm.TripStatusDraft)
	require.NoError(t, trips.Create(ctx, first))
	require.NoError(t, trips.Create(ctx, newTrip(owner.ID, "成都", dbm.TripStatusCompleted)))
	require.NoError(t, trips.Create(ctx, newTrip(owner.ID, "西安", dbm.TripStatusDraft)))
	require.NoError(t, expenses.Create(ctx, &dbm.Expense{
		TripID: first.ID, AccountID: owner.ID, Category: "住宿", Amount: 400, Currency: "CNY", Date: day("2025-01-01"),
	}))

	statuses, err := dashboard.CountTripsByStatus(ctx, owner.ID)
	require.NoError(t, err)
	counts := map[string]int64{}
	for _, row := range statuses {
		counts[row.Status] = row.Count
	}
	assert.Equal(t, map[string]int64{"draft": 2, "completed": 1}, counts)

	upcoming, err := dashboard.CountUpcomingTrips(ctx, owner.ID, day("2024-12-01"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), upcoming)

	budget, err := dashboard.SumTripBudgets(ctx, owner.ID)
	require.NoError(t, err)
	assert.InDelta(t, 9000, budget, 0.001)

	categories, err := dashboard.SumExpensesByCategory(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "住宿", categories[0].Category)

	top, err := dashboard.TopDestinations(ctx, owner.ID, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "成都", top[0].Location)
	assert.Equal(t, int64(2), top[0].Count)
}
