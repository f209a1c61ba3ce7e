package services_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	dbm "aitrip/internal/models/db_models"
	"aitrip/internal/models/request_models"
	resp "aitrip/internal/models/response_models"
	"aitrip/internal/repositories"
	"aitrip/internal/services"
)

type mockTripRepo struct {
	CreateFn             func(ctx context.Context, trip *dbm.Trip) error
	UpdateFn             func(ctx context.Context, trip *dbm.Trip) error
	FindByIdForAccountFn func(ctx context.Context, id, accountID uuid.UUID) (*dbm.Trip, error)
	ListByAccountFn      func(ctx context.Context, accountID uuid.UUID, filter repositories.TripFilter) ([]dbm.Trip, int64, error)
	DeleteFn             func(ctx context.Context, id, accountID uuid.UUID) (bool, error)
}

var _ repositories.TripRepository = (*mockTripRepo)(nil)

func (m *mockTripRepo) Create(ctx context.Context, trip *dbm.Trip) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, trip)
	}
	trip.ID = uuid.New()
	return nil
}

func (m *mockTripRepo) Update(ctx context.Context, trip *dbm.Trip) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, trip)
	}
	return nil
}

func (m *mockTripRepo) FindByIdForAccount(ctx context.Context, id, accountID uuid.UUID) (*dbm.Trip, error) {
	if m.FindByIdForAccountFn != nil {
		return m.FindByIdForAccountFn(ctx, id, accountID)
	}
	return nil, nil
}

func (m *mockTripRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, filter repositories.TripFilter) ([]dbm.Trip, int64, error) {
	if m.ListByAccountFn != nil {
		return m.ListByAccountFn(ctx, accountID, filter)
	}
	return nil, 0, nil
}

func (m *mockTripRepo) Delete(ctx context.Context, id, accountID uuid.UUID) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, accountID)
	}
	return false, nil
}

type mockExpenseRepo struct {
	CreateFn        func(ctx context.Context, expense *dbm.Expense) error
	ListByAccountFn func(ctx context.Context, accountID uuid.UUID, tripID *uuid.UUID) ([]dbm.Expense, error)
	SumByTripFn     func(ctx context.Context, tripID uuid.UUID) (float64, error)
	DeleteFn        func(ctx context.Context, id, accountID uuid.UUID) (bool, error)
}

var _ repositories.ExpenseRepository = (*mockExpenseRepo)(nil)

func (m *mockExpenseRepo) Create(ctx context.Context, expense *dbm.Expense) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, expense)
	}
	expense.ID = uuid.New()
	return nil
}

func (m *mockExpenseRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, tripID *uuid.UUID) ([]dbm.Expense, error) {
	if m.ListByAccountFn != nil {
		return m.ListByAccountFn(ctx, accountID, tripID)
	}
	return nil, nil
}

func (m *mockExpenseRepo) SumByTrip(ctx context.Context, tripID uuid.UUID) (float64, error) {
	if m.SumByTripFn != nil {
		return m.SumByTripFn(ctx, tripID)
	}
	return 0, nil
}

func (m *mockExpenseRepo) Delete(ctx context.Context, id, accountID uuid.UUID) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, accountID)
	}
	return false, nil
}

type mockAccountRepo struct {
	InsertFn      func(ctx context.Context, account *dbm.Account) error
	FindByIdFn    func(ctx context.Context, id string) (*dbm.Account, error)
	FindByEmailFn func(ctx context.Context, email string) (*dbm.Account, error)
}

var _ repositories.AccountRepository = (*mockAccountRepo)(nil)

func (m *mockAccountRepo) Insert(ctx context.Context, account *dbm.Account) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, account)
	}
	account.ID = uuid.New()
	return nil
}

func (m *mockAccountRepo) FindById(ctx context.Context, id string) (*dbm.Account, error) {
	if m.FindByIdFn != nil {
		return m.FindByIdFn(ctx, id)
	}
	return nil, nil
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*dbm.Account, error) {
	if m.FindByEmailFn != nil {
		return m.FindByEmailFn(ctx, email)
	}
	return nil, nil
}

type mockAPIKeyRepo struct {
	stored *dbm.APIKey
	err    error
}

var _ repositories.APIKeyRepository = (*mockAPIKeyRepo)(nil)

func (m *mockAPIKeyRepo) FindByAccount(ctx context.Context, accountID uuid.UUID) (*dbm.APIKey, error) {
	if m.err != nil || m.stored == nil {
		return nil, m.err
	}
	cp := *m.stored
	return &cp, nil
}

func (m *mockAPIKeyRepo) Upsert(ctx context.Context, key *dbm.APIKey) error {
	if m.err != nil {
		return m.err
	}
	cp := *key
	m.stored = &cp
	return nil
}

type mockDashboardRepo struct {
	statuses   []repositories.StatusCountRow
	upcoming   int64
	budgets    float64
	categories []repositories.CategorySumRow
	locations  []repositories.LocationRow
	err        error
	lastToday  time.Time
	lastLimit  int
}

var _ repositories.DashboardRepository = (*mockDashboardRepo)(nil)

func (m *mockDashboardRepo) CountTripsByStatus(ctx context.Context, accountID uuid.UUID) ([]repositories.StatusCountRow, error) {
	return m.statuses, m.err
}

func (m *mockDashboardRepo) CountUpcomingTrips(ctx context.Context, accountID uuid.UUID, today time.Time) (int64, error) {
	m.lastToday = today
	return m.upcoming, m.err
}

func (m *mockDashboardRepo) SumTripBudgets(ctx context.Context, accountID uuid.UUID) (float64, error) {
	return m.budgets, m.err
}

func (m *mockDashboardRepo) SumExpensesByCategory(ctx context.Context, accountID uuid.UUID) ([]repositories.CategorySumRow, error) {
	return m.categories, m.err
}

func (m *mockDashboardRepo) TopDestinations(ctx context.Context, accountID uuid.UUID, limit int) ([]repositories.LocationRow, error) {
	m.lastLimit = limit
	return m.locations, m.err
}

// planServiceFunc adapts a function to services.TripPlanServiceInterface.
type planServiceFunc func(ctx context.Context, req request_models.TripPlanRequest) (*resp.TripPlanResponse, error)

func (f planServiceFunc) GeneratePlan(ctx context.Context, req request_models.TripPlanRequest) (*resp.TripPlanResponse, error) {
	return f(ctx, req)
}

var _ services.TripPlanServiceInterface = planServiceFunc(nil)
