package services

import (
	"context"
	"fmt"
	"time"

	resp "aitrip/internal/models/response_models"
	"aitrip/internal/repositories"
	"aitrip/pkg/utils"
)

const topDestinationLimit = 5

type DashboardService interface {
	BuildDashboard(ctx context.Context, accountID string) (*resp.DashboardSummary, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo, now: time.Now}
}

func (s *dashboardService) BuildDashboard(ctx context.Context, accountID string) (*resp.DashboardSummary, error) {
	owner, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}

	// ---------- Trip counts ----------
	statusRows, err := s.repo.CountTripsByStatus(ctx, owner)
	if err != nil {
		return nil, dbErr(err)
	}
	out := &resp.DashboardSummary{
		TripsByStatus:      make(map[string]int64, len(statusRows)),
		ExpensesByCategory: []resp.CategorySpend{},
		TopDestinations:    []resp.DestinationCount{},
	}
	for _, row := range statusRows {
		out.TripsByStatus[row.Status] = row.Count
		out.TotalTrips += row.Count
	}

	if out.UpcomingTrips, err = s.repo.CountUpcomingTrips(ctx, owner, utils.TodayCN(s.now())); err != nil {
		return nil, dbErr(err)
	}

	// ---------- Money ----------
	budget, err := s.repo.SumTripBudgets(ctx, owner)
	if err != nil {
		return nil, dbErr(err)
	}
	out.TotalBudget = roundCents(budget)

	categoryRows, err := s.repo.SumExpensesByCategory(ctx, owner)
	if err != nil {
		return nil, dbErr(err)
	}
	var spent float64
	for _, row := range categoryRows {
		out.ExpensesByCategory = append(out.ExpensesByCategory, resp.CategorySpend{
			Category: row.Category,
			Amount:   roundCents(row.Sum),
		})
		spent += row.Sum
	}
	out.TotalExpenses = roundCents(spent)

	// ---------- Destinations ----------
	locations, err := s.repo.TopDestinations(ctx, owner, topDestinationLimit)
	if err != nil {
		return nil, dbErr(err)
	}
	for _, row := range locations {
		out.TopDestinations = append(out.TopDestinations, resp.DestinationCount{
			Destination: row.Location,
			Count:       row.Count,
		})
	}
	return out, nil
}

func dbErr(err error) error {
	return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
}
