package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	dbm "aitrip/internal/models/db_models"
	"aitrip/internal/models/request_models"
	resp "aitrip/internal/models/response_models"
	"aitrip/internal/repositories"
	"aitrip/pkg/utils"
)

const defaultCurrency = "CNY"

type ExpenseServiceInterface interface {
	// ListExpenses returns the account's expenses; tripID narrows to one trip when not empty.
	ListExpenses(ctx context.Context, accountID, tripID string) ([]resp.ExpenseResponse, error)
	CreateExpense(ctx context.Context, accountID string, request request_models.CreateExpenseRequest) (*resp.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, accountID, expenseID string) error
}

type ExpenseService struct {
	expenseRepo repositories.ExpenseRepository
	tripRepo    repositories.TripRepository
	logger      *zap.Logger
	now         func() time.Time
}

func NewExpenseService(expenseRepo repositories.ExpenseRepository, tripRepo repositories.TripRepository, logger *zap.Logger) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		tripRepo:    tripRepo,
		logger:      logger.Named("expense"),
		now:         time.Now,
	}
}

func (s *ExpenseService) ListExpenses(ctx context.Context, accountID, tripID string) ([]resp.ExpenseResponse, error) {
	owner, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}

	var filter *uuid.UUID
	if tripID != "" {
		trip, err := s.ownedTrip(ctx, owner, tripID)
		if err != nil {
			return nil, err
		}
		filter = &trip.ID
	}

	expenses, err := s.expenseRepo.ListByAccount(ctx, owner, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	out := make([]resp.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, toExpenseResponse(&expenses[i]))
	}
	return out, nil
}

func (s *ExpenseService) CreateExpense(ctx context.Context, accountID string, request request_models.CreateExpenseRequest) (*resp.ExpenseResponse, error) {
	owner, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}

	category := strings.TrimSpace(request.Category)
	switch {
	case strings.TrimSpace(request.TripID) == "":
		return nil, fmt.Errorf("%w: tripId is required", utils.ErrInvalidExpense)
	case category == "":
		return nil, fmt.Errorf("%w: category is required", utils.ErrInvalidExpense)
	case request.Amount <= 0:
		return nil, fmt.Errorf("%w: amount must be positive", utils.ErrInvalidExpense)
	}

	date := utils.TodayCN(s.now())
	if strings.TrimSpace(request.Date) != "" {
		date, err = utils.ParseDate(request.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be a YYYY-MM-DD date", utils.ErrInvalidExpense)
		}
	}

	currency := strings.ToUpper(strings.TrimSpace(request.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	trip, err := s.ownedTrip(ctx, owner, request.TripID)
	if err != nil {
		return nil, err
	}

	expense := &dbm.Expense{
		TripID:      trip.ID,
		AccountID:   owner,
		Category:    category,
		Amount:      roundCents(request.Amount),
		Currency:    currency,
		Description: strings.TrimSpace(request.Description),
		Date:        date,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	s.logger.Debug("expense recorded", zap.String("trip_id", trip.ID.String()), zap.Float64("amount", expense.Amount))
	out := toExpenseResponse(expense)
	return &out, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, accountID, expenseID string) error {
	owner, err := parseAccountID(accountID)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(expenseID)
	if err != nil {
		return utils.ErrExpenseNotFound
	}
	deleted, err := s.expenseRepo.Delete(ctx, id, owner)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !deleted {
		return utils.ErrExpenseNotFound
	}
	return nil
}

func (s *ExpenseService) ownedTrip(ctx context.Context, owner uuid.UUID, tripID string) (*dbm.Trip, error) {
	id, err := uuid.Parse(strings.TrimSpace(tripID))
	if err != nil {
		return nil, utils.ErrTripNotFound
	}
	trip, err := s.tripRepo.FindByIdForAccount(ctx, id, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}
