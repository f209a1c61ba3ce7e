package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	dbm "aitrip/internal/models/db_models"
	"aitrip/internal/models/request_models"
	resp "aitrip/internal/models/response_models"
	"aitrip/internal/repositories"
	"aitrip/pkg/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type TripServiceInterface interface {
	ListTrips(ctx context.Context, accountID string, query request_models.ListTripsQuery) (*resp.TripListResponse, error)
	GetTrip(ctx context.Context, accountID, tripID string) (*resp.TripDetailResponse, error)
	CreateTrip(ctx context.Context, accountID string, request request_models.CreateTripRequest) (*resp.TripResponse, error)
	UpdateTrip(ctx context.Context, accountID, tripID string, request request_models.UpdateTripRequest) (*resp.TripResponse, error)
	DeleteTrip(ctx context.Context, accountID, tripID string) error
	// GeneratePlanForTrip runs the plan pipeline for a stored trip and saves the result.
	GeneratePlanForTrip(ctx context.Context, accountID, tripID string) (*resp.TripPlanResponse, error)
}

type TripService struct {
	tripRepo      repositories.TripRepository
	expenseRepo   repositories.ExpenseRepository
	planService   TripPlanServiceInterface
	defaultBudget float64
	logger        *zap.Logger
}

func NewTripService(
	tripRepo repositories.TripRepository,
	expenseRepo repositories.ExpenseRepository,
	planService TripPlanServiceInterface,
	defaultBudget float64,
	logger *zap.Logger,
) TripServiceInterface {
	return &TripService{
		tripRepo:      tripRepo,
		expenseRepo:   expenseRepo,
		planService:   planService,
		defaultBudget: defaultBudget,
		logger:        logger.Named("trip"),
	}
}

func parseAccountID(accountID string) (uuid.UUID, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return uuid.Nil, utils.ErrUnauthorized
	}
	return id, nil
}

func parseIDs(accountID, tripID string) (uuid.UUID, uuid.UUID, error) {
	owner, err := parseAccountID(accountID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err := uuid.Parse(tripID)
	if err != nil {
		return uuid.Nil, uuid.Nil, utils.ErrTripNotFound
	}
	return owner, id, nil
}

func (s *TripService) ListTrips(ctx context.Context, accountID string, query request_models.ListTripsQuery) (*resp.TripListResponse, error) {
	owner, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.PageSize == 0 {
		query.PageSize = defaultPageSize
	}
	if query.Page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if query.PageSize < 1 || query.PageSize > maxPageSize {
		return nil, utils.ErrInvalidPageSize
	}
	if query.Status != "" && !dbm.TripStatus(query.Status).Valid() {
		return nil, utils.ErrInvalidTripStatus
	}

	trips, total, err := s.tripRepo.ListByAccount(ctx, owner, repositories.TripFilter{
		Status:   query.Status,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	items := make([]resp.TripResponse, 0, len(trips))
	for i := range trips {
		items = append(items, toTripResponse(&trips[i]))
	}
	return &resp.TripListResponse{
		Items:    items,
		Page:     query.Page,
		PageSize: query.PageSize,
		Total:    total,
	}, nil
}

func (s *TripService) GetTrip(ctx context.Context, accountID, tripID string) (*resp.TripDetailResponse, error) {
	trip, err := s.findTrip(ctx, accountID, tripID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListByAccount(ctx, trip.AccountID, &trip.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	detail := &resp.TripDetailResponse{
		TripResponse: toTripResponse(trip),
		Expenses:     make([]resp.ExpenseResponse, 0, len(expenses)),
	}
	for i := range expenses {
		detail.Expenses = append(detail.Expenses, toExpenseResponse(&expenses[i]))
		detail.TotalExpenses += expenses[i].Amount
	}
	detail.TotalExpenses = roundCents(detail.TotalExpenses)
	detail.RemainingBudget = roundCents(trip.Budget - detail.TotalExpenses)
	return detail, nil
}

func (s *TripService) CreateTrip(ctx context.Context, accountID string, request request_models.CreateTripRequest) (*resp.TripResponse, error) {
	owner, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}

	req, err := BuildTripPlanRequest(request.GeneratePlanRequest, s.defaultBudget)
	if err != nil {
		return nil, err
	}

	status := dbm.TripStatusDraft
	if request.Status != "" {
		status = dbm.TripStatus(request.Status)
		if !status.Valid() {
			return nil, utils.ErrInvalidTripStatus
		}
	}

	trip := &dbm.Trip{AccountID: owner, Status: status}
	applyTripRequest(trip, req)

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	out := toTripResponse(trip)
	return &out, nil
}

func (s *TripService) UpdateTrip(ctx context.Context, accountID, tripID string, request request_models.UpdateTripRequest) (*resp.TripResponse, error) {
	trip, err := s.findTrip(ctx, accountID, tripID)
	if err != nil {
		return nil, err
	}

	merged := tripToWire(trip)
	if request.Destination != nil {
		merged.Destination = *request.Destination
	}
	if request.StartDate != nil {
		merged.StartDate = *request.StartDate
	}
	if request.EndDate != nil {
		merged.EndDate = *request.EndDate
	}
	if request.Budget != nil {
		merged.Budget = request.Budget
	}
	if request.Travelers != nil {
		merged.Travelers = request.Travelers
	}
	if request.Preferences != nil {
		merged.Preferences = *request.Preferences
	}
	if request.Description != nil {
		merged.Description = *request.Description
	}

	req, err := BuildTripPlanRequest(merged, s.defaultBudget)
	if err != nil {
		return nil, err
	}
	if request.Status != nil {
		status := dbm.TripStatus(strings.TrimSpace(*request.Status))
		if !status.Valid() {
			return nil, utils.ErrInvalidTripStatus
		}
		trip.Status = status
	}
	applyTripRequest(trip, req)

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	out := toTripResponse(trip)
	return &out, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, accountID, tripID string) error {
	owner, id, err := parseIDs(accountID, tripID)
	if err != nil {
		return err
	}
	deleted, err := s.tripRepo.Delete(ctx, id, owner)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !deleted {
		return utils.ErrTripNotFound
	}
	return nil
}

func (s *TripService) GeneratePlanForTrip(ctx context.Context, accountID, tripID string) (*resp.TripPlanResponse, error) {
	trip, err := s.findTrip(ctx, accountID, tripID)
	if err != nil {
		return nil, err
	}

	plan, err := s.planService.GeneratePlan(ctx, tripToPlanRequest(trip))
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("encode plan: %w", err)
	}
	trip.Itinerary = datatypes.JSON(encoded)
	if trip.Status == dbm.TripStatusDraft || trip.Status == dbm.TripStatusPlanning {
		trip.Status = dbm.TripStatusPlanned
	}
	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	s.logger.Info("plan saved", zap.String("trip_id", trip.ID.String()), zap.Int("days", len(plan.Itinerary)))
	return plan, nil
}

func (s *TripService) findTrip(ctx context.Context, accountID, tripID string) (*dbm.Trip, error) {
	owner, id, err := parseIDs(accountID, tripID)
	if err != nil {
		return nil, err
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

func applyTripRequest(trip *dbm.Trip, req request_models.TripPlanRequest) {
	trip.Destination = req.Destination
	trip.StartDate = req.StartDate
	trip.EndDate = req.EndDate
	trip.Budget = req.Budget
	trip.Travelers = req.Travelers
	trip.Preferences = req.Preferences
	trip.Description = req.Description
}

func tripToWire(trip *dbm.Trip) request_models.GeneratePlanRequest {
	budget := trip.Budget
	travelers := trip.Travelers
	return request_models.GeneratePlanRequest{
		Destination: trip.Destination,
		StartDate:   utils.FormatDate(trip.StartDate),
		EndDate:     utils.FormatDate(trip.EndDate),
		Budget:      &budget,
		Travelers:   &travelers,
		Preferences: append([]string(nil), trip.Preferences...),
		Description: trip.Description,
	}
}

func tripToPlanRequest(trip *dbm.Trip) request_models.TripPlanRequest {
	return request_models.TripPlanRequest{
		Destination: trip.Destination,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Budget:      trip.Budget,
		Travelers:   trip.Travelers,
		Preferences: append([]string(nil), trip.Preferences...),
		Description: trip.Description,
	}
}
