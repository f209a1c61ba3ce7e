package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"aitrip/internal/models/request_models"
	"aitrip/internal/models/response_models"
	"aitrip/pkg/utils"
)

type TripPlanServiceInterface interface {
	// GeneratePlan always returns a complete plan for a valid request.
	// The only error is a wrapped utils.ErrInvalidTripRequest.
	GeneratePlan(ctx context.Context, req request_models.TripPlanRequest) (*response_models.TripPlanResponse, error)
}

type TripPlanService struct {
	generator utils.TextGenerator
	logger    *zap.Logger
}

func NewTripPlanService(generator utils.TextGenerator, logger *zap.Logger) TripPlanServiceInterface {
	return &TripPlanService{
		generator: generator,
		logger:    logger.Named("trip_plan"),
	}
}

func (s *TripPlanService) GeneratePlan(ctx context.Context, req request_models.TripPlanRequest) (*response_models.TripPlanResponse, error) {
	if err := ValidateTripPlanRequest(req); err != nil {
		return nil, err
	}

	startTime := time.Now()
	plan, err := s.generate(ctx, req)
	if err != nil {
		s.logFallback(req, err)
		return BuildFallbackPlan(req), nil
	}

	s.logger.Info("plan generated",
		zap.String("destination", req.Destination),
		zap.Int("days", len(plan.Itinerary)),
		zap.Duration("took", time.Since(startTime)))
	return plan, nil
}

func (s *TripPlanService) generate(ctx context.Context, req request_models.TripPlanRequest) (*response_models.TripPlanResponse, error) {
	raw, err := s.generator.Generate(ctx, BuildTripPrompt(req))
	if err != nil {
		if !errors.Is(err, utils.ErrGenerationFailed) {
			err = &utils.GenerationError{Cause: err}
		}
		return nil, err
	}

	plan, err := NormalizePlan(raw)
	if err != nil {
		return nil, err
	}

	if err := alignItinerary(plan, req); err != nil {
		return nil, &utils.ParseError{Reason: err.Error(), Raw: preview(raw)}
	}
	return plan, nil
}

// alignItinerary enforces one DayPlan per trip day, numbered from 1, with dates filled in.
func alignItinerary(plan *response_models.TripPlanResponse, req request_models.TripPlanRequest) error {
	days := utils.CalculateDays(req.StartDate, req.EndDate)
	if len(plan.Itinerary) != days {
		return fmt.Errorf("itinerary has %d days, want %d", len(plan.Itinerary), days)
	}
	for i := range plan.Itinerary {
		plan.Itinerary[i].Day = i + 1
		if _, err := utils.ParseDate(plan.Itinerary[i].Date); err != nil {
			plan.Itinerary[i].Date = utils.FormatDate(req.StartDate.AddDate(0, 0, i))
		}
	}
	return nil
}

func (s *TripPlanService) logFallback(req request_models.TripPlanRequest, err error) {
	fields := []zap.Field{
		zap.String("destination", req.Destination),
		zap.Error(err),
	}
	var parseErr *utils.ParseError
	if errors.As(err, &parseErr) {
		fields = append(fields, zap.String("raw_prefix", parseErr.Raw))
	}
	s.logger.Warn("using fallback plan", fields...)
}
