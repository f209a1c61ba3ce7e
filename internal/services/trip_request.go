package services

import (
	"fmt"
	"strings"

	"aitrip/internal/models/request_models"
	"aitrip/pkg/utils"
)

const (
	DefaultTripBudget    = 5000
	DefaultTripTravelers = 1
	MaxTripDays          = 30
)

// BuildTripPlanRequest applies defaults to a wire request and validates it.
func BuildTripPlanRequest(in request_models.GeneratePlanRequest, defaultBudget float64) (request_models.TripPlanRequest, error) {
	if defaultBudget <= 0 {
		defaultBudget = DefaultTripBudget
	}

	destination := strings.TrimSpace(in.Destination)
	if destination == "" {
		return request_models.TripPlanRequest{}, utils.InvalidTripRequest("destination is required")
	}
	if strings.TrimSpace(in.StartDate) == "" || strings.TrimSpace(in.EndDate) == "" {
		return request_models.TripPlanRequest{}, utils.InvalidTripRequest("startDate and endDate are required")
	}

	start, err := utils.ParseDate(in.StartDate)
	if err != nil {
		return request_models.TripPlanRequest{}, utils.InvalidTripRequest("startDate must be a YYYY-MM-DD date")
	}
	end, err := utils.ParseDate(in.EndDate)
	if err != nil {
		return request_models.TripPlanRequest{}, utils.InvalidTripRequest("endDate must be a YYYY-MM-DD date")
	}

	req := request_models.TripPlanRequest{
		Destination: destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      defaultBudget,
		Travelers:   DefaultTripTravelers,
		Preferences: normalizePreferences(in.Preferences),
		Description: strings.TrimSpace(in.Description),
	}
	if in.Budget != nil {
		req.Budget = *in.Budget
	}
	if in.Travelers != nil {
		req.Travelers = *in.Travelers
	}

	if err := ValidateTripPlanRequest(req); err != nil {
		return request_models.TripPlanRequest{}, err
	}
	return req, nil
}

// ValidateTripPlanRequest checks the invariants every generation relies on.
func ValidateTripPlanRequest(req request_models.TripPlanRequest) error {
	switch {
	case strings.TrimSpace(req.Destination) == "":
		return utils.InvalidTripRequest("destination is required")
	case req.StartDate.IsZero() || req.EndDate.IsZero():
		return utils.InvalidTripRequest("startDate and endDate are required")
	case req.EndDate.Before(req.StartDate):
		return utils.InvalidTripRequest("endDate must not be before startDate")
	case utils.CalculateDays(req.StartDate, req.EndDate) > MaxTripDays:
		return utils.InvalidTripRequest(fmt.Sprintf("trip cannot exceed %d days", MaxTripDays))
	case req.Budget < 0:
		return utils.InvalidTripRequest("budget must not be negative")
	case req.Travelers < 1:
		return utils.InvalidTripRequest("travelers must be at least 1")
	}
	return nil
}

func normalizePreferences(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, p := range in {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
