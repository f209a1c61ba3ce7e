package services

import (
	"encoding/json"

	"go.uber.org/zap"

	dbm "aitrip/internal/models/db_models"
	resp "aitrip/internal/models/response_models"
	"aitrip/pkg/utils"
)

func toAccountResponse(a *dbm.Account) resp.AccountResponse {
	return resp.AccountResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: utils.FormatRFC3339CN(utils.FromUnixSecondsCN(a.CreatedAt)),
	}
}

func toTripResponse(t *dbm.Trip) resp.TripResponse {
	out := resp.TripResponse{
		ID:          t.ID.String(),
		Destination: t.Destination,
		StartDate:   utils.FormatDate(t.StartDate),
		EndDate:     utils.FormatDate(t.EndDate),
		Budget:      t.Budget,
		Travelers:   t.Travelers,
		Preferences: []string(t.Preferences),
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   utils.FormatRFC3339CN(utils.FromUnixSecondsCN(t.CreatedAt)),
		UpdatedAt:   utils.FormatRFC3339CN(utils.FromUnixSecondsCN(t.UpdatedAt)),
	}
	if out.Preferences == nil {
		out.Preferences = []string{}
	}
	if len(t.Itinerary) > 0 {
		var plan resp.TripPlanResponse
		if err := json.Unmarshal(t.Itinerary, &plan); err != nil {
			zap.L().Warn("stored itinerary is not a plan", zap.String("trip_id", out.ID), zap.Error(err))
		} else {
			out.Itinerary = &plan
		}
	}
	return out
}

func toExpenseResponse(e *dbm.Expense) resp.ExpenseResponse {
	return resp.ExpenseResponse{
		ID:          e.ID.String(),
		TripID:      e.TripID.String(),
		Category:    e.Category,
		Amount:      e.Amount,
		Currency:    e.Currency,
		Description: e.Description,
		Date:        utils.FormatDate(e.Date),
		CreatedAt:   utils.FormatRFC3339CN(utils.FromUnixSecondsCN(e.CreatedAt)),
	}
}

func toAPIKeyResponse(k *dbm.APIKey) resp.APIKeyResponse {
	if k == nil {
		return resp.APIKeyResponse{}
	}
	return resp.APIKeyResponse{
		LLMAPIKey:        k.LLMAPIKey,
		AmapKey:          k.AmapKey,
		AmapSecurityCode: k.AmapSecurityCode,
		SpeechAPIKey:     k.SpeechAPIKey,
		UpdatedAt:        utils.FormatRFC3339CN(utils.FromUnixSecondsCN(k.UpdatedAt)),
	}
}
