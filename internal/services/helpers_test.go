package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"aitrip/internal/models/request_models"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func chengduRequest(t *testing.T) request_models.TripPlanRequest {
	return request_models.TripPlanRequest{
		Destination: "成都",
		StartDate:   date(t, "2025-01-01"),
		EndDate:     date(t, "2025-01-03"),
		Budget:      3000,
		Travelers:   2,
		Preferences: []string{"美食"},
	}
}
