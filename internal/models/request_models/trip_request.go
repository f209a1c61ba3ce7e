package request_models

import "time"

// GeneratePlanRequest is the wire shape of a trip request. Dates are YYYY-MM-DD strings;
// a nil budget or travelers count means "use the default".
type GeneratePlanRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Budget      *float64 `json:"budget,omitempty"`
	Travelers   *int     `json:"travelers,omitempty"`
	Preferences []string `json:"preferences"`
	Description string   `json:"description,omitempty"`
}

// TripPlanRequest is a validated trip request.
type TripPlanRequest struct {
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Budget      float64
	Travelers   int
	Preferences []string
	Description string
}

func (r TripPlanRequest) HasPreference(tag string) bool {
	for _, p := range r.Preferences {
		if p == tag {
			return true
		}
	}
	return false
}

type CreateTripRequest struct {
	GeneratePlanRequest
	Status string `json:"status,omitempty"`
}

// UpdateTripRequest only touches the fields that are present.
type UpdateTripRequest struct {
	Destination *string   `json:"destination"`
	StartDate   *string   `json:"startDate"`
	EndDate     *string   `json:"endDate"`
	Budget      *float64  `json:"budget"`
	Travelers   *int      `json:"travelers"`
	Preferences *[]string `json:"preferences"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
}

type ListTripsQuery struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}
