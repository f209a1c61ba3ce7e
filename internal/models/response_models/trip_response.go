package response_models

type TripResponse struct {
	ID          string            `json:"id"`
	Destination string            `json:"destination"`
	StartDate   string            `json:"startDate"`
	EndDate     string            `json:"endDate"`
	Budget      float64           `json:"budget"`
	Travelers   int               `json:"travelers"`
	Preferences []string          `json:"preferences"`
	Description string            `json:"description,omitempty"`
	Itinerary   *TripPlanResponse `json:"itinerary,omitempty"`
	Status      string            `json:"status"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}

type TripDetailResponse struct {
	TripResponse
	Expenses        []ExpenseResponse `json:"expenses"`
	TotalExpenses   float64           `json:"totalExpenses"`
	RemainingBudget float64           `json:"remainingBudget"`
}

type TripListResponse struct {
	Items    []TripResponse `json:"items"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
	Total    int64          `json:"total"`
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	TripID      string  `json:"tripId"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"createdAt"`
}

type APIKeyResponse struct {
	LLMAPIKey        string `json:"llmApiKey,omitempty"`
	AmapKey          string `json:"amapKey,omitempty"`
	AmapSecurityCode string `json:"amapSecurityCode,omitempty"`
	SpeechAPIKey     string `json:"speechApiKey,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}
