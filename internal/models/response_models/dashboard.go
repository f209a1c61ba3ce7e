package response_models

type DestinationCount struct {
	Destination string `json:"destination"`
	Count       int64  `json:"count"`
}

type DashboardSummary struct {
	TotalTrips         int64              `json:"totalTrips"`
	TripsByStatus      map[string]int64   `json:"tripsByStatus"`
	UpcomingTrips      int64              `json:"upcomingTrips"`
	TotalBudget        float64            `json:"totalBudget"`
	TotalExpenses      float64            `json:"totalExpenses"`
	ExpensesByCategory []CategorySpend    `json:"expensesByCategory"`
	TopDestinations    []DestinationCount `json:"topDestinations"`
}

type CategorySpend struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}
