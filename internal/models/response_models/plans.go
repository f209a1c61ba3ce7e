package response_models

type Activity struct {
	Time          string  `json:"time"`
	Title         string  `json:"title"`
	Location      string  `json:"location"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimatedCost"`
	Duration      string  `json:"duration"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

type BudgetItem struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// TripPlanResponse is the plan shape both requested from the model and returned to clients.
type TripPlanResponse struct {
	Itinerary       []DayPlan    `json:"itinerary"`
	BudgetBreakdown []BudgetItem `json:"budgetBreakdown"`
	Tips            []string     `json:"tips"`
	Recommendations []string     `json:"recommendations"`
}

func (p *TripPlanResponse) TotalBudget() float64 {
	var sum float64
	for _, item := range p.BudgetBreakdown {
		sum += item.Amount
	}
	return sum
}
