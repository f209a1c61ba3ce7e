package request_models

type CreateExpenseRequest struct {
	TripID      string  `json:"tripId"`
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	// YYYY-MM-DD; today when empty
	Date string `json:"date"`
}
