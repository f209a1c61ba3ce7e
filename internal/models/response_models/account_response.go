package response_models

type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

type AuthResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}
