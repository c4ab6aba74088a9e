package types

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,printascii" example:"ada"`
	Email    string `json:"email" validate:"required,email,max=100" example:"ada@example.com"`
	// bcrypt rejects inputs beyond 72 bytes.
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ada@example.com"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}
