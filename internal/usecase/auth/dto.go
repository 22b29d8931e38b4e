package auth

// SignupRequest represents the request payload for creating an account.
type SignupRequest struct {
	Email     string `validate:"required,email"`
	Password  string `validate:"required"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
}

// LoginRequest represents the request payload for exchanging credentials for a token.
type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// TokenResponse carries a signed access token.
type TokenResponse struct {
	AccessToken string
}
