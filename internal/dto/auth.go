package dto

// RegisterRequest represents the request payload for user registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
	Name     string `json:"name" validate:"required"`
}

// TokenRequest represents the request payload for obtaining a token pair
type TokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents the request payload for rotating a token pair
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// TokenResponse represents the token pair returned after authentication
type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}
