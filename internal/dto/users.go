package dto

// UserResponse represents user data in API responses
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UpdateUserRequest represents fields allowed when renaming a user
type UpdateUserRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdatePasswordRequest represents the payload for changing a user's password
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=5"`
}
