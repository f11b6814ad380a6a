package dto

// CreateRecipeRequest represents the payload to create a recipe
type CreateRecipeRequest struct {
	Title       string  `json:"title"`
	TimeMinutes int     `json:"time_minutes"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Link        string  `json:"link"`
}

// UpdateRecipeRequest represents fields allowed to update a recipe
// All fields are optional; only provided ones will be updated
type UpdateRecipeRequest struct {
	Title       *string  `json:"title"`
	TimeMinutes *int     `json:"time_minutes"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Link        *string  `json:"link"`
}

// RecipeResponse represents a recipe object in responses
type RecipeResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	TimeMinutes int     `json:"time_minutes"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Link        string  `json:"link"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
