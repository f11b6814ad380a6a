package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recipebox/recipebox-backend/internal/dto"
	"github.com/recipebox/recipebox-backend/internal/models"
	"github.com/recipebox/recipebox-backend/internal/service"
	"github.com/recipebox/recipebox-backend/internal/utils"
)

// RecipesHandler manages recipe endpoints
type RecipesHandler struct {
	recipes *service.RecipeService
}

// NewRecipesHandler creates a new RecipesHandler instance
func NewRecipesHandler(recipes *service.RecipeService) *RecipesHandler {
	return &RecipesHandler{recipes: recipes}
}

func recipeToResponse(recipe *models.Recipe) dto.RecipeResponse {
	return dto.RecipeResponse{
		ID:          recipe.ID.String(),
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Description: recipe.Description,
		Link:        recipe.Link,
		CreatedAt:   recipe.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   recipe.UpdatedAt.Format(time.RFC3339),
	}
}

// Recipes dispatches by HTTP method for /api/v1/recipes
func (h *RecipesHandler) Recipes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.List(w, r)
	case http.MethodPost:
		h.Create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// RecipeDetail dispatches by HTTP method for /api/v1/recipes/{id}
func (h *RecipesHandler) RecipeDetail(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/v1/recipes/")

	// An unparsable id is indistinguishable from an unknown one
	recipeID, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Recipe not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.Get(w, r, recipeID)
	case http.MethodPatch:
		h.Update(w, r, recipeID)
	case http.MethodDelete:
		h.Delete(w, r, recipeID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// List handles GET /api/v1/recipes
// @Summary List the authenticated user's recipes
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.RecipeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/recipes [get]
func (h *RecipesHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	recipes, err := h.recipes.List(r.Context(), identity)
	if err != nil {
		writeServiceError(w, err, "Recipe not found")
		return
	}

	out := make([]dto.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, recipeToResponse(&recipes[i]))
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// Create handles POST /api/v1/recipes
// @Summary Create a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRecipeRequest true "Recipe payload"
// @Success 200 {object} dto.RecipeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/recipes [post]
func (h *RecipesHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.CreateRecipeRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	recipe, err := h.recipes.Create(r.Context(), identity, req)
	if err != nil {
		writeServiceError(w, err, "Recipe not found")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, recipeToResponse(recipe))
}

// Get handles GET /api/v1/recipes/{id}
// @Summary Get a recipe
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Success 200 {object} dto.RecipeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/recipes/{id} [get]
func (h *RecipesHandler) Get(w http.ResponseWriter, r *http.Request, recipeID uuid.UUID) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	recipe, err := h.recipes.Get(r.Context(), identity, recipeID)
	if err != nil {
		writeServiceError(w, err, "Recipe not found")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, recipeToResponse(recipe))
}

// Update handles PATCH /api/v1/recipes/{id}
// @Summary Partially update a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Param request body dto.UpdateRecipeRequest true "Fields to update"
// @Success 200 {object} dto.RecipeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/recipes/{id} [patch]
func (h *RecipesHandler) Update(w http.ResponseWriter, r *http.Request, recipeID uuid.UUID) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.UpdateRecipeRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	recipe, err := h.recipes.Update(r.Context(), identity, recipeID, req)
	if err != nil {
		writeServiceError(w, err, "Recipe not found")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, recipeToResponse(recipe))
}

// Delete handles DELETE /api/v1/recipes/{id}
// @Summary Delete a recipe
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Success 200 {object} dto.ErrorResponse "Recipe deleted"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/recipes/{id} [delete]
func (h *RecipesHandler) Delete(w http.ResponseWriter, r *http.Request, recipeID uuid.UUID) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.recipes.Delete(r.Context(), identity, recipeID); err != nil {
		writeServiceError(w, err, "Recipe not found")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ErrorResponse{Detail: "Recipe deleted"})
}
