package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/recipebox/recipebox-backend/internal/dto"
	"github.com/recipebox/recipebox-backend/internal/service"
	"github.com/recipebox/recipebox-backend/internal/utils"
)

// AuthHandler handles registration and token issuance
type AuthHandler struct {
	users  *service.UserService
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users *service.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new user account with email, password, and name
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} dto.UserResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Duplicate email"
// @Failure 422 {object} dto.ErrorResponse "Invalid field"
// @Router /api/v1/users [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	user, err := h.users.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	h.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	utils.WriteJSONResponse(w, http.StatusCreated, dto.UserResponse{Email: user.Email, Name: user.Name})
}

// Token handles login and returns a token pair
// @Summary Obtain a token pair
// @Description Authenticate with email and password and receive access and refresh tokens
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse "Token pair"
// @Failure 400 {object} dto.ErrorResponse "Invalid credentials"
// @Router /api/v1/token [post]
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	pair, err := h.users.IssueTokens(r.Context(), user, time.Now())
	if err != nil {
		h.logger.Error("token issuance failed", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, pair)
}

// Refresh rotates a refresh token into a new token pair
// @Summary Refresh a token pair
// @Description Exchange a valid refresh token for a new access and refresh token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse "New token pair"
// @Failure 400 {object} dto.ErrorResponse "Invalid refresh token"
// @Router /api/v1/token/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	pair, err := h.users.Refresh(r.Context(), req.Refresh, time.Now())
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, pair)
}
