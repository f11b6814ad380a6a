package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/recipebox/recipebox-backend/internal/dto"
	"github.com/recipebox/recipebox-backend/internal/models"
	"github.com/recipebox/recipebox-backend/internal/service"
	"github.com/recipebox/recipebox-backend/internal/utils"
)

// UsersHandler manages account endpoints
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler creates a new UsersHandler instance
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

func userToResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{Email: user.Email, Name: user.Name}
}

// List handles GET /api/v1/users
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/users [get]
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	users, err := h.users.List(r.Context(), identity)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userToResponse(&users[i]))
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// Me handles GET /api/v1/me
// @Summary Retrieve the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/me [get]
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, userToResponse(identity))
}

// UserDetail dispatches PATCH /api/v1/users/{id} and /api/v1/users/{id}/password
func (h *UsersHandler) UserDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/users/")
	idStr, tail, _ := strings.Cut(rest, "/")

	// An unparsable id is indistinguishable from an unknown one
	targetID, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	switch tail {
	case "":
		h.updateName(w, r, targetID)
	case "password":
		h.updatePassword(w, r, targetID)
	default:
		utils.WriteErrorResponse(w, http.StatusNotFound, "User not found")
	}
}

// updateName handles PATCH /api/v1/users/{id}
// @Summary Update a user's name
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "New name"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/users/{id} [patch]
func (h *UsersHandler) updateName(w http.ResponseWriter, r *http.Request, targetID uuid.UUID) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.UpdateUserRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	user, err := h.users.UpdateName(r.Context(), identity, targetID, req.Name)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, userToResponse(user))
}

// updatePassword handles PATCH /api/v1/users/{id}/password
// @Summary Update a user's password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body dto.UpdatePasswordRequest true "New password"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/users/{id}/password [patch]
func (h *UsersHandler) updatePassword(w http.ResponseWriter, r *http.Request, targetID uuid.UUID) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.UpdatePasswordRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	user, err := h.users.UpdatePassword(r.Context(), identity, targetID, req.Password)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, userToResponse(user))
}
