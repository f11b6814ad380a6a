package handlers

import (
	"errors"
	"net/http"

	"github.com/recipebox/recipebox-backend/internal/service"
	"github.com/recipebox/recipebox-backend/internal/utils"
)

// writeServiceError maps service-layer errors onto the HTTP error taxonomy:
// 422 for schema-level field failures, 400 for domain-rule violations,
// 404 for anything the caller is not allowed to know exists.
func writeServiceError(w http.ResponseWriter, err error, notFoundDetail string) {
	var verr *service.ValidationError
	var rerr *service.RuleError

	switch {
	case errors.As(err, &verr):
		utils.WriteErrorResponse(w, http.StatusUnprocessableEntity, verr.Detail)
	case errors.As(err, &rerr):
		utils.WriteErrorResponse(w, http.StatusBadRequest, rerr.Detail)
	case errors.Is(err, service.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, notFoundDetail)
	case errors.Is(err, service.ErrDuplicateEmail):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "User with this email already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, service.ErrInvalidRefreshToken):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid refresh token")
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}
