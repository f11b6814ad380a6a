package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/recipebox/recipebox-backend/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes an error body with a human-readable detail field
func WriteErrorResponse(w http.ResponseWriter, status int, detail string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Detail: detail})
}

// DecodeJSONRequest decodes the request body into v. Type mismatches are
// schema-level failures (422); anything else unreadable is a 400. The error
// response is already written when a non-nil error is returned.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		WriteErrorResponse(w, http.StatusUnprocessableEntity, "invalid type for field "+typeErr.Field)
		return err
	}

	WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
	return err
}
