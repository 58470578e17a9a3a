package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-dtos"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

var validate = validator.New()

// decodeAndValidate reads a JSON body into dst and runs the struct tags. On
// failure the error response is already written and false is returned.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", err)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		details := dtos.NewValidationErrorDetails(err)
		if len(details) == 0 {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", err)
			return false
		}
		// First failure doubles as the human readable error.
		utils.RespondErrorWithDetails(w, http.StatusBadRequest, utils.ErrCodeValidation, details[0].Message, details, err)
		return false
	}
	return true
}

// respondServiceError maps service errors onto the JSON error envelope.
func respondServiceError(w http.ResponseWriter, err error) {
	var appErr *utils.AppError
	switch {
	case errors.As(err, &appErr):
		utils.HandleAppError(w, err)
	case errors.Is(err, utils.ErrAgentNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Agent not found", err)
	case errors.Is(err, utils.ErrUserNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "User not found", err)
	default:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "An unexpected error occurred", err)
	}
}

// pathVar returns the decoded route variable. Routers built with
// UseEncodedPath hand back the raw segment so an escaped "/" survives matching.
func pathVar(r *http.Request, name string) string {
	raw := mux.Vars(r)[name]
	v, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return v
}
