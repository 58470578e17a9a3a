// backend/shared/go-dtos/error_dtos.go
package dtos

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorDetail is a shared DTO for structured validation error responses.
type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// NewValidationErrorDetails flattens validator errors into details. Any other
// error yields nil.
func NewValidationErrorDetails(err error) []ValidationErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]ValidationErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationErrorDetail{
			Field:   strings.ToLower(fe.Field()[:1]) + fe.Field()[1:],
			Message: validationMessage(fe),
			Code:    fe.Tag(),
		})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}
