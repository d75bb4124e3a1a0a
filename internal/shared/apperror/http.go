package apperror

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// HTTPError is the flattened shape handlers feed into the response envelope.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP maps any error to an HTTP representation. Unknown errors collapse
// into a generic 500 so internals never leak to clients.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return HTTPError{
			Status:  http.StatusBadRequest,
			Code:    CodeInvalidInput,
			Message: "The provided input is invalid",
			Details: fieldErrors(validationErrs),
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
	}
}

func fieldErrors(errs validator.ValidationErrors) []map[string]string {
	out := make([]map[string]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, map[string]string{
			"field": e.Field(),
			"rule":  e.Tag(),
		})
	}
	return out
}
