package positionerrors

import (
	"go-skills/internal/shared/apperror"
	"net/http"
)

var (
	ErrPositionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Position not found",
		http.StatusNotFound,
	)
	ErrInvalidPositionID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid position ID",
		http.StatusBadRequest,
	)
)
