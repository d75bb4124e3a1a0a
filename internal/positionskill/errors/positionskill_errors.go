package positionskillerrors

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
	ErrSkillNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced skill does not exist",
		http.StatusBadRequest,
	)
	ErrRequirementAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"This position already requires that skill",
		http.StatusConflict,
	)
)
