package skillerrors

import (
	"go-skills/internal/shared/apperror"
	"net/http"
)

var (
	ErrSkillNotFound = apperror.New(
		apperror.CodeNotFound,
		"Skill not found",
		http.StatusNotFound,
	)
	ErrSkillAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A skill with the same name already exists",
		http.StatusConflict,
	)
	ErrInvalidSkillID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid skill ID",
		http.StatusBadRequest,
	)
)
