package employeeskillerrors

import (
	"go-skills/internal/shared/apperror"
	"net/http"
)

var (
	ErrEvaluationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Skill evaluation not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrSkillNotFound = apperror.New(
		apperror.CodeNotFound,
		"Skill not found",
		http.StatusNotFound,
	)
	ErrEvaluationAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee already has an evaluation for this skill",
		http.StatusConflict,
	)
)
