package employeeskill

import (
	"errors"
	"strings"

	employeeskillerrors "go-skills/internal/employeeskill/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeskillerrors.ErrEvaluationNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return employeeskillerrors.ErrEvaluationAlreadyExists
		case "23503":
			return employeeskillerrors.ErrSkillNotFound
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return employeeskillerrors.ErrEvaluationAlreadyExists
	}

	return err
}
