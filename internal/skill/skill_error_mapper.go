package skill

import (
	"errors"
	"strings"

	skillerrors "go-skills/internal/skill/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return skillerrors.ErrSkillNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return skillerrors.ErrSkillAlreadyExists
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return skillerrors.ErrSkillAlreadyExists
	}

	return err
}
