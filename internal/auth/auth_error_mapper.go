package auth

import (
	"errors"
	"strings"

	autherrors "go-skills/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return autherrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return autherrors.ErrEmailAlreadyUsed
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return autherrors.ErrEmailAlreadyUsed
	}

	return err
}
