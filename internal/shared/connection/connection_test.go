package connection_test

import (
	"testing"

	"go-skills/internal/shared/connection"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestGORMWithTx_BindsTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	base, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	mock.ExpectBegin()
	tx, err := db.Begin()
	assert.NoError(t, err)

	bound := connection.GORMWithTx(base, tx)

	assert.NotSame(t, base, bound)
	assert.Equal(t, gorm.ConnPool(tx), bound.Statement.ConnPool)

	// The base handle keeps running on the pool.
	assert.Equal(t, gorm.ConnPool(db), base.Statement.ConnPool)
}

func TestGORMWithTx_StatementsRunOnTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	base, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM position_skills").
		WithArgs("skill-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	tx, err := db.Begin()
	assert.NoError(t, err)

	bound := connection.GORMWithTx(base, tx)
	err = bound.Exec("DELETE FROM position_skills WHERE skill_id = ?", "skill-1").Error
	assert.NoError(t, err)

	assert.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}
