package position

import (
	"context"
	"database/sql"

	"go-skills/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, pos *Position) error
	FindAll(ctx context.Context) ([]Position, error)
	FindByID(ctx context.Context, id string) (*Position, error)
	Update(ctx context.Context, pos *Position) error
	Delete(ctx context.Context, id string) error
	DetachDependents(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.GORMWithTx(r.db, tx), tx: tx}
}

func (r *repository) Create(ctx context.Context, pos *Position) error {
	return r.db.WithContext(ctx).Create(pos).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Position, error) {
	var positions []Position
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&positions).Error
	return positions, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Position, error) {
	var pos Position
	err := r.db.WithContext(ctx).First(&pos, "id = ?", id).Error
	return &pos, err
}

func (r *repository) Update(ctx context.Context, pos *Position) error {
	return r.db.WithContext(ctx).Save(pos).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Position{}, "id = ?", id).Error
}

// DetachDependents drops the position's requirement rows and unassigns its
// employees before the position row itself goes away.
func (r *repository) DetachDependents(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Exec("DELETE FROM position_skills WHERE position_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Exec("UPDATE employees SET position_id = NULL WHERE position_id = ?", id).Error
}
