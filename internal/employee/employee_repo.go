package employee

import (
	"context"
	"database/sql"

	"go-skills/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	PositionExists(ctx context.Context, positionID string) (bool, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
	DeleteEvaluations(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("Position").Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Preload("Position").
		Order("created_at DESC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Position").
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) PositionExists(ctx context.Context, positionID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("positions").
		Where("id = ?", positionID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	// Avoid persisting the preloaded Position projection on save.
	return r.db.WithContext(ctx).Omit("Position").Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}

// DeleteEvaluations removes the employee's evaluation rows ahead of deleting
// the employee itself.
func (r *repository) DeleteEvaluations(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM employee_skills WHERE employee_id = ?", id).Error
}
