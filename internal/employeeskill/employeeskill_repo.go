package employeeskill

import (
	"context"
	"database/sql"

	"go-skills/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employeeskill_repo.go -destination=mock/employeeskill_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, es *EmployeeSkill) error
	FindByEmployee(ctx context.Context, employeeID string) ([]EmployeeSkill, error)
	FindByID(ctx context.Context, id string) (*EmployeeSkill, error)
	Update(ctx context.Context, es *EmployeeSkill) error
	Delete(ctx context.Context, id string) error
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	SkillExists(ctx context.Context, skillID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, es *EmployeeSkill) error {
	return r.db.WithContext(ctx).Omit("Skill").Create(es).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]EmployeeSkill, error) {
	var evals []EmployeeSkill
	err := r.db.WithContext(ctx).
		Preload("Skill").
		Where("employee_id = ?", employeeID).
		Order("evaluation_date DESC").
		Find(&evals).Error
	return evals, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*EmployeeSkill, error) {
	var es EmployeeSkill
	err := r.db.WithContext(ctx).
		Preload("Skill").
		First(&es, "id = ?", id).Error
	return &es, err
}

func (r *repository) Update(ctx context.Context, es *EmployeeSkill) error {
	// Avoid persisting the preloaded Skill projection on save.
	return r.db.WithContext(ctx).Omit("Skill").Save(es).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&EmployeeSkill{}, "id = ?", id).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) SkillExists(ctx context.Context, skillID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("skills").
		Where("id = ?", skillID).
		Count(&count).Error
	return count > 0, err
}
