package skill

import (
	"context"
	"database/sql"

	"go-skills/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=skill_repo.go -destination=mock/skill_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, skill *Skill) error
	FindAll(ctx context.Context) ([]Skill, error)
	FindByID(ctx context.Context, id string) (*Skill, error)
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id string) error
	DeleteDependents(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, skill *Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Skill, error) {
	var skills []Skill
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&skills).Error
	return skills, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Skill, error) {
	var skill Skill
	err := r.db.WithContext(ctx).First(&skill, "id = ?", id).Error
	return &skill, err
}

func (r *repository) Update(ctx context.Context, skill *Skill) error {
	return r.db.WithContext(ctx).Save(skill).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Skill{}, "id = ?", id).Error
}

// DeleteDependents removes requirement and evaluation rows pointing at the
// skill so a catalog delete never leaves dangling references.
func (r *repository) DeleteDependents(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Exec("DELETE FROM position_skills WHERE skill_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Exec("DELETE FROM employee_skills WHERE skill_id = ?", id).Error
}
