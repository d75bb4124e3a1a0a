package positionskill

import (
	"context"
	"database/sql"

	"go-skills/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=positionskill_repo.go -destination=mock/positionskill_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, ps *PositionSkill) error
	FindByPosition(ctx context.Context, positionID string) ([]PositionSkill, error)
	DeleteByPair(ctx context.Context, positionID, skillID string) error
	PositionExists(ctx context.Context, positionID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, ps *PositionSkill) error {
	return r.db.WithContext(ctx).Omit("Skill").Create(ps).Error
}

func (r *repository) FindByPosition(ctx context.Context, positionID string) ([]PositionSkill, error) {
	var links []PositionSkill
	err := r.db.WithContext(ctx).
		Preload("Skill").
		Where("position_id = ?", positionID).
		Order("created_at DESC").
		Find(&links).Error
	return links, err
}

func (r *repository) DeleteByPair(ctx context.Context, positionID, skillID string) error {
	return r.db.WithContext(ctx).
		Where("position_id = ?", positionID).
		Where("skill_id = ?", skillID).
		Delete(&PositionSkill{}).Error
}

func (r *repository) PositionExists(ctx context.Context, positionID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("positions").
		Where("id = ?", positionID).
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
