package positionskill

import (
	"time"

	"github.com/google/uuid"
)

// PositionSkill links a position to a skill with the target proficiency the
// position demands, on a 1-5 ordinal scale.
type PositionSkill struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	PositionID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SkillID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Skill         *RequiredSkill
	RequiredLevel int       `gorm:"not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (PositionSkill) TableName() string {
	return "position_skills"
}

// RequiredSkill is a read-only projection of the skills table.
type RequiredSkill struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"column:name"`
	Category string    `gorm:"column:category"`
}

func (RequiredSkill) TableName() string {
	return "skills"
}
