package employeeskill

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeSkill records one evaluation of an employee's proficiency in a
// skill, on the same 1-5 ordinal scale positions use for requirements. One
// row per (employee, skill) pair; re-evaluations update the row in place.
type EmployeeSkill struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SkillID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Skill          *EvaluatedSkill
	CurrentLevel   int        `gorm:"not null"`
	EvaluatedBy    *uuid.UUID `gorm:"type:uuid"`
	EvaluationDate time.Time  `gorm:"not null"`
	Notes          string
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (EmployeeSkill) TableName() string {
	return "employee_skills"
}

// EvaluatedSkill is a read-only projection of the skills table.
type EvaluatedSkill struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"column:name"`
	Category string    `gorm:"column:category"`
}

func (EvaluatedSkill) TableName() string {
	return "skills"
}
