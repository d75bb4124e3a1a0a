package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	FirstName  string     `gorm:"size:100;not null"`
	LastName   string     `gorm:"size:100;not null"`
	Email      string     `gorm:"size:255"`
	PositionID *uuid.UUID `gorm:"type:uuid;index"`
	Position   *EmployeePosition
	Department string     `gorm:"size:100"`
	HireDate   *time.Time
	IsActive   bool      `gorm:"default:true"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// EmployeePosition is a read-only projection of the positions table used for
// preloading the assignment without importing the position package.
type EmployeePosition struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string    `gorm:"column:title"`
}

func (EmployeePosition) TableName() string {
	return "positions"
}
