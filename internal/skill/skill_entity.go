package skill

import (
	"time"

	"github.com/google/uuid"
)

// Skill categories on the catalog.
const (
	CategoryTechnical       = "technical"
	CategoryManagerial      = "managerial"
	CategoryBehavioral      = "behavioral"
	CategoryCrossFunctional = "cross-functional"
)

type Skill struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"size:100;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}
