package position

import (
	"time"

	"github.com/google/uuid"
)

type Position struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text"`
	Department  string    `gorm:"size:100"`
	Level       string    `gorm:"size:50"` // junior, senior, expert (free text)
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}
