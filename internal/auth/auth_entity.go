package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password        string    `gorm:"type:varchar(255);not null"`
	FirstName       string    `gorm:"type:varchar(100)"`
	LastName        string    `gorm:"type:varchar(100)"`
	ProfileImageURL string    `gorm:"type:varchar(512)"`
	Role            string    `gorm:"type:varchar(50);not null;default:'employee'"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}
