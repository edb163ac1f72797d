package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	Email     string    `gorm:"size:254;not null;uniqueIndex" json:"email"`
	Name      string    `gorm:"size:150" json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
