package domain

import (
	"time"

	"github.com/google/uuid"
)

// Work is a portfolio entry owned by its creator. Only the owner may
// mutate or delete it.
type Work struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"work_id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Title     string    `gorm:"not null;column:title" json:"title"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Work) TableName() string {
	return "work"
}
