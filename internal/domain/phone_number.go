package domain

import (
	"time"

	"github.com/google/uuid"
)

// PhoneNumber belongs to exactly one user. Numbers are unique across the
// whole system, not just per account. At most one primary number per user;
// the service layer enforces that inside a transaction.
type PhoneNumber struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"phone_id"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User       *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Number     string    `gorm:"uniqueIndex:ux_phone_number_number;not null;column:phone_number" json:"phone_number"`
	IsPrimary  bool      `gorm:"not null;default:false;column:is_primary" json:"is_primary"`
	IsVerified bool      `gorm:"not null;default:false;column:is_verified" json:"is_verified"`
	AddedAt    time.Time `gorm:"not null;column:added_at" json:"added_at"`
}

func (PhoneNumber) TableName() string {
	return "phone_number"
}
