package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfileImage is 1:0..1 with User; writes use upsert semantics.
type ProfileImage struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_profile_image_user;not null" json:"user_id"`
	User       *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	URL        string    `gorm:"not null;column:profile_img_url" json:"profile_img_url"`
	UploadedAt time.Time `gorm:"not null;column:uploaded_at" json:"uploaded_at"`
}

func (ProfileImage) TableName() string {
	return "profile_image"
}
