package domain

import (
	"github.com/google/uuid"
)

// WorkImage is a photo attached to a work. A given URL can be attached to
// the same work at most once.
type WorkImage struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	WorkID uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_work_image_work_url;not null" json:"work_id"`
	Work   *Work     `gorm:"constraint:OnDelete:CASCADE;foreignKey:WorkID;references:ID" json:"-"`
	URL    string    `gorm:"uniqueIndex:ux_work_image_work_url;not null;column:work_img_url" json:"work_img_url"`
}

func (WorkImage) TableName() string {
	return "work_image"
}
