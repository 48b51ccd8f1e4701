package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkReview is a rated reviewer->work edge. At most one review per
// (reviewer, work); the reviewer must not own the work.
type WorkReview struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"review_id"`
	ReviewerID uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_work_review_pair;not null" json:"reviewer_id"`
	Reviewer   *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:ReviewerID;references:ID" json:"-"`
	WorkID     uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_work_review_pair;not null" json:"work_id"`
	Work       *Work     `gorm:"constraint:OnDelete:CASCADE;foreignKey:WorkID;references:ID" json:"-"`
	Rating     int       `gorm:"not null;column:rating" json:"rating"`
	Text       string    `gorm:"column:review_text" json:"review_text"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (WorkReview) TableName() string {
	return "work_review"
}
