package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserReview is a directed reviewer->reviewee edge. At most one review per
// pair; a user cannot review themselves.
type UserReview struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"review_id"`
	ReviewerID uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_user_review_pair;not null" json:"reviewer_id"`
	Reviewer   *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:ReviewerID;references:ID" json:"-"`
	RevieweeID uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_user_review_pair;not null" json:"reviewee_id"`
	Reviewee   *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:RevieweeID;references:ID" json:"-"`
	Text       string    `gorm:"not null;column:review_text" json:"review_text"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (UserReview) TableName() string {
	return "user_review"
}
