package domain

import (
	"github.com/google/uuid"
)

// HandymanSkill joins a user to a catalog skill with an experience measure.
// A user cannot register the same skill twice.
type HandymanSkill struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_handyman_skill_user_skill;not null" json:"user_id"`
	User       *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	SkillID    uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_handyman_skill_user_skill;not null" json:"skill_id"`
	Skill      *Skill    `gorm:"constraint:OnDelete:CASCADE;foreignKey:SkillID;references:ID" json:"-"`
	Experience string    `gorm:"column:experience" json:"experience"`
}

func (HandymanSkill) TableName() string {
	return "handyman_skill"
}
