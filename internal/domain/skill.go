package domain

import (
	"github.com/google/uuid"
)

// Skill is a global catalog entry. It is never scoped to an owner.
type Skill struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"skill_id"`
	Name string    `gorm:"uniqueIndex:ux_skill_name;not null;column:skill_name" json:"skill_name"`
}

func (Skill) TableName() string {
	return "skill"
}
