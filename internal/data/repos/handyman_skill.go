package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/handylink/handylink-backend/internal/domain"
	"github.com/handylink/handylink-backend/internal/pkg/logger"
)

type HandymanSkillRepo interface {
	Create(ctx context.Context, tx *gorm.DB, hs *domain.HandymanSkill) (*domain.HandymanSkill, error)
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*domain.HandymanSkill, error)
	// UpdateExperience is owner-scoped; zero rows affected covers both a
	// missing registration and someone else's.
	UpdateExperience(ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID, experience string) (int64, error)
	DeleteByUserAndSkill(ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID) (int64, error)
}

type handymanSkillRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHandymanSkillRepo(db *gorm.DB, baseLog *logger.Logger) HandymanSkillRepo {
	repoLog := baseLog.With("repo", "HandymanSkillRepo")
	return &handymanSkillRepo{db: db, log: repoLog}
}

func (hr *handymanSkillRepo) Create(ctx context.Context, tx *gorm.DB, hs *domain.HandymanSkill) (*domain.HandymanSkill, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	if err := transaction.WithContext(ctx).Create(hs).Error; err != nil {
		return nil, err
	}
	return hs, nil
}

func (hr *handymanSkillRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*domain.HandymanSkill, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}

	var results []*domain.HandymanSkill
	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (hr *handymanSkillRepo) UpdateExperience(ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID, experience string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	res := transaction.WithContext(ctx).
		Model(&domain.HandymanSkill{}).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		Update("experience", experience)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (hr *handymanSkillRepo) DeleteByUserAndSkill(ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	res := transaction.WithContext(ctx).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		Delete(&domain.HandymanSkill{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
