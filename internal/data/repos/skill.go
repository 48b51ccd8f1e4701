package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/handylink/handylink-backend/internal/domain"
	"github.com/handylink/handylink-backend/internal/pkg/logger"
)

type SkillRepo interface {
	Create(ctx context.Context, tx *gorm.DB, skill *domain.Skill) (*domain.Skill, error)
	List(ctx context.Context, tx *gorm.DB) ([]*domain.Skill, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, skillIDs []uuid.UUID) ([]*domain.Skill, error)
}

type skillRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSkillRepo(db *gorm.DB, baseLog *logger.Logger) SkillRepo {
	repoLog := baseLog.With("repo", "SkillRepo")
	return &skillRepo{db: db, log: repoLog}
}

func (sr *skillRepo) Create(ctx context.Context, tx *gorm.DB, skill *domain.Skill) (*domain.Skill, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if err := transaction.WithContext(ctx).Create(skill).Error; err != nil {
		return nil, err
	}
	return skill, nil
}

func (sr *skillRepo) List(ctx context.Context, tx *gorm.DB) ([]*domain.Skill, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*domain.Skill
	if err := transaction.WithContext(ctx).
		Order("skill_name").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *skillRepo) GetByIDs(ctx context.Context, tx *gorm.DB, skillIDs []uuid.UUID) ([]*domain.Skill, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*domain.Skill
	if len(skillIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", skillIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
