package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/handylink/handylink-backend/internal/domain"
	"github.com/handylink/handylink-backend/internal/pkg/logger"
)

type WorkRepo interface {
	Create(ctx context.Context, tx *gorm.DB, work *domain.Work) (*domain.Work, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, workIDs []uuid.UUID) ([]*domain.Work, error)
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*domain.Work, error)
	UpdateTitle(ctx context.Context, tx *gorm.DB, workID uuid.UUID, title string) error
	DeleteByIDForUser(ctx context.Context, tx *gorm.DB, workID, userID uuid.UUID) (int64, error)
}

type workRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWorkRepo(db *gorm.DB, baseLog *logger.Logger) WorkRepo {
	repoLog := baseLog.With("repo", "WorkRepo")
	return &workRepo{db: db, log: repoLog}
}

func (wr *workRepo) Create(ctx context.Context, tx *gorm.DB, work *domain.Work) (*domain.Work, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}
	if err := transaction.WithContext(ctx).Create(work).Error; err != nil {
		return nil, err
	}
	return work, nil
}

func (wr *workRepo) GetByIDs(ctx context.Context, tx *gorm.DB, workIDs []uuid.UUID) ([]*domain.Work, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	var results []*domain.Work
	if len(workIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", workIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (wr *workRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*domain.Work, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	var results []*domain.Work
	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (wr *workRepo) UpdateTitle(ctx context.Context, tx *gorm.DB, workID uuid.UUID, title string) error {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}
	return transaction.WithContext(ctx).
		Model(&domain.Work{}).
		Where("id = ?", workID).
		Update("title", title).Error
}

func (wr *workRepo) DeleteByIDForUser(ctx context.Context, tx *gorm.DB, workID, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", workID, userID).
		Delete(&domain.Work{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
