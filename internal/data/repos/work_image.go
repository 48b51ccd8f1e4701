package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/handylink/handylink-backend/internal/domain"
	"github.com/handylink/handylink-backend/internal/pkg/logger"
)

type WorkImageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, images []*domain.WorkImage) ([]*domain.WorkImage, error)
	GetByWorkIDs(ctx context.Context, tx *gorm.DB, workIDs []uuid.UUID) ([]*domain.WorkImage, error)
	DeleteByWorkAndURL(ctx context.Context, tx *gorm.DB, workID uuid.UUID, url string) (int64, error)
}

type workImageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWorkImageRepo(db *gorm.DB, baseLog *logger.Logger) WorkImageRepo {
	repoLog := baseLog.With("repo", "WorkImageRepo")
	return &workImageRepo{db: db, log: repoLog}
}

func (wr *workImageRepo) Create(ctx context.Context, tx *gorm.DB, images []*domain.WorkImage) ([]*domain.WorkImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	if len(images) == 0 {
		return []*domain.WorkImage{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (wr *workImageRepo) GetByWorkIDs(ctx context.Context, tx *gorm.DB, workIDs []uuid.UUID) ([]*domain.WorkImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	var results []*domain.WorkImage
	if len(workIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("work_id IN ?", workIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (wr *workImageRepo) DeleteByWorkAndURL(ctx context.Context, tx *gorm.DB, workID uuid.UUID, url string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}
	res := transaction.WithContext(ctx).
		Where("work_id = ? AND work_img_url = ?", workID, url).
		Delete(&domain.WorkImage{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
