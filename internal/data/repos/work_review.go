package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/handylink/handylink-backend/internal/domain"
	"github.com/handylink/handylink-backend/internal/pkg/logger"
)

type WorkReviewRepo interface {
	Create(ctx context.Context, tx *gorm.DB, review *domain.WorkReview) (*domain.WorkReview, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, reviewIDs []uuid.UUID) ([]*domain.WorkReview, error)
	GetByWorkIDs(ctx context.Context, tx *gorm.DB, workIDs []uuid.UUID) ([]*domain.WorkReview, error)
	ListByWorkID(ctx context.Context, tx *gorm.DB, workID uuid.UUID) ([]*domain.WorkReview, error)
	Update(ctx context.Context, tx *gorm.DB, reviewID, reviewerID uuid.UUID, rating *int, text *string) (int64, error)
	DeleteByIDForReviewer(ctx context.Context, tx *gorm.DB, reviewID, reviewerID uuid.UUID) (int64, error)
}

type workReviewRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWorkReviewRepo(db *gorm.DB, baseLog *logger.Logger) WorkReviewRepo {
	repoLog := baseLog.With("repo", "WorkReviewRepo")
	return &workReviewRepo{db: db, log: repoLog}
}

func (rr *workReviewRepo) Create(ctx context.Context, tx *gorm.DB, review *domain.WorkReview) (*domain.WorkReview, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (rr *workReviewRepo) GetByIDs(ctx context.Context, tx *gorm.DB, reviewIDs []uuid.UUID) ([]*domain.WorkReview, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []*domain.WorkReview
	if len(reviewIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", reviewIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *workReviewRepo) GetByWorkIDs(ctx context.Context, tx *gorm.DB, workIDs []uuid.UUID) ([]*domain.WorkReview, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []*domain.WorkReview
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

func (rr *workReviewRepo) ListByWorkID(ctx context.Context, tx *gorm.DB, workID uuid.UUID) ([]*domain.WorkReview, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []*domain.WorkReview
	if err := transaction.WithContext(ctx).
		Where("work_id = ?", workID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *workReviewRepo) Update(ctx context.Context, tx *gorm.DB, reviewID, reviewerID uuid.UUID, rating *int, text *string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	updates := map[string]any{}
	if rating != nil {
		updates["rating"] = *rating
	}
	if text != nil {
		updates["review_text"] = *text
	}
	if len(updates) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Model(&domain.WorkReview{}).
		Where("id = ? AND reviewer_id = ?", reviewID, reviewerID).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (rr *workReviewRepo) DeleteByIDForReviewer(ctx context.Context, tx *gorm.DB, reviewID, reviewerID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ? AND reviewer_id = ?", reviewID, reviewerID).
		Delete(&domain.WorkReview{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
