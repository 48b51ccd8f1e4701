package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/handylink/handylink-backend/internal/domain"
	"github.com/handylink/handylink-backend/internal/pkg/logger"
)

type UserReviewRepo interface {
	Create(ctx context.Context, tx *gorm.DB, review *domain.UserReview) (*domain.UserReview, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, reviewIDs []uuid.UUID) ([]*domain.UserReview, error)
	ListByRevieweeID(ctx context.Context, tx *gorm.DB, revieweeID uuid.UUID) ([]*domain.UserReview, error)
	// UpdateText and DeleteByIDForReviewer are reviewer-scoped; zero rows
	// affected covers both a missing review and someone else's.
	UpdateText(ctx context.Context, tx *gorm.DB, reviewID, reviewerID uuid.UUID, text string) (int64, error)
	DeleteByIDForReviewer(ctx context.Context, tx *gorm.DB, reviewID, reviewerID uuid.UUID) (int64, error)
}

type userReviewRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserReviewRepo(db *gorm.DB, baseLog *logger.Logger) UserReviewRepo {
	repoLog := baseLog.With("repo", "UserReviewRepo")
	return &userReviewRepo{db: db, log: repoLog}
}

func (rr *userReviewRepo) Create(ctx context.Context, tx *gorm.DB, review *domain.UserReview) (*domain.UserReview, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (rr *userReviewRepo) GetByIDs(ctx context.Context, tx *gorm.DB, reviewIDs []uuid.UUID) ([]*domain.UserReview, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []*domain.UserReview
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

func (rr *userReviewRepo) ListByRevieweeID(ctx context.Context, tx *gorm.DB, revieweeID uuid.UUID) ([]*domain.UserReview, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []*domain.UserReview
	if err := transaction.WithContext(ctx).
		Where("reviewee_id = ?", revieweeID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *userReviewRepo) UpdateText(ctx context.Context, tx *gorm.DB, reviewID, reviewerID uuid.UUID, text string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	res := transaction.WithContext(ctx).
		Model(&domain.UserReview{}).
		Where("id = ? AND reviewer_id = ?", reviewID, reviewerID).
		Update("review_text", text)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (rr *userReviewRepo) DeleteByIDForReviewer(ctx context.Context, tx *gorm.DB, reviewID, reviewerID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ? AND reviewer_id = ?", reviewID, reviewerID).
		Delete(&domain.UserReview{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
