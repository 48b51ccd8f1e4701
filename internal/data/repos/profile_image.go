package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/handylink/handylink-backend/internal/domain"
	"github.com/handylink/handylink-backend/internal/pkg/logger"
)

type ProfileImageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, image *domain.ProfileImage) (*domain.ProfileImage, error)
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*domain.ProfileImage, error)
	UpdateURL(ctx context.Context, tx *gorm.DB, userID uuid.UUID, url string, uploadedAt time.Time) error
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type profileImageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileImageRepo(db *gorm.DB, baseLog *logger.Logger) ProfileImageRepo {
	repoLog := baseLog.With("repo", "ProfileImageRepo")
	return &profileImageRepo{db: db, log: repoLog}
}

func (pr *profileImageRepo) Create(ctx context.Context, tx *gorm.DB, image *domain.ProfileImage) (*domain.ProfileImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Create(image).Error; err != nil {
		return nil, err
	}
	return image, nil
}

func (pr *profileImageRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*domain.ProfileImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*domain.ProfileImage
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

func (pr *profileImageRepo) UpdateURL(ctx context.Context, tx *gorm.DB, userID uuid.UUID, url string, uploadedAt time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Model(&domain.ProfileImage{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"profile_img_url": url,
			"uploaded_at":     uploadedAt,
		}).Error
}

func (pr *profileImageRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	res := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.ProfileImage{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
