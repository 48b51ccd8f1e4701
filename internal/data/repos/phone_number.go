package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/handylink/handylink-backend/internal/domain"
	"github.com/handylink/handylink-backend/internal/pkg/logger"
)

type PhoneNumberRepo interface {
	Create(ctx context.Context, tx *gorm.DB, phones []*domain.PhoneNumber) ([]*domain.PhoneNumber, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, phoneIDs []uuid.UUID) ([]*domain.PhoneNumber, error)
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*domain.PhoneNumber, error)
	NumberExists(ctx context.Context, tx *gorm.DB, number string) (bool, error)
	// UnsetPrimary clears the primary flag on every phone of the user.
	UnsetPrimary(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
	Update(ctx context.Context, tx *gorm.DB, phone *domain.PhoneNumber) error
	// DeleteByIDForUser deletes only when the phone belongs to the user and
	// reports the affected row count, so a miss and a foreign owner are
	// indistinguishable to the caller.
	DeleteByIDForUser(ctx context.Context, tx *gorm.DB, phoneID, userID uuid.UUID) (int64, error)
}

type phoneNumberRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPhoneNumberRepo(db *gorm.DB, baseLog *logger.Logger) PhoneNumberRepo {
	repoLog := baseLog.With("repo", "PhoneNumberRepo")
	return &phoneNumberRepo{db: db, log: repoLog}
}

func (pr *phoneNumberRepo) Create(ctx context.Context, tx *gorm.DB, phones []*domain.PhoneNumber) ([]*domain.PhoneNumber, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(phones) == 0 {
		return []*domain.PhoneNumber{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&phones).Error; err != nil {
		return nil, err
	}
	return phones, nil
}

func (pr *phoneNumberRepo) GetByIDs(ctx context.Context, tx *gorm.DB, phoneIDs []uuid.UUID) ([]*domain.PhoneNumber, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*domain.PhoneNumber
	if len(phoneIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", phoneIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *phoneNumberRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*domain.PhoneNumber, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*domain.PhoneNumber
	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("is_primary DESC, added_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *phoneNumberRepo) NumberExists(ctx context.Context, tx *gorm.DB, number string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.PhoneNumber{}).
		Where("phone_number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (pr *phoneNumberRepo) UnsetPrimary(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Model(&domain.PhoneNumber{}).
		Where("user_id = ?", userID).
		Update("is_primary", false).Error
}

func (pr *phoneNumberRepo) Update(ctx context.Context, tx *gorm.DB, phone *domain.PhoneNumber) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Model(&domain.PhoneNumber{}).
		Where("id = ?", phone.ID).
		Updates(map[string]any{
			"phone_number": phone.Number,
			"is_primary":   phone.IsPrimary,
		}).Error
}

func (pr *phoneNumberRepo) DeleteByIDForUser(ctx context.Context, tx *gorm.DB, phoneID, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", phoneID, userID).
		Delete(&domain.PhoneNumber{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
