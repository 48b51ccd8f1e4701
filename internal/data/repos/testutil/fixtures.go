package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/handylink/handylink-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *domain.User {
	tb.Helper()
	u := &domain.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedWork(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, title string) *domain.Work {
	tb.Helper()
	w := &domain.Work{
		ID:     uuid.New(),
		UserID: userID,
		Title:  title,
	}
	if err := tx.WithContext(ctx).Create(w).Error; err != nil {
		tb.Fatalf("seed work: %v", err)
	}
	return w
}

func SeedSkill(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Skill {
	tb.Helper()
	s := &domain.Skill{
		ID:   uuid.New(),
		Name: name,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed skill: %v", err)
	}
	return s
}

func SeedWorkReview(tb testing.TB, ctx context.Context, tx *gorm.DB, reviewerID, workID uuid.UUID, rating int) *domain.WorkReview {
	tb.Helper()
	r := &domain.WorkReview{
		ID:         uuid.New(),
		ReviewerID: reviewerID,
		WorkID:     workID,
		Rating:     rating,
		Text:       "review",
		CreatedAt:  time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed work review: %v", err)
	}
	return r
}
