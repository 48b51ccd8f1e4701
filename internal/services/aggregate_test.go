package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/handylink/handylink-backend/internal/domain"
)

func TestAverageRatingEmpty(t *testing.T) {
	if got := averageRating(nil); got != 0 {
		t.Fatalf("averageRating(nil): got %v, want 0", got)
	}
	if got := averageRating([]*domain.WorkReview{}); got != 0 {
		t.Fatalf("averageRating([]): got %v, want 0", got)
	}
}

func TestAverageRating(t *testing.T) {
	reviews := []*domain.WorkReview{
		{Rating: 3},
		{Rating: 5},
	}
	if got := averageRating(reviews); got != 4 {
		t.Fatalf("averageRating([3 5]): got %v, want 4", got)
	}

	reviews = append(reviews, &domain.WorkReview{Rating: 5})
	want := 13.0 / 3.0
	if got := averageRating(reviews); got != want {
		t.Fatalf("averageRating([3 5 5]): got %v, want %v", got, want)
	}
}

func TestImageSetNeverNil(t *testing.T) {
	workA := uuid.New()
	workB := uuid.New()
	grouped := groupImageURLsByWork([]*domain.WorkImage{
		{WorkID: workA, URL: "https://img/1.jpg"},
		{WorkID: workA, URL: "https://img/2.jpg"},
	})

	if got := imageSet(grouped, workA); len(got) != 2 {
		t.Fatalf("imageSet(workA): got %v", got)
	}

	got := imageSet(grouped, workB)
	if got == nil {
		t.Fatalf("imageSet(workB): got nil, want empty set")
	}
	if len(got) != 0 {
		t.Fatalf("imageSet(workB): got %v, want empty", got)
	}
}

func TestGroupReviewsByWork(t *testing.T) {
	workA := uuid.New()
	workB := uuid.New()
	grouped := groupReviewsByWork([]*domain.WorkReview{
		{WorkID: workA, Rating: 3},
		{WorkID: workA, Rating: 5},
		{WorkID: workB, Rating: 1},
	})
	if len(grouped[workA]) != 2 || len(grouped[workB]) != 1 {
		t.Fatalf("groupReviewsByWork: unexpected grouping %v", grouped)
	}
	if avg := averageRating(grouped[workA]); avg != 4 {
		t.Fatalf("averageRating(workA): got %v, want 4", avg)
	}
	if avg := averageRating(grouped[uuid.New()]); avg != 0 {
		t.Fatalf("averageRating(unknown work): got %v, want 0", avg)
	}
}
