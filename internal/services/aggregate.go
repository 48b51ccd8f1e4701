package services

import (
	"github.com/google/uuid"

	"github.com/handylink/handylink-backend/internal/domain"
)

// Read-time derivations over review and image collections. Nothing here is
// ever persisted; statistics are recomputed on every read.

// averageRating returns the mean rating, or 0 when there are no reviews.
func averageRating(reviews []*domain.WorkReview) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// groupImageURLsByWork buckets image URLs per work. Callers index the
// result with imageSet to keep per-work sets empty rather than nil.
func groupImageURLsByWork(images []*domain.WorkImage) map[uuid.UUID][]string {
	grouped := make(map[uuid.UUID][]string, len(images))
	for _, img := range images {
		grouped[img.WorkID] = append(grouped[img.WorkID], img.URL)
	}
	return grouped
}

func groupReviewsByWork(reviews []*domain.WorkReview) map[uuid.UUID][]*domain.WorkReview {
	grouped := make(map[uuid.UUID][]*domain.WorkReview, len(reviews))
	for _, r := range reviews {
		grouped[r.WorkID] = append(grouped[r.WorkID], r)
	}
	return grouped
}

// imageSet returns the work's image URLs, empty (never nil) when absent.
func imageSet(grouped map[uuid.UUID][]string, workID uuid.UUID) []string {
	if urls, ok := grouped[workID]; ok {
		return urls
	}
	return []string{}
}
