package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/handylink/handylink-backend/internal/data/repos"
	"github.com/handylink/handylink-backend/internal/data/storeerr"
	"github.com/handylink/handylink-backend/internal/domain"
	"github.com/handylink/handylink-backend/internal/domain/fault"
	"github.com/handylink/handylink-backend/internal/pkg/logger"
)

// UserReviewView is a listed review decorated with the reviewer's public
// identity.
type UserReviewView struct {
	Review                  *domain.UserReview `json:"review"`
	ReviewerFirstName       string             `json:"reviewer_first_name"`
	ReviewerLastName        string             `json:"reviewer_last_name"`
	ReviewerProfileImageURL string             `json:"reviewer_profile_img_url"`
}

type WorkReviewView struct {
	Review                  *domain.WorkReview `json:"review"`
	ReviewerFirstName       string             `json:"reviewer_first_name"`
	ReviewerLastName        string             `json:"reviewer_last_name"`
	ReviewerProfileImageURL string             `json:"reviewer_profile_img_url"`
}

// WorkReviewList carries a work's reviews together with the derived
// statistics computed from the same rows.
type WorkReviewList struct {
	Reviews       []*WorkReviewView `json:"reviews"`
	AverageRating float64           `json:"average_rating"`
	ReviewCount   int               `json:"review_count"`
}

type ReviewService interface {
	CreateUserReview(ctx context.Context, revieweeID uuid.UUID, text string) (*domain.UserReview, error)
	ListUserReviews(ctx context.Context, revieweeID uuid.UUID) ([]*UserReviewView, error)
	UpdateUserReview(ctx context.Context, reviewID uuid.UUID, text string) error
	DeleteUserReview(ctx context.Context, reviewID uuid.UUID) error

	CreateWorkReview(ctx context.Context, workID uuid.UUID, rating int, text string) (*domain.WorkReview, error)
	ListWorkReviews(ctx context.Context, workID uuid.UUID) (*WorkReviewList, error)
	UpdateWorkReview(ctx context.Context, reviewID uuid.UUID, rating *int, text *string) error
	DeleteWorkReview(ctx context.Context, reviewID uuid.UUID) error
}

type reviewService struct {
	log              *logger.Logger
	userRepo         repos.UserRepo
	profileImageRepo repos.ProfileImageRepo
	workRepo         repos.WorkRepo
	userReviewRepo   repos.UserReviewRepo
	workReviewRepo   repos.WorkReviewRepo
}

func NewReviewService(
	log *logger.Logger,
	userRepo repos.UserRepo,
	profileImageRepo repos.ProfileImageRepo,
	workRepo repos.WorkRepo,
	userReviewRepo repos.UserReviewRepo,
	workReviewRepo repos.WorkReviewRepo,
) ReviewService {
	serviceLog := log.With("service", "ReviewService")
	return &reviewService{
		log:              serviceLog,
		userRepo:         userRepo,
		profileImageRepo: profileImageRepo,
		workRepo:         workRepo,
		userReviewRepo:   userReviewRepo,
		workReviewRepo:   workReviewRepo,
	}
}

type reviewerIdentity struct {
	firstName string
	lastName  string
	imageURL  string
}

// reviewerIdentities loads reviewer names and profile images in two batch
// reads, keyed by user id. A missing image leaves the URL empty.
func (rs *reviewService) reviewerIdentities(ctx context.Context, reviewerIDs []uuid.UUID) (map[uuid.UUID]reviewerIdentity, error) {
	seen := make(map[uuid.UUID]bool, len(reviewerIDs))
	unique := make([]uuid.UUID, 0, len(reviewerIDs))
	for _, id := range reviewerIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	identities := make(map[uuid.UUID]reviewerIdentity, len(unique))
	if len(unique) == 0 {
		return identities, nil
	}

	users, uErr := rs.userRepo.GetByIDs(ctx, nil, unique)
	if uErr != nil {
		return nil, uErr
	}
	for _, u := range users {
		identities[u.ID] = reviewerIdentity{firstName: u.FirstName, lastName: u.LastName}
	}

	images, iErr := rs.profileImageRepo.GetByUserIDs(ctx, nil, unique)
	if iErr != nil {
		return nil, iErr
	}
	for _, img := range images {
		identity := identities[img.UserID]
		identity.imageURL = img.URL
		identities[img.UserID] = identity
	}
	return identities, nil
}

func (rs *reviewService) CreateUserReview(ctx context.Context, revieweeID uuid.UUID, text string) (*domain.UserReview, error) {
	const op = "review.user.create"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return nil, aErr
	}
	if err := requireDifferentUser(op, actorID, revieweeID); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fault.New(fault.CodeValidation, op, "review text is required")
	}

	// the reviewee is publicly queryable, so a plain not-found is fine here
	users, gErr := rs.userRepo.GetByIDs(ctx, nil, []uuid.UUID{revieweeID})
	if gErr != nil {
		return nil, storeerr.Map(op, gErr)
	}
	if len(users) == 0 {
		return nil, fault.New(fault.CodeNotFound, op, "user not found")
	}

	review, cErr := rs.userReviewRepo.Create(ctx, nil, &domain.UserReview{
		ID:         uuid.New(),
		ReviewerID: actorID,
		RevieweeID: revieweeID,
		Text:       text,
	})
	if cErr != nil {
		return nil, storeerr.Map(op, cErr)
	}
	return review, nil
}

func (rs *reviewService) ListUserReviews(ctx context.Context, revieweeID uuid.UUID) ([]*UserReviewView, error) {
	const op = "review.user.list"

	reviews, err := rs.userReviewRepo.ListByRevieweeID(ctx, nil, revieweeID)
	if err != nil {
		return nil, storeerr.Map(op, err)
	}

	reviewerIDs := make([]uuid.UUID, 0, len(reviews))
	for _, r := range reviews {
		reviewerIDs = append(reviewerIDs, r.ReviewerID)
	}
	identities, iErr := rs.reviewerIdentities(ctx, reviewerIDs)
	if iErr != nil {
		return nil, storeerr.Map(op, iErr)
	}

	views := make([]*UserReviewView, 0, len(reviews))
	for _, r := range reviews {
		identity := identities[r.ReviewerID]
		views = append(views, &UserReviewView{
			Review:                  r,
			ReviewerFirstName:       identity.firstName,
			ReviewerLastName:        identity.lastName,
			ReviewerProfileImageURL: identity.imageURL,
		})
	}
	return views, nil
}

func (rs *reviewService) UpdateUserReview(ctx context.Context, reviewID uuid.UUID, text string) error {
	const op = "review.user.update"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return aErr
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fault.New(fault.CodeValidation, op, "review text is required")
	}

	rows, uErr := rs.userReviewRepo.UpdateText(ctx, nil, reviewID, actorID, text)
	if uErr != nil {
		return storeerr.Map(op, uErr)
	}
	return affectedOrNotFound(op, rows, "not found or unauthorized")
}

func (rs *reviewService) DeleteUserReview(ctx context.Context, reviewID uuid.UUID) error {
	const op = "review.user.delete"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return aErr
	}

	rows, dErr := rs.userReviewRepo.DeleteByIDForReviewer(ctx, nil, reviewID, actorID)
	if dErr != nil {
		return storeerr.Map(op, dErr)
	}
	return affectedOrNotFound(op, rows, "not found or unauthorized")
}

func (rs *reviewService) CreateWorkReview(ctx context.Context, workID uuid.UUID, rating int, text string) (*domain.WorkReview, error) {
	const op = "review.work.create"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return nil, aErr
	}
	if rating < 1 || rating > 5 {
		return nil, fault.New(fault.CodeValidation, op, "rating must be between 1 and 5")
	}

	works, gErr := rs.workRepo.GetByIDs(ctx, nil, []uuid.UUID{workID})
	if gErr != nil {
		return nil, storeerr.Map(op, gErr)
	}
	if len(works) == 0 {
		return nil, fault.New(fault.CodeNotFound, op, "work not found")
	}
	if err := requireNotWorkOwner(op, actorID, works[0].UserID); err != nil {
		return nil, err
	}

	review, cErr := rs.workReviewRepo.Create(ctx, nil, &domain.WorkReview{
		ID:         uuid.New(),
		ReviewerID: actorID,
		WorkID:     workID,
		Rating:     rating,
		Text:       strings.TrimSpace(text),
	})
	if cErr != nil {
		return nil, storeerr.Map(op, cErr)
	}
	return review, nil
}

func (rs *reviewService) ListWorkReviews(ctx context.Context, workID uuid.UUID) (*WorkReviewList, error) {
	const op = "review.work.list"

	works, gErr := rs.workRepo.GetByIDs(ctx, nil, []uuid.UUID{workID})
	if gErr != nil {
		return nil, storeerr.Map(op, gErr)
	}
	if len(works) == 0 {
		return nil, fault.New(fault.CodeNotFound, op, "work not found")
	}

	reviews, lErr := rs.workReviewRepo.ListByWorkID(ctx, nil, workID)
	if lErr != nil {
		return nil, storeerr.Map(op, lErr)
	}

	reviewerIDs := make([]uuid.UUID, 0, len(reviews))
	for _, r := range reviews {
		reviewerIDs = append(reviewerIDs, r.ReviewerID)
	}
	identities, iErr := rs.reviewerIdentities(ctx, reviewerIDs)
	if iErr != nil {
		return nil, storeerr.Map(op, iErr)
	}

	views := make([]*WorkReviewView, 0, len(reviews))
	for _, r := range reviews {
		identity := identities[r.ReviewerID]
		views = append(views, &WorkReviewView{
			Review:                  r,
			ReviewerFirstName:       identity.firstName,
			ReviewerLastName:        identity.lastName,
			ReviewerProfileImageURL: identity.imageURL,
		})
	}
	return &WorkReviewList{
		Reviews:       views,
		AverageRating: averageRating(reviews),
		ReviewCount:   len(reviews),
	}, nil
}

func (rs *reviewService) UpdateWorkReview(ctx context.Context, reviewID uuid.UUID, rating *int, text *string) error {
	const op = "review.work.update"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return aErr
	}
	if rating == nil && text == nil {
		return fault.New(fault.CodeValidation, op, "nothing to update")
	}
	if rating != nil && (*rating < 1 || *rating > 5) {
		return fault.New(fault.CodeValidation, op, "rating must be between 1 and 5")
	}

	rows, uErr := rs.workReviewRepo.Update(ctx, nil, reviewID, actorID, rating, text)
	if uErr != nil {
		return storeerr.Map(op, uErr)
	}
	return affectedOrNotFound(op, rows, "not found or unauthorized")
}

func (rs *reviewService) DeleteWorkReview(ctx context.Context, reviewID uuid.UUID) error {
	const op = "review.work.delete"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return aErr
	}

	rows, dErr := rs.workReviewRepo.DeleteByIDForReviewer(ctx, nil, reviewID, actorID)
	if dErr != nil {
		return storeerr.Map(op, dErr)
	}
	return affectedOrNotFound(op, rows, "not found or unauthorized")
}
