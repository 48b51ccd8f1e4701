package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/handylink/handylink-backend/internal/data/repos"
	"github.com/handylink/handylink-backend/internal/data/storeerr"
	"github.com/handylink/handylink-backend/internal/data/txn"
	"github.com/handylink/handylink-backend/internal/domain"
	"github.com/handylink/handylink-backend/internal/domain/fault"
	"github.com/handylink/handylink-backend/internal/pkg/dbctx"
	"github.com/handylink/handylink-backend/internal/pkg/logger"
)

// WorkView is a work with its derived read-time statistics. Nothing in it
// beyond the Work row is stored.
type WorkView struct {
	Work          *domain.Work `json:"work"`
	ImageURLs     []string     `json:"image_urls"`
	AverageRating float64      `json:"average_rating"`
	ReviewCount   int          `json:"review_count"`
}

type WorkService interface {
	// CreateWork inserts the work and all its images atomically; a failed
	// image leaves no work behind.
	CreateWork(ctx context.Context, title string, imageURLs []string) (*WorkView, error)
	GetWork(ctx context.Context, workID uuid.UUID) (*WorkView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*WorkView, error)
	UpdateTitle(ctx context.Context, workID uuid.UUID, title string) (*domain.Work, error)
	DeleteWork(ctx context.Context, workID uuid.UUID) error
	AddImage(ctx context.Context, workID uuid.UUID, url string) (*domain.WorkImage, error)
	RemoveImage(ctx context.Context, workID uuid.UUID, url string) error
}

type workService struct {
	log        *logger.Logger
	tx         txn.TxRunner
	workRepo   repos.WorkRepo
	imageRepo  repos.WorkImageRepo
	reviewRepo repos.WorkReviewRepo
}

func NewWorkService(
	log *logger.Logger,
	tx txn.TxRunner,
	workRepo repos.WorkRepo,
	imageRepo repos.WorkImageRepo,
	reviewRepo repos.WorkReviewRepo,
) WorkService {
	serviceLog := log.With("service", "WorkService")
	return &workService{
		log:        serviceLog,
		tx:         tx,
		workRepo:   workRepo,
		imageRepo:  imageRepo,
		reviewRepo: reviewRepo,
	}
}

func (ws *workService) CreateWork(ctx context.Context, title string, imageURLs []string) (*WorkView, error) {
	const op = "work.create"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return nil, aErr
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fault.New(fault.CodeValidation, op, "title is required")
	}

	work := &domain.Work{
		ID:     uuid.New(),
		UserID: actorID,
		Title:  title,
	}
	images := make([]*domain.WorkImage, 0, len(imageURLs))
	for _, url := range imageURLs {
		url = strings.TrimSpace(url)
		if url == "" {
			return nil, fault.New(fault.CodeValidation, op, "image url must not be empty")
		}
		images = append(images, &domain.WorkImage{
			ID:     uuid.New(),
			WorkID: work.ID,
			URL:    url,
		})
	}

	if err := ws.tx.InTx(ctx, func(dbc dbctx.Context) error {
		if _, cErr := ws.workRepo.Create(dbc.Ctx, dbc.Tx, work); cErr != nil {
			return cErr
		}
		_, iErr := ws.imageRepo.Create(dbc.Ctx, dbc.Tx, images)
		return iErr
	}); err != nil {
		return nil, storeerr.Map(op, err)
	}

	ws.log.Info("work created", "work_id", work.ID, "images", len(images))
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.URL)
	}
	return &WorkView{Work: work, ImageURLs: urls, AverageRating: 0, ReviewCount: 0}, nil
}

func (ws *workService) GetWork(ctx context.Context, workID uuid.UUID) (*WorkView, error) {
	const op = "work.get"

	works, gErr := ws.workRepo.GetByIDs(ctx, nil, []uuid.UUID{workID})
	if gErr != nil {
		return nil, storeerr.Map(op, gErr)
	}
	if len(works) == 0 {
		return nil, fault.New(fault.CodeNotFound, op, "work not found")
	}

	views, vErr := ws.assembleViews(ctx, op, works)
	if vErr != nil {
		return nil, vErr
	}
	return views[0], nil
}

func (ws *workService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*WorkView, error) {
	const op = "work.list"

	works, gErr := ws.workRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
	if gErr != nil {
		return nil, storeerr.Map(op, gErr)
	}
	return ws.assembleViews(ctx, op, works)
}

func (ws *workService) UpdateTitle(ctx context.Context, workID uuid.UUID, title string) (*domain.Work, error) {
	const op = "work.update_title"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return nil, aErr
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fault.New(fault.CodeValidation, op, "title is required")
	}

	work, oErr := ws.ownedWork(ctx, op, workID, actorID)
	if oErr != nil {
		return nil, oErr
	}

	if err := ws.workRepo.UpdateTitle(ctx, nil, workID, title); err != nil {
		return nil, storeerr.Map(op, err)
	}
	work.Title = title
	return work, nil
}

func (ws *workService) DeleteWork(ctx context.Context, workID uuid.UUID) error {
	const op = "work.delete"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return aErr
	}

	rows, dErr := ws.workRepo.DeleteByIDForUser(ctx, nil, workID, actorID)
	if dErr != nil {
		return storeerr.Map(op, dErr)
	}
	return affectedOrNotFound(op, rows, "not found or unauthorized")
}

func (ws *workService) AddImage(ctx context.Context, workID uuid.UUID, url string) (*domain.WorkImage, error) {
	const op = "work.image.add"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return nil, aErr
	}

	url = strings.TrimSpace(url)
	if url == "" {
		return nil, fault.New(fault.CodeValidation, op, "image url is required")
	}

	if _, oErr := ws.ownedWork(ctx, op, workID, actorID); oErr != nil {
		return nil, oErr
	}

	image := &domain.WorkImage{ID: uuid.New(), WorkID: workID, URL: url}
	if _, cErr := ws.imageRepo.Create(ctx, nil, []*domain.WorkImage{image}); cErr != nil {
		return nil, storeerr.Map(op, cErr)
	}
	return image, nil
}

func (ws *workService) RemoveImage(ctx context.Context, workID uuid.UUID, url string) error {
	const op = "work.image.remove"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return aErr
	}

	if _, oErr := ws.ownedWork(ctx, op, workID, actorID); oErr != nil {
		return oErr
	}

	rows, dErr := ws.imageRepo.DeleteByWorkAndURL(ctx, nil, workID, url)
	if dErr != nil {
		return storeerr.Map(op, dErr)
	}
	return affectedOrNotFound(op, rows, "image not found")
}

// ownedWork loads a work and collapses "missing" and "not yours" into the
// same not-found outcome.
func (ws *workService) ownedWork(ctx context.Context, op string, workID, actorID uuid.UUID) (*domain.Work, error) {
	works, gErr := ws.workRepo.GetByIDs(ctx, nil, []uuid.UUID{workID})
	if gErr != nil {
		return nil, storeerr.Map(op, gErr)
	}
	var work *domain.Work
	if len(works) > 0 {
		work = works[0]
	}
	ownerID := uuid.Nil
	if work != nil {
		ownerID = work.UserID
	}
	if err := requireOwner(op, work != nil, actorID, ownerID); err != nil {
		return nil, err
	}
	return work, nil
}

// assembleViews decorates works with their image sets and review
// statistics using two batch reads, regardless of how many works there are.
func (ws *workService) assembleViews(ctx context.Context, op string, works []*domain.Work) ([]*WorkView, error) {
	views := make([]*WorkView, 0, len(works))
	if len(works) == 0 {
		return views, nil
	}

	workIDs := make([]uuid.UUID, 0, len(works))
	for _, w := range works {
		workIDs = append(workIDs, w.ID)
	}

	images, iErr := ws.imageRepo.GetByWorkIDs(ctx, nil, workIDs)
	if iErr != nil {
		return nil, storeerr.Map(op, iErr)
	}
	reviews, rErr := ws.reviewRepo.GetByWorkIDs(ctx, nil, workIDs)
	if rErr != nil {
		return nil, storeerr.Map(op, rErr)
	}

	groupedImages := groupImageURLsByWork(images)
	groupedReviews := groupReviewsByWork(reviews)
	for _, w := range works {
		workReviews := groupedReviews[w.ID]
		views = append(views, &WorkView{
			Work:          w,
			ImageURLs:     imageSet(groupedImages, w.ID),
			AverageRating: averageRating(workReviews),
			ReviewCount:   len(workReviews),
		})
	}
	return views, nil
}
