package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/handylink/handylink-backend/internal/domain"
	"github.com/handylink/handylink-backend/internal/domain/fault"
	"github.com/handylink/handylink-backend/internal/pkg/dbctx"
	"github.com/handylink/handylink-backend/internal/pkg/logger"
	"github.com/handylink/handylink-backend/internal/requestdata"
)

// memStore is the shared in-memory state behind the fake repos. The fake
// transaction runner snapshots it before the closure and restores it on
// error, mirroring a database rollback.
type memStore struct {
	users         []*domain.User
	phones        []*domain.PhoneNumber
	profileImages []*domain.ProfileImage
	skills        []*domain.Skill
	handyman      []*domain.HandymanSkill
	works         []*domain.Work
	workImages    []*domain.WorkImage
	userReviews   []*domain.UserReview
	workReviews   []*domain.WorkReview
}

func cloneRows[T any](rows []*T) []*T {
	out := make([]*T, len(rows))
	for i, r := range rows {
		c := *r
		out[i] = &c
	}
	return out
}

func (s *memStore) clone() *memStore {
	return &memStore{
		users:         cloneRows(s.users),
		phones:        cloneRows(s.phones),
		profileImages: cloneRows(s.profileImages),
		skills:        cloneRows(s.skills),
		handyman:      cloneRows(s.handyman),
		works:         cloneRows(s.works),
		workImages:    cloneRows(s.workImages),
		userReviews:   cloneRows(s.userReviews),
		workReviews:   cloneRows(s.workReviews),
	}
}

type fakeTxRunner struct {
	store *memStore
}

func (r *fakeTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	snapshot := r.store.clone()
	if err := fn(dbctx.Context{Ctx: ctx}); err != nil {
		*r.store = *snapshot
		return err
	}
	return nil
}

type fakeUserRepo struct{ s *memStore }

func (f *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, users []*domain.User) ([]*domain.User, error) {
	for _, u := range users {
		for _, existing := range f.s.users {
			if existing.Email == u.Email {
				return nil, fault.Conflict(fault.KindEmailTaken, "store", "this email is already registered")
			}
		}
		f.s.users = append(f.s.users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) GetByIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range f.s.users {
		for _, id := range userIDs {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetByEmails(ctx context.Context, tx *gorm.DB, userEmails []string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range f.s.users {
		for _, email := range userEmails {
			if u.Email == email {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, userEmail string) (bool, error) {
	for _, u := range f.s.users {
		if u.Email == userEmail {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateName(ctx context.Context, tx *gorm.DB, userID uuid.UUID, firstName, lastName string) error {
	for _, u := range f.s.users {
		if u.ID == userID {
			u.FirstName = firstName
			u.LastName = lastName
		}
	}
	return nil
}

type fakePhoneRepo struct{ s *memStore }

func (f *fakePhoneRepo) Create(ctx context.Context, tx *gorm.DB, phones []*domain.PhoneNumber) ([]*domain.PhoneNumber, error) {
	for _, p := range phones {
		for _, existing := range f.s.phones {
			if existing.Number == p.Number {
				return nil, fault.Conflict(fault.KindPhoneAlreadyRegistered, "store", "this phone number is already registered")
			}
		}
		f.s.phones = append(f.s.phones, p)
	}
	return phones, nil
}

func (f *fakePhoneRepo) GetByIDs(ctx context.Context, tx *gorm.DB, phoneIDs []uuid.UUID) ([]*domain.PhoneNumber, error) {
	var out []*domain.PhoneNumber
	for _, p := range f.s.phones {
		for _, id := range phoneIDs {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *fakePhoneRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*domain.PhoneNumber, error) {
	var out []*domain.PhoneNumber
	for _, p := range f.s.phones {
		for _, id := range userIDs {
			if p.UserID == id {
				out = append(out, p)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsPrimary != out[j].IsPrimary {
			return out[i].IsPrimary
		}
		return out[i].AddedAt.After(out[j].AddedAt)
	})
	return out, nil
}

func (f *fakePhoneRepo) NumberExists(ctx context.Context, tx *gorm.DB, number string) (bool, error) {
	for _, p := range f.s.phones {
		if p.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePhoneRepo) UnsetPrimary(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	for _, p := range f.s.phones {
		if p.UserID == userID {
			p.IsPrimary = false
		}
	}
	return nil
}

func (f *fakePhoneRepo) Update(ctx context.Context, tx *gorm.DB, phone *domain.PhoneNumber) error {
	for _, p := range f.s.phones {
		if p.ID == phone.ID {
			p.Number = phone.Number
			p.IsPrimary = phone.IsPrimary
		}
	}
	return nil
}

func (f *fakePhoneRepo) DeleteByIDForUser(ctx context.Context, tx *gorm.DB, phoneID, userID uuid.UUID) (int64, error) {
	kept := f.s.phones[:0]
	var removed int64
	for _, p := range f.s.phones {
		if p.ID == phoneID && p.UserID == userID {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	f.s.phones = kept
	return removed, nil
}

type fakeProfileImageRepo struct{ s *memStore }

func (f *fakeProfileImageRepo) Create(ctx context.Context, tx *gorm.DB, image *domain.ProfileImage) (*domain.ProfileImage, error) {
	for _, existing := range f.s.profileImages {
		if existing.UserID == image.UserID {
			return nil, fault.Conflict("", "store", "profile image already exists")
		}
	}
	f.s.profileImages = append(f.s.profileImages, image)
	return image, nil
}

func (f *fakeProfileImageRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*domain.ProfileImage, error) {
	var out []*domain.ProfileImage
	for _, img := range f.s.profileImages {
		for _, id := range userIDs {
			if img.UserID == id {
				out = append(out, img)
			}
		}
	}
	return out, nil
}

func (f *fakeProfileImageRepo) UpdateURL(ctx context.Context, tx *gorm.DB, userID uuid.UUID, url string, uploadedAt time.Time) error {
	for _, img := range f.s.profileImages {
		if img.UserID == userID {
			img.URL = url
			img.UploadedAt = uploadedAt
		}
	}
	return nil
}

func (f *fakeProfileImageRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	kept := f.s.profileImages[:0]
	var removed int64
	for _, img := range f.s.profileImages {
		if img.UserID == userID {
			removed++
			continue
		}
		kept = append(kept, img)
	}
	f.s.profileImages = kept
	return removed, nil
}

type fakeSkillRepo struct{ s *memStore }

func (f *fakeSkillRepo) Create(ctx context.Context, tx *gorm.DB, skill *domain.Skill) (*domain.Skill, error) {
	for _, existing := range f.s.skills {
		if existing.Name == skill.Name {
			return nil, fault.Conflict(fault.KindDuplicateSkill, "store", "this skill already exists")
		}
	}
	f.s.skills = append(f.s.skills, skill)
	return skill, nil
}

func (f *fakeSkillRepo) List(ctx context.Context, tx *gorm.DB) ([]*domain.Skill, error) {
	out := append([]*domain.Skill{}, f.s.skills...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeSkillRepo) GetByIDs(ctx context.Context, tx *gorm.DB, skillIDs []uuid.UUID) ([]*domain.Skill, error) {
	var out []*domain.Skill
	for _, s := range f.s.skills {
		for _, id := range skillIDs {
			if s.ID == id {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

type fakeHandymanRepo struct{ s *memStore }

func (f *fakeHandymanRepo) Create(ctx context.Context, tx *gorm.DB, hs *domain.HandymanSkill) (*domain.HandymanSkill, error) {
	for _, existing := range f.s.handyman {
		if existing.UserID == hs.UserID && existing.SkillID == hs.SkillID {
			return nil, fault.Conflict(fault.KindDuplicateHandymanSkill, "store", "this skill is already registered")
		}
	}
	f.s.handyman = append(f.s.handyman, hs)
	return hs, nil
}

func (f *fakeHandymanRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*domain.HandymanSkill, error) {
	var out []*domain.HandymanSkill
	for _, hs := range f.s.handyman {
		for _, id := range userIDs {
			if hs.UserID == id {
				out = append(out, hs)
			}
		}
	}
	return out, nil
}

func (f *fakeHandymanRepo) UpdateExperience(ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID, experience string) (int64, error) {
	var affected int64
	for _, hs := range f.s.handyman {
		if hs.UserID == userID && hs.SkillID == skillID {
			hs.Experience = experience
			affected++
		}
	}
	return affected, nil
}

func (f *fakeHandymanRepo) DeleteByUserAndSkill(ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID) (int64, error) {
	kept := f.s.handyman[:0]
	var removed int64
	for _, hs := range f.s.handyman {
		if hs.UserID == userID && hs.SkillID == skillID {
			removed++
			continue
		}
		kept = append(kept, hs)
	}
	f.s.handyman = kept
	return removed, nil
}

type fakeWorkRepo struct{ s *memStore }

func (f *fakeWorkRepo) Create(ctx context.Context, tx *gorm.DB, work *domain.Work) (*domain.Work, error) {
	f.s.works = append(f.s.works, work)
	return work, nil
}

func (f *fakeWorkRepo) GetByIDs(ctx context.Context, tx *gorm.DB, workIDs []uuid.UUID) ([]*domain.Work, error) {
	var out []*domain.Work
	for _, w := range f.s.works {
		for _, id := range workIDs {
			if w.ID == id {
				out = append(out, w)
			}
		}
	}
	return out, nil
}

func (f *fakeWorkRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*domain.Work, error) {
	var out []*domain.Work
	for _, w := range f.s.works {
		for _, id := range userIDs {
			if w.UserID == id {
				out = append(out, w)
			}
		}
	}
	return out, nil
}

func (f *fakeWorkRepo) UpdateTitle(ctx context.Context, tx *gorm.DB, workID uuid.UUID, title string) error {
	for _, w := range f.s.works {
		if w.ID == workID {
			w.Title = title
		}
	}
	return nil
}

func (f *fakeWorkRepo) DeleteByIDForUser(ctx context.Context, tx *gorm.DB, workID, userID uuid.UUID) (int64, error) {
	kept := f.s.works[:0]
	var removed int64
	for _, w := range f.s.works {
		if w.ID == workID && w.UserID == userID {
			removed++
			continue
		}
		kept = append(kept, w)
	}
	f.s.works = kept
	return removed, nil
}

type fakeWorkImageRepo struct{ s *memStore }

func (f *fakeWorkImageRepo) Create(ctx context.Context, tx *gorm.DB, images []*domain.WorkImage) ([]*domain.WorkImage, error) {
	// insert one at a time so a duplicate midway leaves earlier rows behind
	// for the rollback assertions
	for _, img := range images {
		for _, existing := range f.s.workImages {
			if existing.WorkID == img.WorkID && existing.URL == img.URL {
				return nil, fault.Conflict(fault.KindDuplicateWorkImage, "store", "this image already exists for this work")
			}
		}
		f.s.workImages = append(f.s.workImages, img)
	}
	return images, nil
}

func (f *fakeWorkImageRepo) GetByWorkIDs(ctx context.Context, tx *gorm.DB, workIDs []uuid.UUID) ([]*domain.WorkImage, error) {
	var out []*domain.WorkImage
	for _, img := range f.s.workImages {
		for _, id := range workIDs {
			if img.WorkID == id {
				out = append(out, img)
			}
		}
	}
	return out, nil
}

func (f *fakeWorkImageRepo) DeleteByWorkAndURL(ctx context.Context, tx *gorm.DB, workID uuid.UUID, url string) (int64, error) {
	kept := f.s.workImages[:0]
	var removed int64
	for _, img := range f.s.workImages {
		if img.WorkID == workID && img.URL == url {
			removed++
			continue
		}
		kept = append(kept, img)
	}
	f.s.workImages = kept
	return removed, nil
}

type fakeUserReviewRepo struct{ s *memStore }

func (f *fakeUserReviewRepo) Create(ctx context.Context, tx *gorm.DB, review *domain.UserReview) (*domain.UserReview, error) {
	for _, existing := range f.s.userReviews {
		if existing.ReviewerID == review.ReviewerID && existing.RevieweeID == review.RevieweeID {
			return nil, fault.Conflict(fault.KindDuplicateUserReview, "store", "you have already reviewed this user")
		}
	}
	f.s.userReviews = append(f.s.userReviews, review)
	return review, nil
}

func (f *fakeUserReviewRepo) GetByIDs(ctx context.Context, tx *gorm.DB, reviewIDs []uuid.UUID) ([]*domain.UserReview, error) {
	var out []*domain.UserReview
	for _, r := range f.s.userReviews {
		for _, id := range reviewIDs {
			if r.ID == id {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (f *fakeUserReviewRepo) ListByRevieweeID(ctx context.Context, tx *gorm.DB, revieweeID uuid.UUID) ([]*domain.UserReview, error) {
	var out []*domain.UserReview
	for _, r := range f.s.userReviews {
		if r.RevieweeID == revieweeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeUserReviewRepo) UpdateText(ctx context.Context, tx *gorm.DB, reviewID, reviewerID uuid.UUID, text string) (int64, error) {
	var affected int64
	for _, r := range f.s.userReviews {
		if r.ID == reviewID && r.ReviewerID == reviewerID {
			r.Text = text
			affected++
		}
	}
	return affected, nil
}

func (f *fakeUserReviewRepo) DeleteByIDForReviewer(ctx context.Context, tx *gorm.DB, reviewID, reviewerID uuid.UUID) (int64, error) {
	kept := f.s.userReviews[:0]
	var removed int64
	for _, r := range f.s.userReviews {
		if r.ID == reviewID && r.ReviewerID == reviewerID {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	f.s.userReviews = kept
	return removed, nil
}

type fakeWorkReviewRepo struct{ s *memStore }

func (f *fakeWorkReviewRepo) Create(ctx context.Context, tx *gorm.DB, review *domain.WorkReview) (*domain.WorkReview, error) {
	for _, existing := range f.s.workReviews {
		if existing.ReviewerID == review.ReviewerID && existing.WorkID == review.WorkID {
			return nil, fault.Conflict(fault.KindDuplicateWorkReview, "store", "you have already reviewed this work")
		}
	}
	f.s.workReviews = append(f.s.workReviews, review)
	return review, nil
}

func (f *fakeWorkReviewRepo) GetByIDs(ctx context.Context, tx *gorm.DB, reviewIDs []uuid.UUID) ([]*domain.WorkReview, error) {
	var out []*domain.WorkReview
	for _, r := range f.s.workReviews {
		for _, id := range reviewIDs {
			if r.ID == id {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (f *fakeWorkReviewRepo) GetByWorkIDs(ctx context.Context, tx *gorm.DB, workIDs []uuid.UUID) ([]*domain.WorkReview, error) {
	var out []*domain.WorkReview
	for _, r := range f.s.workReviews {
		for _, id := range workIDs {
			if r.WorkID == id {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (f *fakeWorkReviewRepo) ListByWorkID(ctx context.Context, tx *gorm.DB, workID uuid.UUID) ([]*domain.WorkReview, error) {
	return f.GetByWorkIDs(ctx, tx, []uuid.UUID{workID})
}

func (f *fakeWorkReviewRepo) Update(ctx context.Context, tx *gorm.DB, reviewID, reviewerID uuid.UUID, rating *int, text *string) (int64, error) {
	if rating == nil && text == nil {
		return 0, nil
	}
	var affected int64
	for _, r := range f.s.workReviews {
		if r.ID == reviewID && r.ReviewerID == reviewerID {
			if rating != nil {
				r.Rating = *rating
			}
			if text != nil {
				r.Text = *text
			}
			affected++
		}
	}
	return affected, nil
}

func (f *fakeWorkReviewRepo) DeleteByIDForReviewer(ctx context.Context, tx *gorm.DB, reviewID, reviewerID uuid.UUID) (int64, error) {
	kept := f.s.workReviews[:0]
	var removed int64
	for _, r := range f.s.workReviews {
		if r.ID == reviewID && r.ReviewerID == reviewerID {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	f.s.workReviews = kept
	return removed, nil
}

// fixture wires every service against one shared in-memory store.
type fixture struct {
	store   *memStore
	auth    AuthService
	users   UserService
	skills  SkillService
	works   WorkService
	reviews ReviewService
}

func newFixture() *fixture {
	log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
	store := &memStore{}
	runner := &fakeTxRunner{store: store}

	userRepo := &fakeUserRepo{s: store}
	phoneRepo := &fakePhoneRepo{s: store}
	profileImageRepo := &fakeProfileImageRepo{s: store}
	skillRepo := &fakeSkillRepo{s: store}
	handymanRepo := &fakeHandymanRepo{s: store}
	workRepo := &fakeWorkRepo{s: store}
	workImageRepo := &fakeWorkImageRepo{s: store}
	userReviewRepo := &fakeUserReviewRepo{s: store}
	workReviewRepo := &fakeWorkReviewRepo{s: store}

	return &fixture{
		store:   store,
		auth:    NewAuthService(log, runner, userRepo, "test-secret", time.Hour),
		users:   NewUserService(log, runner, userRepo, phoneRepo, profileImageRepo, skillRepo, handymanRepo),
		skills:  NewSkillService(log, skillRepo, handymanRepo),
		works:   NewWorkService(log, runner, workRepo, workImageRepo, workReviewRepo),
		reviews: NewReviewService(log, userRepo, profileImageRepo, workRepo, userReviewRepo, workReviewRepo),
	}
}

func (f *fixture) seedUser(email string) *domain.User {
	u := &domain.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "x",
		FirstName: "Seed",
		LastName:  "User",
	}
	f.store.users = append(f.store.users, u)
	return u
}

func (f *fixture) seedWork(ownerID uuid.UUID, title string) *domain.Work {
	w := &domain.Work{ID: uuid.New(), UserID: ownerID, Title: title}
	f.store.works = append(f.store.works, w)
	return w
}

func authCtx(userID uuid.UUID) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: userID})
}
