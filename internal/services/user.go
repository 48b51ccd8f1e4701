package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/handylink/handylink-backend/internal/data/repos"
	"github.com/handylink/handylink-backend/internal/data/storeerr"
	"github.com/handylink/handylink-backend/internal/data/txn"
	"github.com/handylink/handylink-backend/internal/domain"
	"github.com/handylink/handylink-backend/internal/domain/fault"
	"github.com/handylink/handylink-backend/internal/pkg/dbctx"
	"github.com/handylink/handylink-backend/internal/pkg/logger"
)

// ProfileSkill is a handyman skill joined with its catalog name.
type ProfileSkill struct {
	SkillID    uuid.UUID `json:"skill_id"`
	Name       string    `json:"skill_name"`
	Experience string    `json:"experience"`
}

// ProfileView is the assembled public profile of a user.
type ProfileView struct {
	User            *domain.User          `json:"user"`
	PhoneNumbers    []*domain.PhoneNumber `json:"phone_numbers"`
	ProfileImageURL string                `json:"profile_img_url"`
	Skills          []ProfileSkill        `json:"skills"`
}

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
	UpdateName(ctx context.Context, firstName, lastName string) (*domain.User, error)
	AddPhone(ctx context.Context, number string, isPrimary bool) (*domain.PhoneNumber, error)
	UpdatePhone(ctx context.Context, phoneID uuid.UUID, number string, isPrimary bool) (*domain.PhoneNumber, error)
	DeletePhone(ctx context.Context, phoneID uuid.UUID) error
	SetProfileImage(ctx context.Context, url string) (*domain.ProfileImage, error)
	DeleteProfileImage(ctx context.Context) error
}

type userService struct {
	log              *logger.Logger
	tx               txn.TxRunner
	userRepo         repos.UserRepo
	phoneRepo        repos.PhoneNumberRepo
	profileImageRepo repos.ProfileImageRepo
	skillRepo        repos.SkillRepo
	handymanRepo     repos.HandymanSkillRepo
}

func NewUserService(
	log *logger.Logger,
	tx txn.TxRunner,
	userRepo repos.UserRepo,
	phoneRepo repos.PhoneNumberRepo,
	profileImageRepo repos.ProfileImageRepo,
	skillRepo repos.SkillRepo,
	handymanRepo repos.HandymanSkillRepo,
) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{
		log:              serviceLog,
		tx:               tx,
		userRepo:         userRepo,
		phoneRepo:        phoneRepo,
		profileImageRepo: profileImageRepo,
		skillRepo:        skillRepo,
		handymanRepo:     handymanRepo,
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	const op = "user.profile"

	users, uErr := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if uErr != nil {
		return nil, storeerr.Map(op, uErr)
	}
	if len(users) == 0 {
		return nil, fault.New(fault.CodeNotFound, op, "user not found")
	}

	phones, pErr := us.phoneRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
	if pErr != nil {
		return nil, storeerr.Map(op, pErr)
	}
	if phones == nil {
		phones = []*domain.PhoneNumber{}
	}

	images, iErr := us.profileImageRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
	if iErr != nil {
		return nil, storeerr.Map(op, iErr)
	}
	imageURL := ""
	if len(images) > 0 {
		imageURL = images[0].URL
	}

	registrations, hErr := us.handymanRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
	if hErr != nil {
		return nil, storeerr.Map(op, hErr)
	}
	skills, sErr := joinSkillNames(ctx, us.skillRepo, registrations)
	if sErr != nil {
		return nil, storeerr.Map(op, sErr)
	}

	return &ProfileView{
		User:            users[0],
		PhoneNumbers:    phones,
		ProfileImageURL: imageURL,
		Skills:          skills,
	}, nil
}

func (us *userService) UpdateName(ctx context.Context, firstName, lastName string) (*domain.User, error) {
	const op = "user.update_name"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return nil, aErr
	}

	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, fault.New(fault.CodeValidation, op, "first and last name are required")
	}

	if err := us.userRepo.UpdateName(ctx, nil, actorID, firstName, lastName); err != nil {
		return nil, storeerr.Map(op, err)
	}

	users, gErr := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{actorID})
	if gErr != nil {
		return nil, storeerr.Map(op, gErr)
	}
	if len(users) == 0 {
		return nil, fault.New(fault.CodeNotFound, op, "user not found")
	}
	return users[0], nil
}

func (us *userService) AddPhone(ctx context.Context, number string, isPrimary bool) (*domain.PhoneNumber, error) {
	const op = "user.phone.add"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return nil, aErr
	}

	number = strings.TrimSpace(number)
	if number == "" {
		return nil, fault.New(fault.CodeValidation, op, "phone number is required")
	}

	// friendly pre-check; the unique index is the backstop under races
	exists, eErr := us.phoneRepo.NumberExists(ctx, nil, number)
	if eErr != nil {
		return nil, storeerr.Map(op, eErr)
	}
	if exists {
		return nil, fault.Conflict(fault.KindPhoneAlreadyRegistered, op, "this phone number is already registered")
	}

	phone := &domain.PhoneNumber{
		ID:        uuid.New(),
		UserID:    actorID,
		Number:    number,
		IsPrimary: isPrimary,
		AddedAt:   time.Now(),
	}
	// demoting the old primary and inserting the new one commit together
	if err := us.tx.InTx(ctx, func(dbc dbctx.Context) error {
		if isPrimary {
			if uErr := us.phoneRepo.UnsetPrimary(dbc.Ctx, dbc.Tx, actorID); uErr != nil {
				return uErr
			}
		}
		_, cErr := us.phoneRepo.Create(dbc.Ctx, dbc.Tx, []*domain.PhoneNumber{phone})
		return cErr
	}); err != nil {
		return nil, storeerr.Map(op, err)
	}
	return phone, nil
}

func (us *userService) UpdatePhone(ctx context.Context, phoneID uuid.UUID, number string, isPrimary bool) (*domain.PhoneNumber, error) {
	const op = "user.phone.update"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return nil, aErr
	}

	number = strings.TrimSpace(number)
	if number == "" {
		return nil, fault.New(fault.CodeValidation, op, "phone number is required")
	}

	phones, gErr := us.phoneRepo.GetByIDs(ctx, nil, []uuid.UUID{phoneID})
	if gErr != nil {
		return nil, storeerr.Map(op, gErr)
	}
	var owned *domain.PhoneNumber
	if len(phones) > 0 {
		owned = phones[0]
	}
	if err := requireOwner(op, owned != nil, actorID, ownerOf(owned)); err != nil {
		return nil, err
	}

	owned.Number = number
	owned.IsPrimary = isPrimary
	if err := us.tx.InTx(ctx, func(dbc dbctx.Context) error {
		if isPrimary {
			if uErr := us.phoneRepo.UnsetPrimary(dbc.Ctx, dbc.Tx, actorID); uErr != nil {
				return uErr
			}
		}
		return us.phoneRepo.Update(dbc.Ctx, dbc.Tx, owned)
	}); err != nil {
		return nil, storeerr.Map(op, err)
	}
	return owned, nil
}

func (us *userService) DeletePhone(ctx context.Context, phoneID uuid.UUID) error {
	const op = "user.phone.delete"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return aErr
	}

	rows, dErr := us.phoneRepo.DeleteByIDForUser(ctx, nil, phoneID, actorID)
	if dErr != nil {
		return storeerr.Map(op, dErr)
	}
	return affectedOrNotFound(op, rows, "not found or unauthorized")
}

func (us *userService) SetProfileImage(ctx context.Context, url string) (*domain.ProfileImage, error) {
	const op = "user.profile_image.set"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return nil, aErr
	}

	url = strings.TrimSpace(url)
	if url == "" {
		return nil, fault.New(fault.CodeValidation, op, "image url is required")
	}

	existing, gErr := us.profileImageRepo.GetByUserIDs(ctx, nil, []uuid.UUID{actorID})
	if gErr != nil {
		return nil, storeerr.Map(op, gErr)
	}

	now := time.Now()
	if len(existing) > 0 {
		if uErr := us.profileImageRepo.UpdateURL(ctx, nil, actorID, url, now); uErr != nil {
			return nil, storeerr.Map(op, uErr)
		}
		existing[0].URL = url
		existing[0].UploadedAt = now
		return existing[0], nil
	}

	image := &domain.ProfileImage{
		ID:         uuid.New(),
		UserID:     actorID,
		URL:        url,
		UploadedAt: now,
	}
	created, cErr := us.profileImageRepo.Create(ctx, nil, image)
	if cErr != nil {
		return nil, storeerr.Map(op, cErr)
	}
	return created, nil
}

func (us *userService) DeleteProfileImage(ctx context.Context) error {
	const op = "user.profile_image.delete"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return aErr
	}

	rows, dErr := us.profileImageRepo.DeleteByUserID(ctx, nil, actorID)
	if dErr != nil {
		return storeerr.Map(op, dErr)
	}
	return affectedOrNotFound(op, rows, "no profile image to delete")
}

// joinSkillNames decorates skill registrations with their catalog names.
func joinSkillNames(ctx context.Context, skillRepo repos.SkillRepo, registrations []*domain.HandymanSkill) ([]ProfileSkill, error) {
	if len(registrations) == 0 {
		return []ProfileSkill{}, nil
	}

	skillIDs := make([]uuid.UUID, 0, len(registrations))
	for _, reg := range registrations {
		skillIDs = append(skillIDs, reg.SkillID)
	}
	catalog, err := skillRepo.GetByIDs(ctx, nil, skillIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(catalog))
	for _, s := range catalog {
		names[s.ID] = s.Name
	}

	joined := make([]ProfileSkill, 0, len(registrations))
	for _, reg := range registrations {
		joined = append(joined, ProfileSkill{
			SkillID:    reg.SkillID,
			Name:       names[reg.SkillID],
			Experience: reg.Experience,
		})
	}
	sort.Slice(joined, func(i, j int) bool { return joined[i].Name < joined[j].Name })
	return joined, nil
}

func ownerOf(phone *domain.PhoneNumber) uuid.UUID {
	if phone == nil {
		return uuid.Nil
	}
	return phone.UserID
}
