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

type SkillService interface {
	CreateSkill(ctx context.Context, name string) (*domain.Skill, error)
	ListSkills(ctx context.Context) ([]*domain.Skill, error)
	AddHandymanSkill(ctx context.Context, skillID uuid.UUID, experience string) (*domain.HandymanSkill, error)
	ListHandymanSkills(ctx context.Context, userID uuid.UUID) ([]ProfileSkill, error)
	UpdateHandymanSkill(ctx context.Context, skillID uuid.UUID, experience string) error
	RemoveHandymanSkill(ctx context.Context, skillID uuid.UUID) error
}

type skillService struct {
	log          *logger.Logger
	skillRepo    repos.SkillRepo
	handymanRepo repos.HandymanSkillRepo
}

func NewSkillService(
	log *logger.Logger,
	skillRepo repos.SkillRepo,
	handymanRepo repos.HandymanSkillRepo,
) SkillService {
	serviceLog := log.With("service", "SkillService")
	return &skillService{
		log:          serviceLog,
		skillRepo:    skillRepo,
		handymanRepo: handymanRepo,
	}
}

func (ss *skillService) CreateSkill(ctx context.Context, name string) (*domain.Skill, error) {
	const op = "skill.create"

	if _, err := requireActor(ctx, op); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fault.New(fault.CodeValidation, op, "skill name is required")
	}

	skill, cErr := ss.skillRepo.Create(ctx, nil, &domain.Skill{
		ID:   uuid.New(),
		Name: name,
	})
	if cErr != nil {
		return nil, storeerr.Map(op, cErr)
	}
	return skill, nil
}

func (ss *skillService) ListSkills(ctx context.Context) ([]*domain.Skill, error) {
	const op = "skill.list"

	skills, err := ss.skillRepo.List(ctx, nil)
	if err != nil {
		return nil, storeerr.Map(op, err)
	}
	if skills == nil {
		skills = []*domain.Skill{}
	}
	return skills, nil
}

func (ss *skillService) AddHandymanSkill(ctx context.Context, skillID uuid.UUID, experience string) (*domain.HandymanSkill, error) {
	const op = "skill.register"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return nil, aErr
	}

	// the skill must exist in the catalog before anyone can claim it
	catalog, gErr := ss.skillRepo.GetByIDs(ctx, nil, []uuid.UUID{skillID})
	if gErr != nil {
		return nil, storeerr.Map(op, gErr)
	}
	if len(catalog) == 0 {
		return nil, fault.New(fault.CodeNotFound, op, "skill not found")
	}

	registration, cErr := ss.handymanRepo.Create(ctx, nil, &domain.HandymanSkill{
		ID:         uuid.New(),
		UserID:     actorID,
		SkillID:    skillID,
		Experience: strings.TrimSpace(experience),
	})
	if cErr != nil {
		return nil, storeerr.Map(op, cErr)
	}
	return registration, nil
}

func (ss *skillService) ListHandymanSkills(ctx context.Context, userID uuid.UUID) ([]ProfileSkill, error) {
	const op = "skill.register.list"

	registrations, gErr := ss.handymanRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
	if gErr != nil {
		return nil, storeerr.Map(op, gErr)
	}
	joined, jErr := joinSkillNames(ctx, ss.skillRepo, registrations)
	if jErr != nil {
		return nil, storeerr.Map(op, jErr)
	}
	return joined, nil
}

func (ss *skillService) UpdateHandymanSkill(ctx context.Context, skillID uuid.UUID, experience string) error {
	const op = "skill.register.update"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return aErr
	}

	rows, uErr := ss.handymanRepo.UpdateExperience(ctx, nil, actorID, skillID, strings.TrimSpace(experience))
	if uErr != nil {
		return storeerr.Map(op, uErr)
	}
	return affectedOrNotFound(op, rows, "skill registration not found")
}

func (ss *skillService) RemoveHandymanSkill(ctx context.Context, skillID uuid.UUID) error {
	const op = "skill.register.remove"

	actorID, aErr := requireActor(ctx, op)
	if aErr != nil {
		return aErr
	}

	rows, dErr := ss.handymanRepo.DeleteByUserAndSkill(ctx, nil, actorID, skillID)
	if dErr != nil {
		return storeerr.Map(op, dErr)
	}
	return affectedOrNotFound(op, rows, "skill registration not found")
}
