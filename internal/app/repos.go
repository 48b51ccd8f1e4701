package app

import (
	"gorm.io/gorm"

	"github.com/handylink/handylink-backend/internal/data/repos"
	"github.com/handylink/handylink-backend/internal/pkg/logger"
)

type Repos struct {
	User          repos.UserRepo
	PhoneNumber   repos.PhoneNumberRepo
	ProfileImage  repos.ProfileImageRepo
	Skill         repos.SkillRepo
	HandymanSkill repos.HandymanSkillRepo
	Work          repos.WorkRepo
	WorkImage     repos.WorkImageRepo
	UserReview    repos.UserReviewRepo
	WorkReview    repos.WorkReviewRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("wiring repos")
	return Repos{
		User:          repos.NewUserRepo(db, log),
		PhoneNumber:   repos.NewPhoneNumberRepo(db, log),
		ProfileImage:  repos.NewProfileImageRepo(db, log),
		Skill:         repos.NewSkillRepo(db, log),
		HandymanSkill: repos.NewHandymanSkillRepo(db, log),
		Work:          repos.NewWorkRepo(db, log),
		WorkImage:     repos.NewWorkImageRepo(db, log),
		UserReview:    repos.NewUserReviewRepo(db, log),
		WorkReview:    repos.NewWorkReviewRepo(db, log),
	}
}
