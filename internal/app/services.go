package app

import (
	"gorm.io/gorm"

	"github.com/handylink/handylink-backend/internal/data/txn"
	"github.com/handylink/handylink-backend/internal/pkg/logger"
	"github.com/handylink/handylink-backend/internal/services"
)

type Services struct {
	Auth   services.AuthService
	User   services.UserService
	Skill  services.SkillService
	Work   services.WorkService
	Review services.ReviewService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("wiring services")
	runner := txn.NewGormTxRunner(db)
	return Services{
		Auth:   services.NewAuthService(log, runner, r.User, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		User:   services.NewUserService(log, runner, r.User, r.PhoneNumber, r.ProfileImage, r.Skill, r.HandymanSkill),
		Skill:  services.NewSkillService(log, r.Skill, r.HandymanSkill),
		Work:   services.NewWorkService(log, runner, r.Work, r.WorkImage, r.WorkReview),
		Review: services.NewReviewService(log, r.User, r.ProfileImage, r.Work, r.UserReview, r.WorkReview),
	}
}
