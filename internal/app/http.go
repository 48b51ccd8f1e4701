package app

import (
	"github.com/gin-gonic/gin"

	"github.com/handylink/handylink-backend/internal/handlers"
	"github.com/handylink/handylink-backend/internal/middleware"
	"github.com/handylink/handylink-backend/internal/pkg/logger"
	"github.com/handylink/handylink-backend/internal/server"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

type Handlers struct {
	Auth   *handlers.AuthHandler
	User   *handlers.UserHandler
	Skill  *handlers.SkillHandler
	Work   *handlers.WorkHandler
	Review *handlers.ReviewHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("wiring handlers")
	return Handlers{
		Auth:   handlers.NewAuthHandler(s.Auth),
		User:   handlers.NewUserHandler(s.User),
		Skill:  handlers.NewSkillHandler(s.Skill),
		Work:   handlers.NewWorkHandler(s.Work),
		Review: handlers.NewReviewHandler(s.Review),
	}
}

func wireMiddleware(log *logger.Logger, s Services) Middleware {
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, s.Auth),
	}
}

func wireRouter(log *logger.Logger, cfg Config, h Handlers, mw Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:            log,
		AuthMiddleware: mw.Auth,
		AuthHandler:    h.Auth,
		UserHandler:    h.User,
		SkillHandler:   h.Skill,
		WorkHandler:    h.Work,
		ReviewHandler:  h.Review,
		AllowedOrigins: cfg.AllowedOrigins,
	})
}
