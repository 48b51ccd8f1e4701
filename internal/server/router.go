package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/handylink/handylink-backend/internal/handlers"
	"github.com/handylink/handylink-backend/internal/middleware"
	"github.com/handylink/handylink-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AuthMiddleware *middleware.AuthMiddleware
	AuthHandler    *handlers.AuthHandler
	UserHandler    *handlers.UserHandler
	SkillHandler   *handlers.SkillHandler
	WorkHandler    *handlers.WorkHandler
	ReviewHandler  *handlers.ReviewHandler
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog(cfg.Log))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")

	// public
	api.POST("/auth/register", cfg.AuthHandler.Register)
	api.POST("/auth/login", cfg.AuthHandler.Login)
	api.GET("/skills", cfg.SkillHandler.ListSkills)
	api.GET("/skills/handyman/:userId", cfg.SkillHandler.ListHandymanSkills)
	api.GET("/works/user/:userId", cfg.WorkHandler.ListWorksByUser)
	api.GET("/works/:workId", cfg.WorkHandler.GetWork)
	api.GET("/reviews/user/:userId", cfg.ReviewHandler.ListUserReviews)
	api.GET("/reviews/work/:workId", cfg.ReviewHandler.ListWorkReviews)

	// protected
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	protected.GET("/auth/profile", cfg.UserHandler.GetProfile)
	protected.PUT("/auth/profile", cfg.UserHandler.UpdateProfile)

	protected.POST("/users/phone", cfg.UserHandler.AddPhoneNumber)
	protected.PUT("/users/phone/:phoneId", cfg.UserHandler.UpdatePhoneNumber)
	protected.DELETE("/users/phone/:phoneId", cfg.UserHandler.DeletePhoneNumber)
	protected.PUT("/users/profile-image", cfg.UserHandler.SetProfileImage)
	protected.DELETE("/users/profile-image", cfg.UserHandler.DeleteProfileImage)

	protected.POST("/skills", cfg.SkillHandler.CreateSkill)
	protected.POST("/skills/handyman", cfg.SkillHandler.AddHandymanSkill)
	protected.PUT("/skills/handyman/:skillId", cfg.SkillHandler.UpdateHandymanSkill)
	protected.DELETE("/skills/handyman/:skillId", cfg.SkillHandler.DeleteHandymanSkill)

	protected.POST("/works", cfg.WorkHandler.CreateWork)
	protected.PUT("/works/:workId", cfg.WorkHandler.UpdateWork)
	protected.DELETE("/works/:workId", cfg.WorkHandler.DeleteWork)
	protected.POST("/works/:workId/images", cfg.WorkHandler.AddWorkImage)
	protected.DELETE("/works/:workId/images", cfg.WorkHandler.DeleteWorkImage)

	protected.POST("/reviews/user", cfg.ReviewHandler.CreateUserReview)
	protected.PUT("/reviews/user/:reviewId", cfg.ReviewHandler.UpdateUserReview)
	protected.DELETE("/reviews/user/:reviewId", cfg.ReviewHandler.DeleteUserReview)
	protected.POST("/reviews/work", cfg.ReviewHandler.CreateWorkReview)
	protected.PUT("/reviews/work/:reviewId", cfg.ReviewHandler.UpdateWorkReview)
	protected.DELETE("/reviews/work/:reviewId", cfg.ReviewHandler.DeleteWorkReview)

	return router
}
