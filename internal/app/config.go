package app

import (
	"strings"
	"time"

	"github.com/handylink/handylink-backend/internal/pkg/logger"
	"github.com/handylink/handylink-backend/internal/utils"
)

type Config struct {
	Port           string
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	AllowedOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	origins := utils.GetEnv("ALLOWED_ORIGINS", "http://localhost:3000", log)

	return Config{
		Port:           port,
		JWTSecretKey:   jwtSecretKey,
		AccessTokenTTL: time.Duration(accessTokenTTLSeconds) * time.Second,
		AllowedOrigins: strings.Split(origins, ","),
	}
}
