package app

import (
	"github.com/villagekeep/villagekeep-backend/internal/middleware"
	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, cfg Config) Middleware {
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, cfg.JWTSecret),
	}
}
